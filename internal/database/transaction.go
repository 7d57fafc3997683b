package database

// Atomic batch execution for ClubHub.
//
// SurrealDB transactions here are BATCH-BASED, not connection-level:
// statements accumulate in memory and are wrapped in
// BEGIN TRANSACTION / COMMIT TRANSACTION at Execute time. All statements
// succeed or fail together; there is no isolation between Add() calls.
//
// Variables are namespaced automatically ($id -> $v1_id) so statements
// from different call sites cannot collide.

import (
	"context"
	"fmt"
	"strings"
)

// AtomicBatch accumulates statements that must succeed or fail together.
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Add adds a statement to the batch, namespacing its variables to avoid
// collisions with statements added earlier.
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	newQuery := query
	for varName, varValue := range vars {
		ab.varCounter++
		newVarName := fmt.Sprintf("v%d_%s", ab.varCounter, varName)
		newQuery = strings.ReplaceAll(newQuery, "$"+varName, "$"+newVarName)
		ab.vars[newVarName] = varValue
	}
	ab.statements = append(ab.statements, newQuery)
	return ab
}

// Len returns the number of statements in the batch
func (ab *AtomicBatch) Len() int {
	return len(ab.statements)
}

// Execute runs all statements as a single transaction and returns the
// per-statement results. An empty batch is a no-op.
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) ([]interface{}, error) {
	if len(ab.statements) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range ab.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return db.Query(ctx, sb.String(), ab.vars)
}
