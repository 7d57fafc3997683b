package service

import (
	"context"
	"log/slog"
)

// Store is the persistence contract the orchestrator drives. Each entity
// repository satisfies it structurally; "not found" is an absent value,
// never an error, so the orchestrator decides user-facing behavior.
type Store[E any] interface {
	FindAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, id string) (*E, error)
	Save(ctx context.Context, entity *E) (*E, error)
	DeleteByID(ctx context.Context, id string) error
}

// Hooks carries the per-entity behavior the shared CRUD skeleton cannot
// know: soft-reference and state validation, full-replace update
// semantics, peer enrichment, and cascade cleanup.
type Hooks[E, D any] interface {
	// ValidateCreate checks soft references, uniqueness, and state rules,
	// and fills derived defaults (status, timestamps) on the entity.
	ValidateCreate(ctx context.Context, entity *E) error

	// ValidateUpdate re-checks references that changed and rejects
	// transitions that would break an invariant.
	ValidateUpdate(ctx context.Context, existing, incoming *E) error

	// ApplyUpdate overwrites every editable field of existing with the
	// incoming values. Updates are full replacements, not patches.
	ApplyUpdate(existing, incoming *E)

	// Enrich builds the externally visible DTO, degrading peer-sourced
	// fields to sentinels when a peer is unreachable. It never fails.
	Enrich(ctx context.Context, entity *E) *D

	// Cleanup dispatches best-effort cascade cleanups before the entity
	// is removed. Failures are logged, never propagated; the primary
	// delete proceeds regardless.
	Cleanup(ctx context.Context, entity *E)
}

// Orchestrator is the shared CRUD core of the four entity services. It
// composes local store access with the per-type hooks; the entity
// services embed it and add their type-specific operations.
type Orchestrator[E, D any] struct {
	resource string
	store    Store[E]
	hooks    Hooks[E, D]
	notFound error
}

// NewOrchestrator wires the shared CRUD skeleton for one entity type.
// notFound is the sentinel returned when an ID does not resolve locally.
func NewOrchestrator[E, D any](resource string, store Store[E], hooks Hooks[E, D], notFound error) *Orchestrator[E, D] {
	return &Orchestrator[E, D]{
		resource: resource,
		store:    store,
		hooks:    hooks,
		notFound: notFound,
	}
}

// List returns every stored entity, enriched, in store order.
func (o *Orchestrator[E, D]) List(ctx context.Context) ([]D, error) {
	entities, err := o.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]D, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *o.hooks.Enrich(ctx, &entities[i]))
	}
	return dtos, nil
}

// GetByID returns one enriched entity or the service's not-found error.
func (o *Orchestrator[E, D]) GetByID(ctx context.Context, id string) (*D, error) {
	entity, err := o.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, o.notFound
	}
	return o.hooks.Enrich(ctx, entity), nil
}

// Create validates the entity through the hooks, persists it, and
// returns the enriched view of the saved row.
func (o *Orchestrator[E, D]) Create(ctx context.Context, entity *E) (*D, error) {
	if err := o.hooks.ValidateCreate(ctx, entity); err != nil {
		return nil, err
	}

	saved, err := o.store.Save(ctx, entity)
	if err != nil {
		return nil, err
	}

	slog.Info("created", slog.String("resource", o.resource))
	return o.hooks.Enrich(ctx, saved), nil
}

// Update loads the existing row, re-validates, fully replaces the
// editable fields, persists, and returns the enriched result.
func (o *Orchestrator[E, D]) Update(ctx context.Context, id string, incoming *E) (*D, error) {
	existing, err := o.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, o.notFound
	}

	if err := o.hooks.ValidateUpdate(ctx, existing, incoming); err != nil {
		return nil, err
	}

	o.hooks.ApplyUpdate(existing, incoming)

	saved, err := o.store.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	slog.Info("updated", slog.String("resource", o.resource), slog.String("id", id))
	return o.hooks.Enrich(ctx, saved), nil
}

// Delete removes the entity after dispatching cascade cleanup. Cleanup
// failures never block the local delete: the primary delete is
// authoritative.
func (o *Orchestrator[E, D]) Delete(ctx context.Context, id string) error {
	entity, err := o.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return o.notFound
	}

	o.hooks.Cleanup(ctx, entity)

	if err := o.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	slog.Info("deleted", slog.String("resource", o.resource), slog.String("id", id))
	return nil
}
