package service

import "context"

// mockLookup is a func-field peer lookup. Unset fields behave like a
// healthy peer: references exist, fetches return nil, notifications are
// accepted. Notify calls are recorded as "service path" for assertions.
type mockLookup struct {
	checkExistsFunc func(service, path string) bool
	fetchFunc       func(service, path string) map[string]interface{}
	fetchListFunc   func(service, path string) []map[string]interface{}
	notifyFunc      func(service, path string) bool

	notified []string
}

func (m *mockLookup) CheckExists(ctx context.Context, service, path string) bool {
	if m.checkExistsFunc != nil {
		return m.checkExistsFunc(service, path)
	}
	return true
}

func (m *mockLookup) Fetch(ctx context.Context, service, path string) map[string]interface{} {
	if m.fetchFunc != nil {
		return m.fetchFunc(service, path)
	}
	return nil
}

func (m *mockLookup) FetchList(ctx context.Context, service, path string) []map[string]interface{} {
	if m.fetchListFunc != nil {
		return m.fetchListFunc(service, path)
	}
	return nil
}

func (m *mockLookup) Notify(ctx context.Context, service, path string) bool {
	m.notified = append(m.notified, service+" "+path)
	if m.notifyFunc != nil {
		return m.notifyFunc(service, path)
	}
	return true
}

func (m *mockLookup) notifiedWith(entry string) bool {
	for _, n := range m.notified {
		if n == entry {
			return true
		}
	}
	return false
}
