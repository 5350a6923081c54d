package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jogos-org/jogos/pkg/igdb"
)

// MockSearcher implements services.Searcher for testing.
type MockSearcher struct {
	Results []igdb.Game
	Err     error
	// Block, when set, holds every search until it is closed or the
	// search context is done.
	Block chan struct{}

	mu    sync.Mutex
	calls []SearchCall
	unset bool
}

type SearchCall struct {
	Term     string
	Platform int
}

// NewMockSearcher creates a configured MockSearcher that finds nothing.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// Unconfigured makes Configured report false.
func (m *MockSearcher) Unconfigured() *MockSearcher {
	m.unset = true
	return m
}

func (m *MockSearcher) Configured() bool {
	return !m.unset
}

func (m *MockSearcher) Search(ctx context.Context, term string, platform int) ([]igdb.Game, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SearchCall{Term: term, Platform: platform})
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.Results, m.Err
}

func (m *MockSearcher) Calls() []SearchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SearchCall(nil), m.calls...)
}

// MockCoverSaver implements services.CoverSaver for testing.
type MockCoverSaver struct {
	Err error

	mu    sync.Mutex
	saved map[int64]string
}

func NewMockCoverSaver() *MockCoverSaver {
	return &MockCoverSaver{saved: map[int64]string{}}
}

func (m *MockCoverSaver) SaveFromURL(ctx context.Context, id int64, url string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[id] = url
	return nil
}

func (m *MockCoverSaver) Saved(id int64) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	url, ok := m.saved[id]
	return url, ok
}

// Exists reports a cover for every id saved through SaveFromURL.
func (m *MockCoverSaver) Exists(id int64) bool {
	_, ok := m.Saved(id)
	return ok
}

func (m *MockCoverSaver) Path(id int64) string {
	return fmt.Sprintf("/covers/%d.jpg", id)
}
