package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jogos-org/jogos/internal/models"
	srvErrors "github.com/jogos-org/jogos/pkg/errors"
	"github.com/jogos-org/jogos/pkg/igdb"
	"github.com/jogos-org/jogos/pkg/scheduler"
)

const defaultMetadataTimeout = 15 * time.Second

// Searcher is the remote metadata source.
type Searcher interface {
	Configured() bool
	Search(ctx context.Context, term string, platform int) ([]igdb.Game, error)
}

// CoverSaver downloads a cover image and stores it for a game.
type CoverSaver interface {
	SaveFromURL(ctx context.Context, id int64, url string) error
}

// MetadataService runs metadata lookups and cover downloads on the
// scheduler. Only the most recent search is live: starting a new one
// cancels the previous and its result is reported as stale.
type MetadataService struct {
	scheduler *scheduler.Scheduler
	searcher  Searcher
	covers    CoverSaver
	timeout   time.Duration

	mu      sync.Mutex
	token   uint64
	current *scheduler.Future[scheduler.Result[[]igdb.Game]]

	log *zap.SugaredLogger
}

func NewMetadataService(s *scheduler.Scheduler, searcher Searcher, covers CoverSaver, timeout time.Duration) *MetadataService {
	if timeout <= 0 {
		timeout = defaultMetadataTimeout
	}
	return &MetadataService{
		scheduler: s,
		searcher:  searcher,
		covers:    covers,
		timeout:   timeout,
		log:       zap.S().Named("metadata_service"),
	}
}

func (m *MetadataService) Configured() bool {
	return m.searcher != nil && m.searcher.Configured()
}

// Search looks term up, preferring platform when the remote catalog knows
// it. An empty term cancels any running search and returns no candidates.
// A search superseded before it completes returns a StaleSearchError.
func (m *MetadataService) Search(ctx context.Context, term string, platform models.PlatformID) ([]igdb.Candidate, error) {
	m.mu.Lock()
	m.token++
	token := m.token
	if m.current != nil {
		m.current.Stop()
		m.current = nil
	}

	if term == "" {
		m.mu.Unlock()
		return nil, nil
	}
	if !m.Configured() {
		m.mu.Unlock()
		return nil, srvErrors.NewMetadataUnavailableError("client id and secret are not set")
	}

	hint := 0
	if p, ok := models.GetPlatform(platform); ok {
		hint = p.IGDBID
	}

	timeout := m.timeout
	future := scheduler.Submit(m.scheduler, func(ctx context.Context) ([]igdb.Game, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return m.searcher.Search(ctx, term, hint)
	})
	m.current = future
	m.mu.Unlock()

	var result scheduler.Result[[]igdb.Game]
	select {
	case result = <-future.C():
	case <-ctx.Done():
		future.Stop()
		return nil, ctx.Err()
	}

	m.mu.Lock()
	stale := token != m.token
	if !stale {
		m.current = nil
	}
	m.mu.Unlock()

	if stale {
		m.log.Debugw("dropping superseded search", "term", term, "token", token)
		return nil, srvErrors.NewStaleSearchError(term, token)
	}
	if result.Err != nil {
		return nil, result.Err
	}

	candidates := make([]igdb.Candidate, 0, len(result.Data))
	for _, g := range result.Data {
		candidates = append(candidates, igdb.ToCandidate(g, hint))
	}
	m.log.Debugw("metadata search done", "term", term, "candidates", len(candidates))
	return candidates, nil
}

// SaveCover downloads url as the cover of id and waits for it.
func (m *MetadataService) SaveCover(ctx context.Context, id int64, url string) error {
	if url == "" {
		return nil
	}

	timeout := m.timeout
	future := scheduler.Submit(m.scheduler, func(ctx context.Context) (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return struct{}{}, m.covers.SaveFromURL(ctx, id, url)
	})

	select {
	case r := <-future.C():
		if r.Err != nil {
			m.log.Warnw("failed to save cover", "id", id, "url", url, "error", r.Err)
		}
		return r.Err
	case <-ctx.Done():
		future.Stop()
		return ctx.Err()
	}
}
