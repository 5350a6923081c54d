package services

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/store"
	"github.com/jogos-org/jogos/internal/util"
	"github.com/jogos-org/jogos/internal/view"
)

// GameStore is the catalog store as seen by the services.
type GameStore interface {
	view.Querier
	Count(ctx context.Context, opts ...store.ListOption) (int, error)
	ListPlatforms(ctx context.Context) ([]models.Platform, error)
	Get(ctx context.Context, id int64) (*models.Game, error)
	Create(ctx context.Context, g *models.Game) (int64, error)
	Update(ctx context.Context, g *models.Game) error
	ToggleFavorite(ctx context.Context, g *models.Game) error
	Delete(ctx context.Context, id int64) error
}

// ViewPreferences persists the parts of the view that survive a restart.
type ViewPreferences interface {
	LastScope() models.Scope
	SetLastScope(models.Scope) error
	Presentation() models.Presentation
	SetPresentation(models.Presentation) error
}

// BrowseParams describe a one-off view that does not touch the session.
type BrowseParams struct {
	Scope  models.Scope
	Search string
	Sort   *models.SortKey
}

// CatalogService owns the session view: one pipeline fed by the store and
// refreshed after every mutation.
type CatalogService struct {
	mu       sync.Mutex
	games    GameStore
	prefs    ViewPreferences
	lang     language.Tag
	pipeline *view.Pipeline
	log      *zap.SugaredLogger
}

func NewCatalogService(games GameStore, prefs ViewPreferences, lang language.Tag) *CatalogService {
	return &CatalogService{
		games: games,
		prefs: prefs,
		lang:  lang,
		pipeline: view.NewPipeline(
			view.WithLanguage(lang),
			view.WithPresentation(prefs.Presentation()),
		),
		log: zap.S().Named("catalog_service"),
	}
}

// Open loads the scope the user last looked at.
func (s *CatalogService) Open(ctx context.Context) (view.Result, error) {
	return s.Show(ctx, s.prefs.LastScope())
}

// Show switches the session to scope and remembers it.
func (s *CatalogService) Show(ctx context.Context, scope models.Scope) (view.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := view.Refresh(ctx, s.games, s.pipeline, scope); err != nil {
		return view.Result{}, err
	}
	if err := s.prefs.SetLastScope(scope); err != nil {
		s.log.Warnw("failed to save last scope", "scope", scope.String(), "error", err)
	}
	return s.pipeline.Result(), nil
}

func (s *CatalogService) Search(term string) view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.Search(term)
	return s.pipeline.Result()
}

func (s *CatalogService) SortBy(key models.SortKey) view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.SortBy(key)
	return s.pipeline.Result()
}

func (s *CatalogService) ResetSort() view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.ResetSort()
	return s.pipeline.Result()
}

// Select marks the game with id. A game outside the current view clears
// the selection.
func (s *CatalogService) Select(id int64) view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.Select(id)
	return s.pipeline.Result()
}

func (s *CatalogService) Unselect() view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline.Unselect()
	return s.pipeline.Result()
}

func (s *CatalogService) SetPresentation(p models.Presentation) (view.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.prefs.SetPresentation(p); err != nil {
		return view.Result{}, err
	}
	s.pipeline.SetPresentation(p)
	return s.pipeline.Result(), nil
}

func (s *CatalogService) Snapshot() view.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Result()
}

// Browse computes a view for params on a throwaway pipeline. An explicit
// sort is applied after the scope is loaded, so it also wins over the
// recents order.
func (s *CatalogService) Browse(ctx context.Context, params BrowseParams) (view.Result, error) {
	p := view.NewPipeline(
		view.WithLanguage(s.lang),
		view.WithPresentation(s.prefs.Presentation()),
	)
	p.Search(params.Search)
	if err := view.Refresh(ctx, s.games, p, params.Scope); err != nil {
		return view.Result{}, err
	}
	if params.Sort != nil {
		p.SortBy(*params.Sort)
	}
	return p.Result(), nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Game, error) {
	return s.games.Get(ctx, id)
}

func (s *CatalogService) Count(ctx context.Context) (int, error) {
	return s.games.Count(ctx)
}

func (s *CatalogService) Platforms(ctx context.Context) ([]models.Platform, error) {
	return s.games.ListPlatforms(ctx)
}

// Create validates and stores g, then shows it: the search is cleared, the
// view moves to g's platform (or the wishlist) and g is selected.
func (s *CatalogService) Create(ctx context.Context, g models.Game) (*models.Game, view.Result, error) {
	if err := g.Validate(); err != nil {
		return nil, view.Result{}, err
	}
	g.PaidPriceAmount = util.Round(g.PaidPriceAmount)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.games.Create(ctx, &g); err != nil {
		return nil, view.Result{}, err
	}
	s.log.Infow("game created", "id", g.ID, "title", g.Title, "platform", g.Platform)

	r, err := s.focus(ctx, g)
	return &g, r, err
}

// Update validates and replaces the stored record with g, then shows it the
// same way Create does.
func (s *CatalogService) Update(ctx context.Context, g models.Game) (*models.Game, view.Result, error) {
	if err := g.Validate(); err != nil {
		return nil, view.Result{}, err
	}
	g.PaidPriceAmount = util.Round(g.PaidPriceAmount)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.games.Get(ctx, g.ID)
	if err != nil {
		return nil, view.Result{}, err
	}
	g.CreationDate = current.CreationDate

	if err := s.games.Update(ctx, &g); err != nil {
		return nil, view.Result{}, err
	}
	s.log.Infow("game updated", "id", g.ID, "title", g.Title)

	r, err := s.focus(ctx, g)
	return &g, r, err
}

// ToggleFavorite flips the favorite flag of id and refreshes the current
// scope, keeping the game selected when it is still visible.
func (s *CatalogService) ToggleFavorite(ctx context.Context, id int64) (*models.Game, view.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, view.Result{}, err
	}
	if err := s.games.ToggleFavorite(ctx, g); err != nil {
		return nil, view.Result{}, err
	}

	if err := view.Refresh(ctx, s.games, s.pipeline, s.pipeline.Scope()); err != nil {
		return nil, view.Result{}, err
	}
	s.pipeline.Select(id)
	return g, s.pipeline.Result(), nil
}

// Delete removes id and its cover, then refreshes the current scope.
func (s *CatalogService) Delete(ctx context.Context, id int64) (view.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.games.Delete(ctx, id); err != nil {
		return view.Result{}, err
	}
	s.log.Infow("game deleted", "id", id)

	if err := view.Refresh(ctx, s.games, s.pipeline, s.pipeline.Scope()); err != nil {
		return view.Result{}, err
	}
	return s.pipeline.Result(), nil
}

// focus must be called with s.mu held.
func (s *CatalogService) focus(ctx context.Context, g models.Game) (view.Result, error) {
	scope := models.PlatformScope(g.Platform)
	if g.Wishlist {
		scope = models.WishlistScope()
	}

	s.pipeline.Search("")
	if err := view.Refresh(ctx, s.games, s.pipeline, scope); err != nil {
		return view.Result{}, err
	}
	if err := s.prefs.SetLastScope(scope); err != nil {
		s.log.Warnw("failed to save last scope", "scope", scope.String(), "error", err)
	}
	s.pipeline.Select(g.ID)
	return s.pipeline.Result(), nil
}
