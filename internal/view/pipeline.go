package view

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
)

// Result is an immutable snapshot of what the view shows.
type Result struct {
	Scope        models.Scope
	Search       string
	Sort         models.SortKey
	Items        []models.Game
	State        models.DisplayState
	PlatformIcon string
	Presentation models.Presentation
	Selected     *models.Game
}

type Option func(*Pipeline)

func WithLanguage(tag language.Tag) Option {
	return func(p *Pipeline) {
		p.lang = tag
	}
}

func WithPresentation(presentation models.Presentation) Option {
	return func(p *Pipeline) {
		p.presentation = presentation
	}
}

// Pipeline derives the visible games from a loaded record set:
// records → FilterSet → Sorter → Selection. Everything is recomputed from
// the snapshot on every change; nothing is patched in place.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	lang         language.Tag
	presentation models.Presentation

	scope   models.Scope
	records []models.Game
	filters *FilterSet
	sorter  *Sorter

	items    []models.Game
	state    models.DisplayState
	selected int
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		lang:         language.English,
		presentation: models.PresentationGrid,
		scope:        models.AllGamesScope(),
		selected:     -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.filters = NewFilterSet()
	p.sorter = NewSorter(p.lang)
	p.derive()
	return p
}

// Load replaces the record set with a snapshot of records fetched for
// scope, configures filters and sort for that scope and clears the
// selection. The search term is kept.
func (p *Pipeline) Load(scope models.Scope, records []models.Game) {
	p.scope = scope
	p.records = slices.Clone(records)

	p.filters.SetPlatform("")
	p.filters.SetFavoriteMode(FavoriteAny)
	p.filters.SetWishlistMode(WishlistOwned)
	switch scope.Kind {
	case models.ScopeFavorites:
		p.filters.SetFavoriteMode(FavoriteOnly)
	case models.ScopeWishlist:
		p.filters.SetWishlistMode(WishlistOnly)
	case models.ScopePlatform:
		p.filters.SetPlatform(scope.Platform)
	}
	p.sorter.ResetForScope(scope)

	p.selected = -1
	p.derive()
}

// Search sets the title filter. The selection is kept if still visible.
func (p *Pipeline) Search(term string) {
	p.filters.SetTitle(term)
	p.rederive()
}

// SortBy makes key the user's sort choice. The selection is kept.
func (p *Pipeline) SortBy(key models.SortKey) {
	p.sorter.Set(key)
	p.rederive()
}

// ResetSort drops the user's sort choice.
func (p *Pipeline) ResetSort() {
	p.sorter.ClearOverride()
	p.sorter.ResetForScope(p.scope)
	p.rederive()
}

func (p *Pipeline) SetPresentation(presentation models.Presentation) {
	p.presentation = presentation
}

// Select marks the visible game with the given id. When it is not visible
// the selection is cleared and Select returns false.
func (p *Pipeline) Select(id int64) bool {
	p.selected = p.indexOf(id)
	return p.selected >= 0
}

func (p *Pipeline) Unselect() {
	p.selected = -1
}

func (p *Pipeline) Scope() models.Scope {
	return p.scope
}

func (p *Pipeline) Result() Result {
	r := Result{
		Scope:        p.scope,
		Search:       p.filters.Title(),
		Sort:         p.sorter.Key(),
		Items:        slices.Clone(p.items),
		State:        p.state,
		PlatformIcon: PlatformIcon(p.scope, p.state),
		Presentation: p.presentation,
	}
	if p.selected >= 0 {
		g := p.items[p.selected]
		r.Selected = &g
	}
	return r
}

func (p *Pipeline) rederive() {
	var id int64
	hadSelection := p.selected >= 0
	if hadSelection {
		id = p.items[p.selected].ID
	}

	p.derive()

	p.selected = -1
	if hadSelection {
		p.Select(id)
	}
}

func (p *Pipeline) derive() {
	p.items = p.sorter.Apply(p.filters.Apply(p.records))
	p.state = DeriveState(p.scope, len(p.filters.Title()), len(p.items))
}

func (p *Pipeline) indexOf(id int64) int {
	for i, g := range p.items {
		if g.ID == id {
			return i
		}
	}
	return -1
}
