package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jogos-org/jogos/internal/models"
)

// Predicate reports whether a game passes one filter.
type Predicate func(models.Game) bool

// TitleContains matches titles containing term, ignoring case. An empty
// term matches everything.
func TitleContains(term string) Predicate {
	if term == "" {
		return matchAll
	}
	needle := cases.Fold().String(term)
	return func(g models.Game) bool {
		return strings.Contains(cases.Fold().String(g.Title), needle)
	}
}

// OnPlatform matches the exact platform code. An empty code matches everything.
func OnPlatform(p models.PlatformID) Predicate {
	if p == "" {
		return matchAll
	}
	return func(g models.Game) bool {
		return g.Platform == p
	}
}

func FavoritesOnly() Predicate {
	return func(g models.Game) bool {
		return g.Favorite
	}
}

// WishlistIs matches games whose wishlist flag equals wishlist.
func WishlistIs(wishlist bool) Predicate {
	return func(g models.Game) bool {
		return g.Wishlist == wishlist
	}
}

func matchAll(models.Game) bool { return true }

type FavoriteMode int

const (
	FavoriteAny FavoriteMode = iota
	FavoriteOnly
)

type WishlistMode int

const (
	// WishlistOwned is the default: only games that are not on the wishlist.
	WishlistOwned WishlistMode = iota
	WishlistOnly
)

// FilterSet is the AND of four independent filters. It does not keep the
// modes mutually exclusive; scopes do that when they configure it.
type FilterSet struct {
	title    string
	platform models.PlatformID
	favorite FavoriteMode
	wishlist WishlistMode

	predicates [4]Predicate
}

func NewFilterSet() *FilterSet {
	f := &FilterSet{}
	f.rebuild()
	return f
}

func (f *FilterSet) SetTitle(term string) {
	f.title = term
	f.rebuild()
}

func (f *FilterSet) Title() string {
	return f.title
}

func (f *FilterSet) SetPlatform(p models.PlatformID) {
	f.platform = p
	f.rebuild()
}

func (f *FilterSet) Platform() models.PlatformID {
	return f.platform
}

func (f *FilterSet) SetFavoriteMode(m FavoriteMode) {
	f.favorite = m
	f.rebuild()
}

func (f *FilterSet) FavoriteMode() FavoriteMode {
	return f.favorite
}

func (f *FilterSet) SetWishlistMode(m WishlistMode) {
	f.wishlist = m
	f.rebuild()
}

func (f *FilterSet) WishlistMode() WishlistMode {
	return f.wishlist
}

func (f *FilterSet) rebuild() {
	f.predicates[0] = TitleContains(f.title)
	f.predicates[1] = OnPlatform(f.platform)
	f.predicates[2] = matchAll
	if f.favorite == FavoriteOnly {
		f.predicates[2] = FavoritesOnly()
	}
	f.predicates[3] = WishlistIs(f.wishlist == WishlistOnly)
}

func (f *FilterSet) Match(g models.Game) bool {
	for _, p := range f.predicates {
		if !p(g) {
			return false
		}
	}
	return true
}

// Apply returns the games that match, in input order.
func (f *FilterSet) Apply(games []models.Game) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	return out
}
