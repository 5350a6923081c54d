package view

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
)

// Sorter holds the single active sort key. A key chosen with Set survives
// scope changes, except Recents which always shows newest first.
type Sorter struct {
	key        models.SortKey
	userKey    models.SortKey
	overridden bool
	collator   *collate.Collator
}

func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{
		key:      models.DefaultSortKey,
		collator: collate.New(lang, collate.IgnoreCase),
	}
}

func (s *Sorter) Key() models.SortKey {
	return s.key
}

// Overridden reports whether the user picked the current key.
func (s *Sorter) Overridden() bool {
	return s.overridden
}

// Set activates key as an explicit user choice.
func (s *Sorter) Set(key models.SortKey) {
	s.key = key
	s.userKey = key
	s.overridden = true
}

// ClearOverride drops the user choice and returns to the default key.
func (s *Sorter) ClearOverride() {
	s.overridden = false
	s.userKey = models.SortKey{}
	s.key = models.DefaultSortKey
}

// ResetForScope applies the scope's sort convention.
func (s *Sorter) ResetForScope(scope models.Scope) {
	switch {
	case scope.Kind == models.ScopeRecents:
		s.key = models.RecentsSortKey
	case s.overridden:
		s.key = s.userKey
	default:
		s.key = models.DefaultSortKey
	}
}

func (s *Sorter) Compare(a, b models.Game) int {
	var c int
	switch s.key.Field {
	case models.SortByTitle:
		c = s.collator.CompareString(a.Title, b.Title)
	case models.SortByDeveloper:
		c = s.collator.CompareString(a.Developer, b.Developer)
	case models.SortByPlatform:
		c = cmp.Compare(a.Platform, b.Platform)
	case models.SortByReleaseYear:
		c = cmp.Compare(a.ReleaseYear, b.ReleaseYear)
	case models.SortByModificationDate:
		c = a.ModificationDate.Compare(b.ModificationDate)
	}
	if s.key.Desc {
		return -c
	}
	return c
}

// Apply returns a sorted copy. Equal keys keep their input order.
func (s *Sorter) Apply(games []models.Game) []models.Game {
	out := slices.Clone(games)
	slices.SortStableFunc(out, s.Compare)
	return out
}
