package store

import (
	"database/sql"
	"time"

	"golang.org/x/text/language"
)

// CoverRemover is the part of cover storage the store needs to cascade a
// record delete to its cover blob.
type CoverRemover interface {
	Exists(id int64) bool
	Delete(id int64) error
}

type Option func(*Store)

// WithCovers enables the cover cascade on Game().Delete.
func WithCovers(c CoverRemover) Option {
	return func(s *Store) {
		s.covers = c
	}
}

// WithClock overrides the time source used for creation and modification dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithCollationLanguage sets the language used to order platform display names.
func WithCollationLanguage(tag language.Tag) Option {
	return func(s *Store) {
		s.lang = tag
	}
}

// Store provides access to all storage repositories.
type Store struct {
	db     *sql.DB
	covers CoverRemover
	now    func() time.Time
	lang   language.Tag
	game   *GameStore
}

func NewStore(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:   db,
		now:  time.Now,
		lang: language.English,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.game = NewGameStore(NewQueryInterceptor(db), s.covers, s.now, s.lang)
	return s
}

func (s *Store) Game() *GameStore {
	return s.game
}

func (s *Store) Close() error {
	return s.db.Close()
}
