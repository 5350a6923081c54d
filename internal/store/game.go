package store

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

// DefaultRecentsLimit caps ListRecents when the caller passes no limit.
const DefaultRecentsLimit = 30

type GameStore struct {
	db     QueryInterceptor
	covers CoverRemover
	now    func() time.Time
	lang   language.Tag
	log    *zap.SugaredLogger
}

func NewGameStore(db QueryInterceptor, covers CoverRemover, now func() time.Time, lang language.Tag) *GameStore {
	return &GameStore{
		db:     db,
		covers: covers,
		now:    now,
		lang:   lang,
		log:    zap.S().Named("game_store"),
	}
}

// Find runs a game query built from opts. Without a sort option rows come
// back in id order.
func (s *GameStore) Find(ctx context.Context, opts ...ListOption) ([]models.Game, error) {
	builder := sq.Select(gameColumns...).From("game")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

func (s *GameStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("game")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// List returns the owned collection ordered by title.
func (s *GameStore) List(ctx context.Context) ([]models.Game, error) {
	return s.Find(ctx, ByWishlist(false), WithDefaultSort())
}

func (s *GameStore) ListByPlatform(ctx context.Context, platform models.PlatformID) ([]models.Game, error) {
	return s.Find(ctx, ByWishlist(false), ByPlatform(platform), WithDefaultSort())
}

// ListFavorites returns every favorite, wishlist entries included.
func (s *GameStore) ListFavorites(ctx context.Context) ([]models.Game, error) {
	return s.Find(ctx, ByFavorite(), WithDefaultSort())
}

func (s *GameStore) ListWishlist(ctx context.Context) ([]models.Game, error) {
	return s.Find(ctx, ByWishlist(true), WithDefaultSort())
}

// ListRecents returns the most recently modified owned games. A limit of
// zero or less means DefaultRecentsLimit.
func (s *GameStore) ListRecents(ctx context.Context, limit int) ([]models.Game, error) {
	if limit <= 0 {
		limit = DefaultRecentsLimit
	}
	return s.Find(ctx,
		ByWishlist(false),
		WithSort([]SortParam{{Field: string(models.SortByModificationDate), Desc: true}}),
		WithLimit(uint64(limit)),
	)
}

// ListPlatforms returns the catalog entries of the platforms used by owned
// games, ordered by display name in the store's collation language.
func (s *GameStore) ListPlatforms(ctx context.Context) ([]models.Platform, error) {
	rows, err := s.db.QueryContext(ctx, queryOwnedPlatforms)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := []models.Platform{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		p, ok := models.GetPlatform(models.PlatformID(code))
		if !ok {
			s.log.Warnw("unknown platform code in catalog", "platform", code)
			continue
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	c := collate.New(s.lang)
	slices.SortStableFunc(platforms, func(a, b models.Platform) int {
		return c.CompareString(a.Name, b.Name)
	})

	return platforms, nil
}

// Get returns the game with the given id or a ResourceNotFoundError.
func (s *GameStore) Get(ctx context.Context, id int64) (*models.Game, error) {
	query, args, err := sq.Select(gameColumns...).From("game").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	g, err := scanGame(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewGameNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts g and returns its new id. ID, CreationDate and
// ModificationDate are written back to g.
func (s *GameStore) Create(ctx context.Context, g *models.Game) (int64, error) {
	now := s.now().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	args := append(mutableArgs(g), now.Unix(), now.Unix())
	if _, err := tx.ExecContext(ctx, queryInsertGame, args...); err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, queryMaxGameID).Scan(&id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	g.ID = id
	g.CreationDate = now.UTC()
	g.ModificationDate = now.UTC()

	s.log.Debugw("game created", "id", id, "title", g.Title)
	return id, nil
}

// Update replaces every mutable column of the row matching g.ID and
// refreshes its modification date. The creation date is left untouched and
// the modification date never falls before it, even when the clock steps
// back.
func (s *GameStore) Update(ctx context.Context, g *models.Game) error {
	now := s.now().Truncate(time.Second)

	args := append(mutableArgs(g), now.Unix(), g.ID)
	res, err := s.db.ExecContext(ctx, queryUpdateGame, args...)
	if err != nil {
		return err
	}
	if err := requireRow(res, g.ID); err != nil {
		return err
	}

	modified, err := s.updatedAt(ctx, g.ID)
	if err != nil {
		return err
	}
	g.ModificationDate = modified
	return nil
}

// ToggleFavorite flips g.Favorite and refreshes the modification date.
// No other column is written.
func (s *GameStore) ToggleFavorite(ctx context.Context, g *models.Game) error {
	now := s.now().Truncate(time.Second)
	favorite := !g.Favorite

	res, err := s.db.ExecContext(ctx, queryToggleFavorite, boolToInt(favorite), now.Unix(), g.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res, g.ID); err != nil {
		return err
	}

	modified, err := s.updatedAt(ctx, g.ID)
	if err != nil {
		return err
	}
	g.Favorite = favorite
	g.ModificationDate = modified
	return nil
}

func (s *GameStore) updatedAt(ctx context.Context, id int64) (time.Time, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx, queryGameUpdatedAt, id).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, srvErrors.NewGameNotFoundError(id)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).UTC(), nil
}

// Delete removes the row and then, best effort, its cover blob. A failure to
// remove the blob is logged and does not undo the row delete.
func (s *GameStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, queryDeleteGame, id)
	if err != nil {
		return err
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	if s.covers != nil && s.covers.Exists(id) {
		if err := s.covers.Delete(id); err != nil {
			s.log.Warnw("failed to delete cover", "id", id, "error", err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var (
		g         models.Game
		barcode   sql.NullString
		storeName sql.NullString
		slug      sql.NullString
		boughtAt  sql.NullInt64
		favorite  int
		wishlist  int
		createdAt int64
		updatedAt int64
	)

	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Developer,
		&g.Publisher,
		&g.ReleaseYear,
		&barcode,
		&g.Platform,
		&g.Story,
		&g.Certification,
		&g.StorageMedia,
		&g.Condition,
		&favorite,
		&wishlist,
		&boughtAt,
		&storeName,
		&g.PaidPriceCurrency,
		&g.PaidPriceAmount,
		&slug,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Game{}, err
	}

	g.Barcode = nullString(barcode)
	g.Store = nullString(storeName)
	g.IGDBSlug = nullString(slug)
	if boughtAt.Valid {
		t := time.Unix(boughtAt.Int64, 0).UTC()
		g.BoughtDate = &t
	}
	g.Favorite = favorite != 0
	g.Wishlist = wishlist != 0
	g.CreationDate = time.Unix(createdAt, 0).UTC()
	g.ModificationDate = time.Unix(updatedAt, 0).UTC()

	return g, nil
}

// mutableArgs follows the column order shared by queryInsertGame and queryUpdateGame.
func mutableArgs(g *models.Game) []any {
	var boughtAt any
	if g.BoughtDate != nil {
		boughtAt = g.BoughtDate.Unix()
	}

	return []any{
		g.Title,
		g.Developer,
		g.Publisher,
		g.ReleaseYear,
		stringOrNil(g.Barcode),
		string(g.Platform),
		g.Story,
		string(g.Certification),
		string(g.StorageMedia),
		string(g.Condition),
		boolToInt(g.Favorite),
		boolToInt(g.Wishlist),
		boughtAt,
		stringOrNil(g.Store),
		g.PaidPriceCurrency,
		g.PaidPriceAmount,
		stringOrNil(g.IGDBSlug),
	}
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewGameNotFoundError(id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
