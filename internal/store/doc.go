// Package store implements the data access layer for jogos.
//
// The catalog lives in a single DuckDB table, game, created and evolved by
// the migrations subpackage. Every query goes through a QueryInterceptor so
// that SQL can be traced at debug level without touching the sub-stores.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────┐
//	│                Store (facade)                │
//	├──────────────────────────────────────────────┤
//	│                  GameStore                   │
//	│                      ▼                       │
//	│     QueryInterceptor ──► *sql.DB (duckdb)    │
//	│                      ▼                       │
//	│        game table        CoverRemover        │
//	└──────────────────────────────────────────────┘
//
// # Schema
//
//	game (
//	    id INTEGER PRIMARY KEY DEFAULT nextval('game_id_seq'),
//	    title, developer, publisher VARCHAR NOT NULL,
//	    release_year INTEGER,
//	    barcode VARCHAR,
//	    platform, certification, storage_media VARCHAR NOT NULL,
//	    story VARCHAR,
//	    "condition" VARCHAR DEFAULT 'CIB',          -- since v2
//	    favorite, wishlist INTEGER (0/1),
//	    bought_at BIGINT,                           -- unix seconds
//	    store VARCHAR,
//	    paid_price_currency VARCHAR DEFAULT 'USD',
//	    paid_price_amount DOUBLE DEFAULT 0,
//	    igdb_slug VARCHAR,                          -- since v3
//	    created_at, updated_at BIGINT               -- unix seconds
//	)
//
// Dates are stored with second precision and read back in UTC. The cover
// image is not a column: a game has a cover when CoverRemover.Exists says so.
//
// # Initialization Flow
//
//	db, _ := store.NewDB(path)
//	migrations.Run(ctx, db, prefs)   → creates or upgrades game
//	s := store.NewStore(db,
//	    store.WithCovers(covers),
//	    store.WithCollationLanguage(language.BrazilianPortuguese),
//	)
//
// # GameStore
//
// Scoped reads:
//
//	┌──────────────────┬──────────────────────────────┬────────────────────┐
//	│  Method          │  Filter                      │  Order             │
//	├──────────────────┼──────────────────────────────┼────────────────────┤
//	│  List            │  wishlist = 0                │  title             │
//	│  ListByPlatform  │  wishlist = 0, platform = ?  │  title             │
//	│  ListFavorites   │  favorite = 1                │  title             │
//	│  ListWishlist    │  wishlist = 1                │  title             │
//	│  ListRecents     │  wishlist = 0, LIMIT n       │  updated_at DESC   │
//	│  ListPlatforms   │  DISTINCT platform, owned    │  collated name     │
//	└──────────────────┴──────────────────────────────┴────────────────────┘
//
// Every order appends id as tie-breaker. Title order is the engine's binary
// collation: "Zelda" sorts before "ape".
//
// ListPlatforms resolves codes against models.Platforms and re-sorts by
// display name with golang.org/x/text/collate, since display names and
// codes do not share an order.
//
// Writes:
//   - Create(ctx, *Game) → id. Inserts and reads MAX(id) in one transaction.
//     Sets ID, CreationDate and ModificationDate on the argument.
//   - Update(ctx, *Game). Replaces every column except id and created_at.
//   - ToggleFavorite(ctx, *Game). Writes !g.Favorite and updated_at only.
//   - Delete(ctx, id). Removes the row, then the cover if one exists. A cover
//     failure is logged and the row stays deleted.
//
// Update, ToggleFavorite and Delete return a ResourceNotFoundError when no
// row matches, as does Get. Engine errors are returned as they come.
//
// # List Options
//
// Find and Count take squirrel-based ListOption functions:
//
//	games, err := s.Game().Find(ctx,
//	    store.ByWishlist(false),
//	    store.ByPlatform(models.PlatformNES, models.PlatformSuperNintendo),
//	    store.WithSort([]store.SortParam{{Field: "year", Desc: true}}),
//	    store.WithLimit(10),
//	)
//
// Sort fields map to columns:
//
//	┌───────────────────┬──────────────┐
//	│  Field            │  Column      │
//	├───────────────────┼──────────────┤
//	│  title            │  title       │
//	│  developer        │  developer   │
//	│  platform         │  platform    │
//	│  year             │  release_year│
//	│  modification_date│  updated_at  │
//	└───────────────────┴──────────────┘
package store
