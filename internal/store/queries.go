package store

// gameColumns is the scan order used by scanGame.
var gameColumns = []string{
	"id",
	"title",
	"developer",
	"publisher",
	"release_year",
	"barcode",
	"platform",
	"story",
	"certification",
	"storage_media",
	`COALESCE("condition", 'CIB')`,
	"favorite",
	"wishlist",
	"bought_at",
	"store",
	"paid_price_currency",
	"paid_price_amount",
	"igdb_slug",
	"created_at",
	"updated_at",
}

// Game queries
const (
	queryInsertGame = `
		INSERT INTO game (
			title, developer, publisher, release_year, barcode, platform, story,
			certification, storage_media, "condition", favorite, wishlist, bought_at,
			store, paid_price_currency, paid_price_amount, igdb_slug, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryMaxGameID = `SELECT MAX(id) FROM game`

	queryUpdateGame = `
		UPDATE game SET
			title = ?,
			developer = ?,
			publisher = ?,
			release_year = ?,
			barcode = ?,
			platform = ?,
			story = ?,
			certification = ?,
			storage_media = ?,
			"condition" = ?,
			favorite = ?,
			wishlist = ?,
			bought_at = ?,
			store = ?,
			paid_price_currency = ?,
			paid_price_amount = ?,
			igdb_slug = ?,
			updated_at = GREATEST(?, created_at)
		WHERE id = ?`

	queryToggleFavorite = `UPDATE game SET favorite = ?, updated_at = GREATEST(?, created_at) WHERE id = ?`

	queryGameUpdatedAt = `SELECT updated_at FROM game WHERE id = ?`

	queryDeleteGame = `DELETE FROM game WHERE id = ?`

	queryOwnedPlatforms = `SELECT DISTINCT platform FROM game WHERE wishlist = 0`
)
