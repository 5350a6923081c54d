package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/jogos-org/jogos/internal/models"
)

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByWishlist(wishlist bool) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"wishlist": boolToInt(wishlist)})
	}
}

func ByFavorite() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"favorite": 1})
	}
}

func ByPlatform(platforms ...models.PlatformID) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(platforms) == 0 {
			return b
		}
		codes := make([]string, 0, len(platforms))
		for _, p := range platforms {
			codes = append(codes, string(p))
		}
		return b.Where(sq.Eq{"platform": codes})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

type SortParam struct {
	Field string
	Desc  bool
}

var sortFieldToDBColumn = map[string]string{
	string(models.SortByTitle):            "title",
	string(models.SortByDeveloper):        "developer",
	string(models.SortByPlatform):         "platform",
	string(models.SortByReleaseYear):      "release_year",
	string(models.SortByModificationDate): "updated_at",
}

// WithDefaultSort orders by title. Titles compare byte-wise, so upper case
// sorts before lower case.
func WithDefaultSort() ListOption {
	return WithSort([]SortParam{{Field: string(models.SortByTitle)}})
}

// WithSort applies the sort params in order, skipping unknown fields, and
// appends id as tie-breaker.
func WithSort(sorts []SortParam) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		var orderClauses []string
		for _, s := range sorts {
			col, ok := sortFieldToDBColumn[s.Field]
			if !ok {
				continue
			}
			if s.Desc {
				orderClauses = append(orderClauses, col+" DESC")
			} else {
				orderClauses = append(orderClauses, col+" ASC")
			}
		}
		orderClauses = append(orderClauses, "id")
		return b.OrderBy(orderClauses...)
	}
}
