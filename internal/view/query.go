package view

import (
	"context"
	"fmt"

	"github.com/jogos-org/jogos/internal/models"
)

// Querier is the part of the game store that backs each scope.
type Querier interface {
	List(ctx context.Context) ([]models.Game, error)
	ListByPlatform(ctx context.Context, platform models.PlatformID) ([]models.Game, error)
	ListFavorites(ctx context.Context) ([]models.Game, error)
	ListWishlist(ctx context.Context) ([]models.Game, error)
	ListRecents(ctx context.Context, limit int) ([]models.Game, error)
}

// Query fetches the record set of scope. Recents uses the store's default limit.
func Query(ctx context.Context, q Querier, scope models.Scope) ([]models.Game, error) {
	switch scope.Kind {
	case models.ScopeAll:
		return q.List(ctx)
	case models.ScopeRecents:
		return q.ListRecents(ctx, 0)
	case models.ScopeFavorites:
		return q.ListFavorites(ctx)
	case models.ScopeWishlist:
		return q.ListWishlist(ctx)
	case models.ScopePlatform:
		return q.ListByPlatform(ctx, scope.Platform)
	}
	return nil, fmt.Errorf("unknown scope: %s", scope.Kind)
}

// Refresh queries scope and loads it into p.
func Refresh(ctx context.Context, q Querier, p *Pipeline, scope models.Scope) error {
	records, err := Query(ctx, q, scope)
	if err != nil {
		return err
	}
	p.Load(scope, records)
	return nil
}
