package view

import "github.com/jogos-org/jogos/internal/models"

// DeriveState picks the display state for a view. The first matching rule
// wins:
//
//  1. search non-empty, no items   → no results
//  2. wishlist scope, no items     → no wishlist items
//  3. favorites scope, no items    → no favorites
//  4. platform scope, no items     → no games for platform
//  5. all or recents, no items     → no games
//  6. otherwise                    → normal list
func DeriveState(scope models.Scope, searchLen, count int) models.DisplayState {
	if count > 0 {
		return models.DisplayStateNormalList
	}
	if searchLen > 0 {
		return models.DisplayStateNoResults
	}

	switch scope.Kind {
	case models.ScopeWishlist:
		return models.DisplayStateNoWishlistItems
	case models.ScopeFavorites:
		return models.DisplayStateNoFavorites
	case models.ScopePlatform:
		return models.DisplayStateNoGamesForPlatform
	case models.ScopeAll, models.ScopeRecents:
		return models.DisplayStateNoGames
	}
	return models.DisplayStateNormalList
}

// PlatformIcon returns the icon shown with the no-games-for-platform state.
func PlatformIcon(scope models.Scope, state models.DisplayState) string {
	if state != models.DisplayStateNoGamesForPlatform {
		return ""
	}
	p, ok := models.GetPlatform(scope.Platform)
	if !ok {
		return ""
	}
	return p.IconName
}
