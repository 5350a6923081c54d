package models

import "fmt"

type ScopeKind string

const (
	ScopeAll       ScopeKind = "ALL_GAMES"
	ScopeRecents   ScopeKind = "RECENTS"
	ScopeFavorites ScopeKind = "FAVORITES"
	ScopeWishlist  ScopeKind = "WISHLIST"
	ScopePlatform  ScopeKind = "PLATFORM"
)

// Scope is the top-level view selection. Platform is set only for ScopePlatform.
type Scope struct {
	Kind     ScopeKind
	Platform PlatformID
}

func AllGamesScope() Scope  { return Scope{Kind: ScopeAll} }
func RecentsScope() Scope   { return Scope{Kind: ScopeRecents} }
func FavoritesScope() Scope { return Scope{Kind: ScopeFavorites} }
func WishlistScope() Scope  { return Scope{Kind: ScopeWishlist} }

func PlatformScope(id PlatformID) Scope {
	return Scope{Kind: ScopePlatform, Platform: id}
}

// ParseScope accepts the sidebar identifiers: ALL_GAMES, RECENTS, FAVORITES,
// WISHLIST or a platform code.
func ParseScope(s string) (Scope, error) {
	switch ScopeKind(s) {
	case "", ScopeAll:
		return AllGamesScope(), nil
	case ScopeRecents:
		return RecentsScope(), nil
	case ScopeFavorites:
		return FavoritesScope(), nil
	case ScopeWishlist:
		return WishlistScope(), nil
	}
	if IsValidPlatform(PlatformID(s)) {
		return PlatformScope(PlatformID(s)), nil
	}
	return Scope{}, fmt.Errorf("invalid scope: %s", s)
}

func (s Scope) String() string {
	if s.Kind == ScopePlatform {
		return string(s.Platform)
	}
	return string(s.Kind)
}
