package models

// DisplayState is what the games view currently shows.
type DisplayState string

const (
	DisplayStateNormalList         DisplayState = "normal"
	DisplayStateNoResults          DisplayState = "no-results"
	DisplayStateNoWishlistItems    DisplayState = "no-wishlist-items"
	DisplayStateNoFavorites        DisplayState = "no-favorites"
	DisplayStateNoGamesForPlatform DisplayState = "no-games-for-platform"
	DisplayStateNoGames            DisplayState = "no-games"
)

func (d DisplayState) IsEmpty() bool {
	return d != DisplayStateNormalList
}

// Presentation is how a normal list is rendered. It is a user preference
// and never influences the display state.
type Presentation string

const (
	PresentationGrid  Presentation = "grid"
	PresentationTable Presentation = "table"
)
