package models

import (
	"time"
)

// Game is a catalog record. ID, CreationDate and ModificationDate are owned
// by the store: callers never set them.
type Game struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title" validate:"required"`
	Developer         string          `json:"developer" validate:"required"`
	Publisher         string          `json:"publisher" validate:"required"`
	ReleaseYear       int             `json:"releaseYear" validate:"gte=0"`
	Barcode           *string         `json:"barcode,omitempty" validate:"omitempty,numeric,max=13"`
	Platform          PlatformID      `json:"platform" validate:"platform"`
	Story             string          `json:"story"`
	Certification     CertificationID `json:"certification" validate:"certification"`
	StorageMedia      StorageMediaID  `json:"storageMedia" validate:"storage_media"`
	Condition         ConditionID     `json:"condition" validate:"condition"`
	Favorite          bool            `json:"favorite"`
	Wishlist          bool            `json:"wishlist"`
	BoughtDate        *time.Time      `json:"boughtDate,omitempty"`
	Store             *string         `json:"store,omitempty"`
	PaidPriceCurrency string          `json:"paidPriceCurrency" validate:"len=3,uppercase"`
	PaidPriceAmount   float64         `json:"paidPriceAmount" validate:"gte=0"`
	IGDBSlug          *string         `json:"igdbSlug,omitempty"`
	CreationDate      time.Time       `json:"creationDate"`
	ModificationDate  time.Time       `json:"modificationDate"`
}

// NewGame returns a record with the column defaults applied.
func NewGame() Game {
	return Game{
		Condition:         ConditionCIB,
		PaidPriceCurrency: DefaultCurrency,
	}
}

// IGDBURL is the outbound link built from IGDBSlug. Empty when the game
// was not created from a metadata search.
func (g Game) IGDBURL() string {
	if g.IGDBSlug == nil || *g.IGDBSlug == "" {
		return ""
	}
	return "https://igdb.com/games/" + *g.IGDBSlug
}
