package igdb

import (
	"fmt"
	"time"
)

// Token is an app access token issued by the Twitch OAuth endpoint.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether t holds a token that has not expired at now. A
// token without expiration never expires.
func (t Token) Valid(now time.Time) bool {
	if t.AccessToken == "" {
		return false
	}
	return t.ExpiresAt.IsZero() || now.Before(t.ExpiresAt)
}

// TokenCache persists the access token between runs.
type TokenCache interface {
	Token() Token
	SaveToken(Token) error
}

type oauthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type Game struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	Summary           string            `json:"summary"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	Platforms         []int             `json:"platforms"`
	Cover             *Cover            `json:"cover,omitempty"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
}

type Cover struct {
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
}

type InvolvedCompany struct {
	Company   Company `json:"company"`
	Developer bool    `json:"developer"`
	Publisher bool    `json:"publisher"`
}

type Company struct {
	Name string `json:"name"`
}

type CoverSize string

const (
	CoverSmall CoverSize = "cover_small"
	CoverBig   CoverSize = "cover_big"
)

// CoverURL returns the image URL of a cover, or "" without an image id.
func CoverURL(imageID string, size CoverSize) string {
	if imageID == "" {
		return ""
	}
	return fmt.Sprintf("https://images.igdb.com/igdb/image/upload/t_%s/%s.jpg", size, imageID)
}
