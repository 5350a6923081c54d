package igdb

import (
	"slices"
	"strings"
	"time"

	"github.com/jogos-org/jogos/internal/models"
)

// Candidate is a search hit turned into a record seed for the create form.
type Candidate struct {
	Game     models.Game
	CoverURL string
}

// ToCandidate maps g to a record seed. The platform is platformHint when
// g lists it, otherwise the first of g's platforms known to the catalog.
func ToCandidate(g Game, platformHint int) Candidate {
	seed := models.NewGame()
	seed.Title = g.Name
	seed.Story = g.Summary
	if g.Slug != "" {
		slug := g.Slug
		seed.IGDBSlug = &slug
	}
	if g.FirstReleaseDate > 0 {
		seed.ReleaseYear = time.Unix(g.FirstReleaseDate, 0).UTC().Year()
	}

	var developers, publishers []string
	for _, ic := range g.InvolvedCompanies {
		if ic.Developer {
			developers = append(developers, ic.Company.Name)
		}
		if ic.Publisher {
			publishers = append(publishers, ic.Company.Name)
		}
	}
	seed.Developer = strings.Join(developers, ", ")
	seed.Publisher = strings.Join(publishers, ", ")

	if platformHint > 0 && slices.Contains(g.Platforms, platformHint) {
		if id, ok := models.PlatformFromIGDB(platformHint); ok {
			seed.Platform = id
		}
	}
	if seed.Platform == "" {
		for _, p := range g.Platforms {
			if id, ok := models.PlatformFromIGDB(p); ok {
				seed.Platform = id
				break
			}
		}
	}

	c := Candidate{Game: seed}
	if g.Cover != nil {
		c.CoverURL = CoverURL(g.Cover.ImageID, CoverBig)
	}
	return c
}
