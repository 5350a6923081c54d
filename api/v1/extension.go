package v1

import (
	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/services"
	"github.com/jogos-org/jogos/internal/view"
	"github.com/jogos-org/jogos/pkg/igdb"
)

// CoverLookup resolves the stored cover of a game.
type CoverLookup interface {
	Exists(id int64) bool
	Path(id int64) string
}

// NewGameFromModel converts a models.Game to an API Game. The cover
// fields are filled from covers when it is not nil.
func NewGameFromModel(g models.Game, covers CoverLookup) Game {
	apiGame := Game{
		Id:                g.ID,
		Title:             g.Title,
		Developer:         g.Developer,
		Publisher:         g.Publisher,
		ReleaseYear:       g.ReleaseYear,
		Barcode:           g.Barcode,
		Platform:          string(g.Platform),
		PlatformName:      models.PlatformName(g.Platform),
		Story:             g.Story,
		Certification:     string(g.Certification),
		StorageMedia:      string(g.StorageMedia),
		Condition:         string(g.Condition),
		Favorite:          g.Favorite,
		Wishlist:          g.Wishlist,
		BoughtDate:        g.BoughtDate,
		Store:             g.Store,
		PaidPriceCurrency: g.PaidPriceCurrency,
		PaidPriceAmount:   g.PaidPriceAmount,
		IgdbSlug:          g.IGDBSlug,
		CreationDate:      g.CreationDate,
		ModificationDate:  g.ModificationDate,
	}

	if url := g.IGDBURL(); url != "" {
		apiGame.IgdbUrl = &url
	}

	if covers != nil && covers.Exists(g.ID) {
		path := covers.Path(g.ID)
		apiGame.HasCover = true
		apiGame.CoverPath = &path
	}

	return apiGame
}

func NewGamesFromModel(games []models.Game, covers CoverLookup) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		out = append(out, NewGameFromModel(g, covers))
	}
	return out
}

// ToModel converts the input to a record seed. Omitted optional fields get
// the record defaults.
func (in GameInput) ToModel() models.Game {
	g := models.NewGame()
	g.Title = in.Title
	g.Developer = in.Developer
	g.Publisher = in.Publisher
	g.ReleaseYear = in.ReleaseYear
	g.Barcode = in.Barcode
	g.Platform = models.PlatformID(in.Platform)
	g.Certification = models.CertificationID(in.Certification)
	g.StorageMedia = models.StorageMediaID(in.StorageMedia)
	g.BoughtDate = in.BoughtDate
	g.Store = in.Store
	g.IGDBSlug = in.IgdbSlug

	if in.Story != nil {
		g.Story = *in.Story
	}
	if in.Condition != nil {
		g.Condition = models.ConditionID(*in.Condition)
	}
	if in.Favorite != nil {
		g.Favorite = *in.Favorite
	}
	if in.Wishlist != nil {
		g.Wishlist = *in.Wishlist
	}
	if in.PaidPriceCurrency != nil {
		g.PaidPriceCurrency = *in.PaidPriceCurrency
	}
	if in.PaidPriceAmount != nil {
		g.PaidPriceAmount = *in.PaidPriceAmount
	}

	return g
}

// NewGameInputFromModel is the inverse of ToModel, used for metadata seeds.
func NewGameInputFromModel(g models.Game) GameInput {
	in := GameInput{
		Title:         g.Title,
		Developer:     g.Developer,
		Publisher:     g.Publisher,
		ReleaseYear:   g.ReleaseYear,
		Barcode:       g.Barcode,
		Platform:      string(g.Platform),
		Certification: string(g.Certification),
		StorageMedia:  string(g.StorageMedia),
		BoughtDate:    g.BoughtDate,
		Store:         g.Store,
		IgdbSlug:      g.IGDBSlug,
	}

	story := g.Story
	condition := string(g.Condition)
	currency := g.PaidPriceCurrency
	in.Story = &story
	in.Condition = &condition
	in.PaidPriceCurrency = &currency

	return in
}

func NewGameListResponse(r view.Result, covers CoverLookup) GameListResponse {
	resp := GameListResponse{
		Scope:        r.Scope.String(),
		Search:       r.Search,
		Sort:         r.Sort.String(),
		State:        DisplayState(r.State),
		Presentation: Presentation(r.Presentation),
		Games:        NewGamesFromModel(r.Items, covers),
	}

	if r.PlatformIcon != "" {
		icon := r.PlatformIcon
		resp.PlatformIcon = &icon
	}

	return resp
}

func NewPlatformFromModel(p models.Platform) Platform {
	return Platform{
		Id:         string(p.ID),
		Name:       p.Name,
		IconName:   p.IconName,
		Generation: p.Generation,
	}
}

func NewCandidateFromModel(c igdb.Candidate) Candidate {
	apiCandidate := Candidate{Game: NewGameInputFromModel(c.Game)}
	if c.CoverURL != "" {
		url := c.CoverURL
		apiCandidate.CoverUrl = &url
	}
	return apiCandidate
}

// ParseBrowseParams converts the list query parameters to service params.
func ParseBrowseParams(scope, search, sort *string) (services.BrowseParams, error) {
	var params services.BrowseParams

	var rawScope string
	if scope != nil {
		rawScope = *scope
	}
	s, err := models.ParseScope(rawScope)
	if err != nil {
		return params, err
	}
	params.Scope = s

	if search != nil {
		params.Search = *search
	}

	if sort != nil && *sort != "" {
		key, err := models.ParseSortKey(*sort)
		if err != nil {
			return params, err
		}
		params.Sort = &key
	}

	return params, nil
}
