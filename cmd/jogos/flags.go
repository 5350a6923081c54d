package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/util"
)

// gameFlags are the record fields settable from the command line.
type gameFlags struct {
	title         string
	developer     string
	publisher     string
	releaseYear   int
	barcode       string
	platform      string
	story         string
	certification string
	storageMedia  string
	condition     string
	favorite      bool
	wishlist      bool
	boughtDate    string
	store         string
	currency      string
	price         float64
}

func (f *gameFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "game title")
	fs.StringVar(&f.developer, "developer", "", "developer")
	fs.StringVar(&f.publisher, "publisher", "", "publisher")
	fs.IntVar(&f.releaseYear, "year", 0, "release year")
	fs.StringVar(&f.barcode, "barcode", "", "barcode (up to 13 digits)")
	fs.StringVar(&f.platform, "platform", "", "platform code, e.g. NINTENDO_SWITCH")
	fs.StringVar(&f.story, "story", "", "short description")
	fs.StringVar(&f.certification, "certification", "", "certification code, e.g. PEGI_12")
	fs.StringVar(&f.storageMedia, "media", "", "storage media code, e.g. BLURAY")
	fs.StringVar(&f.condition, "condition", string(models.ConditionCIB), "condition code: CIB, LOOSE or SEALED")
	fs.BoolVar(&f.favorite, "favorite", false, "mark as favorite")
	fs.BoolVar(&f.wishlist, "wishlist", false, "add to the wishlist instead of the collection")
	fs.StringVar(&f.boughtDate, "bought", "", "purchase date (YYYY-MM-DD)")
	fs.StringVar(&f.store, "store", "", "where it was bought")
	fs.StringVar(&f.currency, "currency", "", "price currency (ISO code); new games default to the locale.currency preference")
	fs.Float64Var(&f.price, "price", 0, "price paid")
}

// apply copies the flags that were set on fs into g. With all set, every
// flag is copied, defaults included.
func (f *gameFlags) apply(fs *pflag.FlagSet, g *models.Game, all bool) error {
	set := func(name string) bool {
		return all || fs.Changed(name)
	}

	if set("title") {
		g.Title = f.title
	}
	if set("developer") {
		g.Developer = f.developer
	}
	if set("publisher") {
		g.Publisher = f.publisher
	}
	if set("year") {
		g.ReleaseYear = f.releaseYear
	}
	if set("barcode") {
		g.Barcode = util.PtrOrNil(f.barcode)
	}
	if set("platform") {
		g.Platform = models.PlatformID(f.platform)
	}
	if set("story") {
		g.Story = f.story
	}
	if set("certification") {
		g.Certification = models.CertificationID(f.certification)
	}
	if set("media") {
		g.StorageMedia = models.StorageMediaID(f.storageMedia)
	}
	if set("condition") {
		g.Condition = models.ConditionID(f.condition)
	}
	if set("favorite") {
		g.Favorite = f.favorite
	}
	if set("wishlist") {
		g.Wishlist = f.wishlist
	}
	if set("bought") {
		if f.boughtDate == "" {
			g.BoughtDate = nil
		} else {
			t, err := time.Parse(time.DateOnly, f.boughtDate)
			if err != nil {
				return err
			}
			g.BoughtDate = &t
		}
	}
	if set("store") {
		g.Store = util.PtrOrNil(f.store)
	}
	if set("currency") && f.currency != "" {
		g.PaidPriceCurrency = f.currency
	}
	if set("price") {
		g.PaidPriceAmount = f.price
	}
	return nil
}
