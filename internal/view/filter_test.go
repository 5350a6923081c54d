package view_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/view"
)

var _ = Describe("FilterSet", func() {
	var corpus []models.Game

	BeforeEach(func() {
		corpus = nil
		platforms := []models.PlatformID{models.PlatformNES, models.PlatformSaturn, models.PlatformPlayStation4}
		names := []string{"Mega Man", "mega man X", "Panzer Dragoon", "Bloodborne"}
		var id int64
		for _, p := range platforms {
			for _, name := range names {
				for _, fav := range []bool{false, true} {
					for _, wish := range []bool{false, true} {
						id++
						g := game(id, name, p)
						g.Favorite = fav
						g.Wishlist = wish
						corpus = append(corpus, g)
					}
				}
			}
		}
	})

	It("should default to the owned collection", func() {
		f := view.NewFilterSet()
		for _, g := range f.Apply(corpus) {
			Expect(g.Wishlist).To(BeFalse())
		}
		Expect(f.Apply(corpus)).To(HaveLen(len(corpus) / 2))
	})

	It("should match titles ignoring case", func() {
		f := view.NewFilterSet()
		f.SetTitle("MEGA")

		for _, g := range f.Apply(corpus) {
			Expect(g.Title).To(Or(Equal("Mega Man"), Equal("mega man X")))
		}
		Expect(f.Apply(corpus)).To(HaveLen(12))
	})

	It("should treat an empty platform as any platform", func() {
		f := view.NewFilterSet()
		f.SetPlatform(models.PlatformSaturn)
		Expect(f.Apply(corpus)).To(HaveLen(8))

		f.SetPlatform("")
		Expect(f.Apply(corpus)).To(HaveLen(24))
	})

	// Given every combination of filter settings
	// When a game is matched
	// Then it passes iff it passes each active filter on its own
	It("should compose filters with AND in any order", func() {
		terms := []string{"", "man", "DRAGOON", "zzz"}
		platforms := []models.PlatformID{"", models.PlatformNES, models.PlatformPlayStation4}
		favModes := []view.FavoriteMode{view.FavoriteAny, view.FavoriteOnly}
		wishModes := []view.WishlistMode{view.WishlistOwned, view.WishlistOnly}

		for _, term := range terms {
			for _, p := range platforms {
				for _, fm := range favModes {
					for _, wm := range wishModes {
						// Arrange
						forward := view.NewFilterSet()
						forward.SetTitle(term)
						forward.SetPlatform(p)
						forward.SetFavoriteMode(fm)
						forward.SetWishlistMode(wm)

						backward := view.NewFilterSet()
						backward.SetWishlistMode(wm)
						backward.SetFavoriteMode(fm)
						backward.SetPlatform(p)
						backward.SetTitle(term)

						preds := []view.Predicate{
							view.TitleContains(term),
							view.OnPlatform(p),
							view.WishlistIs(wm == view.WishlistOnly),
						}
						if fm == view.FavoriteOnly {
							preds = append(preds, view.FavoritesOnly())
						}

						// Act & Assert
						desc := fmt.Sprintf("term=%q platform=%q fav=%d wish=%d", term, p, fm, wm)
						for _, g := range corpus {
							expected := true
							for _, pred := range preds {
								expected = expected && pred(g)
							}
							Expect(forward.Match(g)).To(Equal(expected), desc)
							Expect(backward.Match(g)).To(Equal(expected), desc)
						}
						Expect(ids(forward.Apply(corpus))).To(Equal(ids(backward.Apply(corpus))), desc)
					}
				}
			}
		}
	})
})
