package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/view"
)

var _ = Describe("DeriveState", func() {
	DescribeTable("precedence",
		func(scope models.Scope, searchLen, count int, expected models.DisplayState) {
			Expect(view.DeriveState(scope, searchLen, count)).To(Equal(expected))
		},
		Entry("empty wishlist", models.WishlistScope(), 0, 0, models.DisplayStateNoWishlistItems),
		Entry("search in empty wishlist", models.WishlistScope(), 3, 0, models.DisplayStateNoResults),
		Entry("empty platform", models.PlatformScope(models.PlatformNES), 0, 0, models.DisplayStateNoGamesForPlatform),
		Entry("search in empty platform", models.PlatformScope(models.PlatformNES), 1, 0, models.DisplayStateNoResults),
		Entry("empty favorites", models.FavoritesScope(), 0, 0, models.DisplayStateNoFavorites),
		Entry("empty collection", models.AllGamesScope(), 0, 0, models.DisplayStateNoGames),
		Entry("empty recents", models.RecentsScope(), 0, 0, models.DisplayStateNoGames),
		Entry("search with no match", models.AllGamesScope(), 4, 0, models.DisplayStateNoResults),
		Entry("populated collection", models.AllGamesScope(), 0, 5, models.DisplayStateNormalList),
		Entry("search with matches", models.FavoritesScope(), 2, 1, models.DisplayStateNormalList),
		Entry("populated wishlist", models.WishlistScope(), 0, 1, models.DisplayStateNormalList),
	)

	It("should carry the platform icon only for the empty platform state", func() {
		scope := models.PlatformScope(models.PlatformNES)
		Expect(view.PlatformIcon(scope, models.DisplayStateNoGamesForPlatform)).To(Equal("nes"))
		Expect(view.PlatformIcon(scope, models.DisplayStateNormalList)).To(BeEmpty())
		Expect(view.PlatformIcon(models.AllGamesScope(), models.DisplayStateNoGames)).To(BeEmpty())
	})
})
