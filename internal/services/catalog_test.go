package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/preferences"
	"github.com/jogos-org/jogos/internal/services"
	"github.com/jogos-org/jogos/internal/store"
	"github.com/jogos-org/jogos/internal/store/migrations"
	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

func form(title string, platform models.PlatformID) models.Game {
	g := models.NewGame()
	g.Title = title
	g.Developer = "Dev"
	g.Publisher = "Pub"
	g.ReleaseYear = 2017
	g.Platform = platform
	g.Certification = "PEGI_12"
	g.StorageMedia = models.StorageMediaBluRay
	return g
}

func itemTitles(items []models.Game) []string {
	out := make([]string, 0, len(items))
	for _, g := range items {
		out = append(out, g.Title)
	}
	return out
}

var _ = Describe("CatalogService", func() {
	var (
		ctx     context.Context
		db      *sql.DB
		prefs   *preferences.Preferences
		catalog *services.CatalogService
	)

	BeforeEach(func() {
		ctx = context.Background()
		prefs = preferences.InMemory()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db, prefs)).To(Succeed())

		st := store.NewStore(db)
		catalog = services.NewCatalogService(st.Game(), prefs, language.English)
	})

	AfterEach(func() {
		db.Close()
	})

	create := func(g models.Game) *models.Game {
		created, _, err := catalog.Create(ctx, g)
		Expect(err).NotTo(HaveOccurred())
		return created
	}

	Context("Open", func() {
		// Given an empty catalog and no saved scope
		// When the catalog is opened
		// Then all games are shown with the no-games state
		It("should show the empty catalog", func() {
			res, err := catalog.Open(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Scope).To(Equal(models.AllGamesScope()))
			Expect(res.State).To(Equal(models.DisplayStateNoGames))
			Expect(res.Items).To(BeEmpty())
		})

		// Given a saved platform scope
		// When the catalog is opened
		// Then that platform is shown again
		It("should restore the last scope", func() {
			Expect(prefs.SetLastScope(models.PlatformScope(models.PlatformNintendoSwitch))).To(Succeed())

			res, err := catalog.Open(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Scope).To(Equal(models.PlatformScope(models.PlatformNintendoSwitch)))
			Expect(res.State).To(Equal(models.DisplayStateNoGamesForPlatform))
			Expect(res.PlatformIcon).NotTo(BeEmpty())
		})
	})

	Context("Create", func() {
		// Given a valid form while searching
		// When it is created
		// Then the search is cleared, its platform is shown and it is selected
		It("should focus the new game", func() {
			_, err := catalog.Show(ctx, models.AllGamesScope())
			Expect(err).NotTo(HaveOccurred())
			catalog.Search("nothing matches this")

			g := form("Zelda", models.PlatformNintendoSwitch)
			g.PaidPriceAmount = 59.999
			created, res, err := catalog.Create(ctx, g)
			Expect(err).NotTo(HaveOccurred())

			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.PaidPriceAmount).To(Equal(60.0))
			Expect(res.Search).To(BeEmpty())
			Expect(res.Scope).To(Equal(models.PlatformScope(models.PlatformNintendoSwitch)))
			Expect(res.Selected).NotTo(BeNil())
			Expect(res.Selected.ID).To(Equal(created.ID))
			Expect(prefs.LastScope()).To(Equal(res.Scope))
		})

		// Given a wishlist form
		// When it is created
		// Then the wishlist is shown
		It("should show the wishlist for wishlist games", func() {
			g := form("Bayonetta 3", models.PlatformNintendoSwitch)
			g.Wishlist = true

			_, res, err := catalog.Create(ctx, g)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Scope).To(Equal(models.WishlistScope()))
			Expect(itemTitles(res.Items)).To(Equal([]string{"Bayonetta 3"}))
		})

		// Given a form without a title
		// When it is created
		// Then an InvalidGameError is returned and nothing is stored
		It("should reject invalid forms", func() {
			_, _, err := catalog.Create(ctx, form("", models.PlatformNintendoSwitch))
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidGameError(err)).To(BeTrue())

			count, err := catalog.Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})
	})

	Context("Update", func() {
		// Given a stored game
		// When it is moved to another platform
		// Then the new platform is shown and the creation date is kept
		It("should follow the game to its new platform", func() {
			created := create(form("Hades", models.PlatformNintendoSwitch))

			changed := *created
			changed.Platform = models.PlatformPlayStation5
			changed.CreationDate = changed.CreationDate.AddDate(-10, 0, 0)

			updated, res, err := catalog.Update(ctx, changed)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Scope).To(Equal(models.PlatformScope(models.PlatformPlayStation5)))
			Expect(res.Selected).NotTo(BeNil())
			Expect(res.Selected.ID).To(Equal(created.ID))
			Expect(updated.CreationDate).To(BeTemporally("==", created.CreationDate))
		})

		// Given an id that does not exist
		// When it is updated
		// Then a not found error is returned
		It("should return not found for unknown ids", func() {
			g := form("Ghost", models.PlatformNintendoSwitch)
			g.ID = 999

			_, _, err := catalog.Update(ctx, g)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("ToggleFavorite", func() {
		// Given the favorites scope with one favorite
		// When the favorite is toggled off
		// Then it leaves the view and the no-favorites state is shown
		It("should refresh the current scope", func() {
			created := create(form("Celeste", models.PlatformNintendoSwitch))
			_, _, err := catalog.ToggleFavorite(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())

			res, err := catalog.Show(ctx, models.FavoritesScope())
			Expect(err).NotTo(HaveOccurred())
			Expect(itemTitles(res.Items)).To(Equal([]string{"Celeste"}))

			g, res, err := catalog.ToggleFavorite(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Favorite).To(BeFalse())
			Expect(res.Items).To(BeEmpty())
			Expect(res.State).To(Equal(models.DisplayStateNoFavorites))
			Expect(res.Selected).To(BeNil())
		})

		// Given the all games scope
		// When a game is marked favorite
		// Then it stays selected
		It("should keep the game selected when still visible", func() {
			created := create(form("Celeste", models.PlatformNintendoSwitch))
			_, err := catalog.Show(ctx, models.AllGamesScope())
			Expect(err).NotTo(HaveOccurred())

			g, res, err := catalog.ToggleFavorite(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Favorite).To(BeTrue())
			Expect(res.Selected).NotTo(BeNil())
			Expect(res.Selected.Favorite).To(BeTrue())
		})
	})

	Context("Delete", func() {
		// Given two games on a platform
		// When one is deleted
		// Then only the other remains
		It("should refresh after delete", func() {
			a := create(form("Alpha", models.PlatformNintendoSwitch))
			create(form("Beta", models.PlatformNintendoSwitch))

			res, err := catalog.Delete(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(itemTitles(res.Items)).To(Equal([]string{"Beta"}))

			_, err = catalog.Get(ctx, a.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return not found for unknown ids", func() {
			_, err := catalog.Delete(ctx, 42)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Search, sort and selection", func() {
		BeforeEach(func() {
			create(form("Metroid Dread", models.PlatformNintendoSwitch))
			create(form("Astral Chain", models.PlatformNintendoSwitch))
			create(form("Bloodborne", models.PlatformPlayStation5))
			_, err := catalog.Show(ctx, models.AllGamesScope())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should filter by title case-insensitively", func() {
			res := catalog.Search("METROID")
			Expect(itemTitles(res.Items)).To(Equal([]string{"Metroid Dread"}))

			res = catalog.Search("xyz")
			Expect(res.State).To(Equal(models.DisplayStateNoResults))
		})

		It("should sort and reset", func() {
			res := catalog.SortBy(models.SortKey{Field: models.SortByTitle, Desc: true})
			Expect(itemTitles(res.Items)).To(Equal([]string{"Metroid Dread", "Bloodborne", "Astral Chain"}))

			res = catalog.ResetSort()
			Expect(res.Sort).To(Equal(models.DefaultSortKey))
			Expect(itemTitles(res.Items)).To(Equal([]string{"Astral Chain", "Bloodborne", "Metroid Dread"}))
		})

		It("should drop the selection when the game is filtered out", func() {
			snap := catalog.Snapshot()
			res := catalog.Select(snap.Items[0].ID)
			Expect(res.Selected).NotTo(BeNil())

			res = catalog.Search("Metroid")
			Expect(res.Selected).To(BeNil())

			res = catalog.Unselect()
			Expect(res.Selected).To(BeNil())
		})
	})

	Context("Browse", func() {
		// Given a session showing the wishlist
		// When a one-off platform view is browsed
		// Then the session view is untouched
		It("should not change the session", func() {
			create(form("Astral Chain", models.PlatformNintendoSwitch))
			_, err := catalog.Show(ctx, models.WishlistScope())
			Expect(err).NotTo(HaveOccurred())

			sort := models.SortKey{Field: models.SortByReleaseYear}
			res, err := catalog.Browse(ctx, services.BrowseParams{
				Scope:  models.PlatformScope(models.PlatformNintendoSwitch),
				Search: "astral",
				Sort:   &sort,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(itemTitles(res.Items)).To(Equal([]string{"Astral Chain"}))
			Expect(res.Sort).To(Equal(sort))

			Expect(catalog.Snapshot().Scope).To(Equal(models.WishlistScope()))
		})

		It("should honor an explicit sort on recents", func() {
			create(form("Zelda", models.PlatformNintendoSwitch))
			create(form("Astral Chain", models.PlatformNintendoSwitch))

			res, err := catalog.Browse(ctx, services.BrowseParams{Scope: models.RecentsScope()})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Sort).To(Equal(models.RecentsSortKey))

			sort := models.SortKey{Field: models.SortByTitle}
			res, err = catalog.Browse(ctx, services.BrowseParams{Scope: models.RecentsScope(), Sort: &sort})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Sort).To(Equal(sort))
			Expect(itemTitles(res.Items)).To(Equal([]string{"Astral Chain", "Zelda"}))
		})
	})

	Context("SetPresentation", func() {
		It("should persist the presentation", func() {
			res, err := catalog.SetPresentation(models.PresentationTable)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Presentation).To(Equal(models.PresentationTable))
			Expect(prefs.Presentation()).To(Equal(models.PresentationTable))
		})
	})

	Context("Platforms", func() {
		It("should list the platforms that own games", func() {
			create(form("Bloodborne", models.PlatformPlayStation5))
			g := form("Wanted", models.PlatformNintendoSwitch)
			g.Wishlist = true
			create(g)

			platforms, err := catalog.Platforms(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(platforms).To(HaveLen(1))
			Expect(platforms[0].ID).To(Equal(models.PlatformPlayStation5))
		})
	})
})
