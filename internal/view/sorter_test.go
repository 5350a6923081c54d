package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/view"
)

var _ = Describe("Sorter", func() {
	var games []models.Game

	BeforeEach(func() {
		games = []models.Game{
			game(1, "banjo", models.PlatformNintendo64),
			game(2, "Abzû", models.PlatformPlayStation4),
			game(3, "Celeste", models.PlatformNintendoSwitch),
			game(4, "abe", models.PlatformPlayStation),
		}
		games[0].ReleaseYear = 1998
		games[1].ReleaseYear = 2016
		games[2].ReleaseYear = 2018
		games[3].ReleaseYear = 1998
	})

	It("should sort titles ignoring case", func() {
		s := view.NewSorter(language.English)
		Expect(titles(s.Apply(games))).To(Equal([]string{"abe", "Abzû", "banjo", "Celeste"}))
	})

	It("should keep input order for equal keys", func() {
		s := view.NewSorter(language.English)
		s.Set(models.SortKey{Field: models.SortByReleaseYear})
		Expect(ids(s.Apply(games))).To(Equal([]int64{1, 4, 2, 3}))

		s.Set(models.SortKey{Field: models.SortByReleaseYear, Desc: true})
		Expect(ids(s.Apply(games))).To(Equal([]int64{3, 2, 1, 4}))
	})

	It("should sort platforms by code", func() {
		s := view.NewSorter(language.English)
		s.Set(models.SortKey{Field: models.SortByPlatform})
		Expect(ids(s.Apply(games))).To(Equal([]int64{1, 3, 4, 2}))
	})

	It("should not modify its input", func() {
		s := view.NewSorter(language.English)
		s.Apply(games)
		Expect(ids(games)).To(Equal([]int64{1, 2, 3, 4}))
	})

	Context("ResetForScope", func() {
		It("should force newest first for recents", func() {
			s := view.NewSorter(language.English)
			s.Set(models.SortKey{Field: models.SortByDeveloper})

			s.ResetForScope(models.RecentsScope())
			Expect(s.Key()).To(Equal(models.RecentsSortKey))
			Expect(ids(s.Apply(games))).To(Equal([]int64{4, 3, 2, 1}))
		})

		It("should return to title order unless the user chose a key", func() {
			s := view.NewSorter(language.English)
			s.ResetForScope(models.RecentsScope())
			s.ResetForScope(models.AllGamesScope())
			Expect(s.Key()).To(Equal(models.DefaultSortKey))

			year := models.SortKey{Field: models.SortByReleaseYear, Desc: true}
			s.Set(year)
			s.ResetForScope(models.RecentsScope())
			s.ResetForScope(models.PlatformScope(models.PlatformNES))
			Expect(s.Key()).To(Equal(year))
			Expect(s.Overridden()).To(BeTrue())

			s.ClearOverride()
			s.ResetForScope(models.AllGamesScope())
			Expect(s.Key()).To(Equal(models.DefaultSortKey))
		})
	})
})
