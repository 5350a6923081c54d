package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/jogos-org/jogos/internal/covers"
	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/view"
)

var _ = Describe("gameFlags", func() {
	var (
		flags gameFlags
		fs    *pflag.FlagSet
	)

	BeforeEach(func() {
		flags = gameFlags{}
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.register(fs)
	})

	It("should copy every flag when all is set", func() {
		Expect(fs.Parse([]string{"--title", "Hades", "--platform", "NINTENDO_SWITCH", "--bought", "2023-04-01"})).To(Succeed())

		g := models.NewGame()
		Expect(flags.apply(fs, &g, true)).To(Succeed())
		Expect(g.Title).To(Equal("Hades"))
		Expect(g.Platform).To(Equal(models.PlatformNintendoSwitch))
		Expect(g.Condition).To(Equal(models.ConditionCIB))
		Expect(g.Barcode).To(BeNil())
		Expect(g.BoughtDate).NotTo(BeNil())
		Expect(g.BoughtDate.Year()).To(Equal(2023))
	})

	It("should only copy changed flags otherwise", func() {
		Expect(fs.Parse([]string{"--developer", "Supergiant"})).To(Succeed())

		g := models.NewGame()
		g.Title = "Hades"
		g.Condition = models.ConditionSealed
		Expect(flags.apply(fs, &g, false)).To(Succeed())
		Expect(g.Title).To(Equal("Hades"))
		Expect(g.Developer).To(Equal("Supergiant"))
		Expect(g.Condition).To(Equal(models.ConditionSealed))
	})

	It("should reject malformed dates", func() {
		Expect(fs.Parse([]string{"--bought", "yesterday"})).To(Succeed())
		g := models.NewGame()
		Expect(flags.apply(fs, &g, false)).NotTo(Succeed())
	})
})

var _ = Describe("render", func() {
	It("should print the platform empty state", func() {
		var buf bytes.Buffer
		r := view.Result{
			Scope: models.PlatformScope(models.PlatformNintendo3DS),
			State: models.DisplayStateNoGamesForPlatform,
		}
		Expect(renderResult(&buf, r, nil)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("No games for Nintendo 3DS yet."))
	})

	It("should print a table of games", func() {
		var buf bytes.Buffer
		r := view.Result{
			State:        models.DisplayStateNormalList,
			Presentation: models.PresentationTable,
			Items:        []models.Game{{ID: 3, Title: "Hades", Platform: models.PlatformNintendoSwitch, ReleaseYear: 2020}},
		}
		Expect(renderResult(&buf, r, nil)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Hades"))
		Expect(buf.String()).To(ContainSubstring("Nintendo Switch"))
	})

	It("should show stored covers in the grid", func() {
		dir, err := os.MkdirTemp("", "jogos-covers-")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		store := covers.New(dir, nil)
		Expect(os.WriteFile(store.Path(3), []byte("jpeg"), 0o644)).To(Succeed())

		var buf bytes.Buffer
		r := view.Result{
			State:        models.DisplayStateNormalList,
			Presentation: models.PresentationGrid,
			Items: []models.Game{
				{ID: 3, Title: "Hades", Platform: models.PlatformNintendoSwitch},
				{ID: 4, Title: "Celeste", Platform: models.PlatformNintendoSwitch},
			},
		}
		Expect(renderResult(&buf, r, store)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring(store.Path(3)))
		Expect(buf.String()).NotTo(ContainSubstring(store.Path(4)))

		buf.Reset()
		Expect(renderGame(&buf, r.Items[0], store)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Cover"))
	})
})

var _ = Describe("jogos", func() {
	var dataFolder string

	BeforeEach(func() {
		var err error
		dataFolder, err = os.MkdirTemp("", "jogos-cli-")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dataFolder)
	})

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--data-folder", dataFolder, "--log-level", "error"}, args...))
		err := root.Execute()
		return out.String(), err
	}

	// Given an empty data folder
	// When a game is added and the collection listed
	// Then the database and preferences are created and the game is shown
	It("should add and list games", func() {
		out, err := run("add",
			"--title", "Hades",
			"--developer", "Supergiant Games",
			"--publisher", "Supergiant Games",
			"--year", "2020",
			"--platform", "NINTENDO_SWITCH",
			"--certification", "PEGI_12",
			"--media", "CARTRIDGE",
		)
		Expect(err).NotTo(HaveOccurred(), out)
		Expect(out).To(ContainSubstring("added #"))

		Expect(filepath.Join(dataFolder, "jogos.duckdb")).To(BeAnExistingFile())
		Expect(filepath.Join(dataFolder, "preferences.yaml")).To(BeAnExistingFile())

		out, err = run("list", "--table")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Hades"))

		out, err = run("list", "--scope", "WISHLIST")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Your wishlist is empty."))
	})

	// Given a locale currency preference
	// When a game is added without --currency
	// Then the preference is used
	It("should default the currency to the locale preference", func() {
		Expect(os.WriteFile(filepath.Join(dataFolder, "preferences.yaml"), []byte("locale:\n  currency: BRL\n"), 0o644)).To(Succeed())

		out, err := run("add",
			"--title", "Hades",
			"--developer", "Supergiant Games",
			"--publisher", "Supergiant Games",
			"--year", "2020",
			"--platform", "NINTENDO_SWITCH",
			"--certification", "PEGI_12",
			"--media", "CARTRIDGE",
			"--price", "99.9",
		)
		Expect(err).NotTo(HaveOccurred(), out)

		out, err = run("edit", "1", "--story", "Roguelike")
		Expect(err).NotTo(HaveOccurred(), out)
		Expect(out).To(ContainSubstring("99.90 BRL"))
	})

	It("should refuse invalid games", func() {
		_, err := run("add", "--title", "Hades", "--platform", "NINTENDO_SWITCH")
		Expect(err).To(HaveOccurred())
	})

	It("should report the schema version", func() {
		out, err := run("migrate")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("schema at version 3"))
	})
})
