package preferences_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/internal/preferences"
	"github.com/jogos-org/jogos/pkg/igdb"
)

var _ = Describe("Preferences", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "jogos", "preferences.yaml")
	})

	It("should start with defaults", func() {
		p, err := preferences.Open(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.GetInt(preferences.KeySchemaVersion)).To(BeZero())
		Expect(p.Presentation()).To(Equal(models.PresentationGrid))
		Expect(p.LastScope()).To(Equal(models.AllGamesScope()))
		Expect(p.Token().AccessToken).To(BeEmpty())

		_, err = os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	// Given preferences written by one process
	// When another process opens the same file
	// Then it reads the same values
	It("should persist values across opens", func() {
		// Arrange
		p, err := preferences.Open(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Set(preferences.KeySchemaVersion, 3)).To(Succeed())
		Expect(p.SetPresentation(models.PresentationTable)).To(Succeed())
		Expect(p.SetLastScope(models.PlatformScope(models.PlatformSaturn))).To(Succeed())

		// Act
		reopened, err := preferences.Open(path)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(reopened.GetInt(preferences.KeySchemaVersion)).To(Equal(3))
		Expect(reopened.Presentation()).To(Equal(models.PresentationTable))
		Expect(reopened.LastScope()).To(Equal(models.PlatformScope(models.PlatformSaturn)))
	})

	It("should keep in-memory preferences off disk", func() {
		p := preferences.InMemory()
		Expect(p.Set(preferences.KeySchemaVersion, 2)).To(Succeed())
		Expect(p.GetInt(preferences.KeySchemaVersion)).To(Equal(2))
		Expect(p.Path()).To(BeEmpty())
	})

	It("should fall back to all games for an unknown scope", func() {
		p := preferences.InMemory()
		Expect(p.Set(preferences.KeyLastScope, "ARCADE")).To(Succeed())
		Expect(p.LastScope()).To(Equal(models.AllGamesScope()))
	})

	It("should cache the metadata token", func() {
		p, err := preferences.Open(path)
		Expect(err).NotTo(HaveOccurred())
		token := igdb.Token{AccessToken: "abc", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

		Expect(p.SaveToken(token)).To(Succeed())

		reopened, err := preferences.Open(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(reopened.Token()).To(Equal(token))
	})

	It("should read locale options", func() {
		p := preferences.InMemory()
		Expect(p.Set(preferences.KeyLocaleLanguage, "pt-BR")).To(Succeed())
		Expect(p.Set(preferences.KeyLocaleDateFormat, "dd/mm/yyyy")).To(Succeed())
		Expect(p.Set(preferences.KeyLocaleCurrency, "BRL")).To(Succeed())

		l := p.Locale()
		Expect(l.Language).To(Equal(language.BrazilianPortuguese))
		Expect(l.DateLayout).To(Equal("02/01/2006"))
		Expect(l.Currency.ISO).To(Equal("BRL"))
	})

	DescribeTable("DateLayout",
		func(format, layout string) {
			Expect(preferences.DateLayout(format)).To(Equal(layout))
		},
		Entry("day first", "dd/mm/yyyy", "02/01/2006"),
		Entry("month first", "mm/dd/yyyy", "01/02/2006"),
		Entry("iso", "yyyy-mm-dd", "2006-01-02"),
		Entry("short year", "dd.mm.yy", "02.01.06"),
		Entry("empty", "", "01/02/2006"),
	)

	Context("Watch", func() {
		It("should reload after an external edit", func() {
			p, err := preferences.Open(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Set(preferences.KeyShowGrid, true)).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var changes atomic.Int32
			Expect(p.Watch(ctx, func() { changes.Add(1) })).To(Succeed())

			Expect(os.WriteFile(path, []byte("show-grid: false\n"), 0o644)).To(Succeed())

			Eventually(changes.Load, 5*time.Second, 50*time.Millisecond).Should(BeNumerically(">", 0))
			Eventually(p.Presentation, 5*time.Second, 50*time.Millisecond).Should(Equal(models.PresentationTable))
		})

		It("should do nothing for in-memory preferences", func() {
			Expect(preferences.InMemory().Watch(context.Background(), nil)).To(Succeed())
		})
	})
})
