package igdb_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/pkg/igdb"
	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

type memCache struct {
	mu    sync.Mutex
	token igdb.Token
	saves int
}

func (m *memCache) Token() igdb.Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memCache) SaveToken(t igdb.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = t
	m.saves++
	return nil
}

func fastBackOff() backoff.BackOff {
	return backoff.NewConstantBackOff(time.Millisecond)
}

const searchResponse = `[{
	"id": 1,
	"name": "Chrono Trigger",
	"slug": "chrono-trigger",
	"summary": "Time travel.",
	"first_release_date": 795225600,
	"platforms": [5, 19],
	"cover": {"image_id": "co3plw", "url": "//images.igdb.com/t_thumb/co3plw.jpg"},
	"involved_companies": [
		{"company": {"name": "Square"}, "developer": true, "publisher": true},
		{"company": {"name": "Nintendo"}, "developer": false, "publisher": true}
	]
}]`

var _ = Describe("Client", func() {
	var (
		ctx        context.Context
		server     *httptest.Server
		tokenCalls atomic.Int32
		gameCalls  atomic.Int32
		gameStatus []int
		lastBody   string
		lastAuth   string
		mu         sync.Mutex
		cache      *memCache
		now        time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		tokenCalls.Store(0)
		gameCalls.Store(0)
		gameStatus = nil
		cache = &memCache{}
		now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

		mux := http.NewServeMux()
		mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			tokenCalls.Add(1)
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Query().Get("grant_type")).To(Equal("client_credentials"))
			Expect(r.URL.Query().Get("client_id")).To(Equal("id"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"access_token":"tok","expires_in":3600,"token_type":"bearer"}`)
		})
		mux.HandleFunc("/v4/games", func(w http.ResponseWriter, r *http.Request) {
			n := int(gameCalls.Add(1))
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			lastBody = string(body)
			lastAuth = r.Header.Get("Authorization")
			mu.Unlock()

			if n <= len(gameStatus) && gameStatus[n-1] != http.StatusOK {
				w.WriteHeader(gameStatus[n-1])
				return
			}
			_, _ = io.WriteString(w, searchResponse)
		})
		server = httptest.NewServer(mux)
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func(id, secret string) *igdb.Client {
		return igdb.NewClient(id, secret,
			igdb.WithEndpoints(server.URL+"/oauth2/token", server.URL+"/v4"),
			igdb.WithTokenCache(cache),
			igdb.WithClock(func() time.Time { return now }),
			igdb.WithBackOff(fastBackOff, 3),
		)
	}

	Context("Authenticate", func() {
		It("should cache the token with its expiration", func() {
			token, err := newClient("id", "secret").Authenticate(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(token.AccessToken).To(Equal("tok"))
			Expect(token.ExpiresAt).To(Equal(now.Add(time.Hour)))
			Expect(cache.Token()).To(Equal(token))
		})

		It("should refuse to run without credentials", func() {
			_, err := newClient("", "").Authenticate(ctx)
			Expect(srvErrors.IsMetadataUnavailableError(err)).To(BeTrue())
			Expect(tokenCalls.Load()).To(BeZero())
		})
	})

	Context("Search", func() {
		// Given an empty token cache
		// When we search
		// Then the client authenticates once and sends the query with the token
		It("should authenticate on first use", func() {
			// Arrange
			c := newClient("id", "secret")

			// Act
			games, err := c.Search(ctx, "chrono", 0)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(games).To(HaveLen(1))
			Expect(games[0].Slug).To(Equal("chrono-trigger"))
			Expect(tokenCalls.Load()).To(Equal(int32(1)))
			mu.Lock()
			Expect(lastAuth).To(Equal("Bearer tok"))
			Expect(lastBody).To(ContainSubstring(`search "chrono";`))
			Expect(lastBody).NotTo(ContainSubstring("platforms = ["))
			mu.Unlock()

			_, err = c.Search(ctx, "chrono", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokenCalls.Load()).To(Equal(int32(1)))
		})

		It("should reuse a cached token that has not expired", func() {
			cache.token = igdb.Token{AccessToken: "cached", ExpiresAt: now.Add(time.Minute)}

			_, err := newClient("id", "secret").Search(ctx, "chrono", 19)

			Expect(err).NotTo(HaveOccurred())
			Expect(tokenCalls.Load()).To(BeZero())
			mu.Lock()
			Expect(lastAuth).To(Equal("Bearer cached"))
			Expect(lastBody).To(ContainSubstring("& platforms = [19]"))
			mu.Unlock()
		})

		It("should refresh an expired token", func() {
			cache.token = igdb.Token{AccessToken: "old", ExpiresAt: now.Add(-time.Minute)}

			_, err := newClient("id", "secret").Search(ctx, "chrono", 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(tokenCalls.Load()).To(Equal(int32(1)))
			Expect(cache.Token().AccessToken).To(Equal("tok"))
		})

		It("should retry transient failures", func() {
			gameStatus = []int{http.StatusBadGateway, http.StatusTooManyRequests, http.StatusOK}

			games, err := newClient("id", "secret").Search(ctx, "chrono", 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(games).To(HaveLen(1))
			Expect(gameCalls.Load()).To(Equal(int32(3)))
		})

		It("should give up after the configured tries", func() {
			gameStatus = []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable}

			_, err := newClient("id", "secret").Search(ctx, "chrono", 0)

			Expect(err).To(HaveOccurred())
			Expect(gameCalls.Load()).To(Equal(int32(3)))
		})

		It("should not retry an unauthorized response", func() {
			gameStatus = []int{http.StatusUnauthorized}

			_, err := newClient("id", "secret").Search(ctx, "chrono", 0)

			Expect(srvErrors.IsMetadataUnavailableError(err)).To(BeTrue())
			Expect(gameCalls.Load()).To(Equal(int32(1)))
		})

		It("should report missing credentials without calling out", func() {
			_, err := newClient("id", "").Search(ctx, "chrono", 0)

			Expect(srvErrors.IsMetadataUnavailableError(err)).To(BeTrue())
			Expect(gameCalls.Load()).To(BeZero())
		})
	})
})

var _ = Describe("SearchQuery", func() {
	It("should escape quotes in the term", func() {
		q := igdb.SearchQuery(`say "hi"`, 0)
		Expect(q).To(ContainSubstring(`search "say \"hi\"";`))
		Expect(q).To(ContainSubstring("where version_parent = null;"))
	})
})

var _ = Describe("ToCandidate", func() {
	game := igdb.Game{
		Name:             "Chrono Trigger",
		Slug:             "chrono-trigger",
		Summary:          "Time travel.",
		FirstReleaseDate: 795225600,
		Platforms:        []int{5, 19},
		Cover:            &igdb.Cover{ImageID: "co3plw"},
		InvolvedCompanies: []igdb.InvolvedCompany{
			{Company: igdb.Company{Name: "Square"}, Developer: true, Publisher: true},
			{Company: igdb.Company{Name: "Nintendo"}, Publisher: true},
		},
	}

	It("should seed a record from a search hit", func() {
		c := igdb.ToCandidate(game, 0)

		Expect(c.Game.Title).To(Equal("Chrono Trigger"))
		Expect(c.Game.Developer).To(Equal("Square"))
		Expect(c.Game.Publisher).To(Equal("Square, Nintendo"))
		Expect(c.Game.ReleaseYear).To(Equal(1995))
		Expect(c.Game.Story).To(Equal("Time travel."))
		Expect(*c.Game.IGDBSlug).To(Equal("chrono-trigger"))
		Expect(c.Game.Platform).To(Equal(models.PlatformNintendoWii))
		Expect(c.CoverURL).To(Equal("https://images.igdb.com/igdb/image/upload/t_cover_big/co3plw.jpg"))
	})

	It("should prefer the platform hint when the game has it", func() {
		c := igdb.ToCandidate(game, 19)
		Expect(c.Game.Platform).To(Equal(models.PlatformSuperNintendo))
	})

	It("should leave unknown platforms empty", func() {
		g := game
		g.Platforms = []int{999}
		g.Cover = nil

		c := igdb.ToCandidate(g, 0)
		Expect(c.Game.Platform).To(BeEmpty())
		Expect(c.CoverURL).To(BeEmpty())
	})
})
