package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

const (
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token"
	DefaultAPIURL   = "https://api.igdb.com/v4"

	defaultMaxTries = 3
)

const searchFields = "name, slug, platforms, cover.url, cover.image_id, summary, " +
	"first_release_date, involved_companies.company.name, " +
	"involved_companies.developer, involved_companies.publisher"

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithEndpoints overrides the token and API base URLs.
func WithEndpoints(tokenURL, apiURL string) Option {
	return func(cl *Client) {
		cl.tokenURL = tokenURL
		cl.apiURL = strings.TrimSuffix(apiURL, "/")
	}
}

func WithTokenCache(cache TokenCache) Option {
	return func(cl *Client) {
		cl.cache = cache
	}
}

func WithClock(now func() time.Time) Option {
	return func(cl *Client) {
		cl.now = now
	}
}

// WithBackOff sets the retry policy for transient failures. newBackOff is
// called once per request.
func WithBackOff(newBackOff func() backoff.BackOff, maxTries uint) Option {
	return func(cl *Client) {
		cl.newBackOff = newBackOff
		cl.maxTries = maxTries
	}
}

// Client talks to the IGDB v4 API with a Twitch app token.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	apiURL       string
	http         *http.Client
	cache        TokenCache
	now          func() time.Time
	newBackOff   func() backoff.BackOff
	maxTries     uint

	mu    sync.Mutex
	token Token
}

func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     DefaultTokenURL,
		apiURL:       DefaultAPIURL,
		http:         &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
		newBackOff:   func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		maxTries:     defaultMaxTries,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache != nil {
		c.token = c.cache.Token()
	}
	return c
}

// Configured reports whether client credentials are set.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Authenticate requests a new app token and stores it in the cache.
// POST {tokenURL}?client_id=..&client_secret=..&grant_type=client_credentials
func (c *Client) Authenticate(ctx context.Context) (Token, error) {
	if !c.Configured() {
		return Token{}, srvErrors.NewMetadataUnavailableError("client credentials are not configured")
	}

	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	q.Set("grant_type", "client_credentials")

	body, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL+"?"+q.Encode(), nil)
	})
	if err != nil {
		return Token{}, err
	}

	var raw oauthToken
	if err := json.Unmarshal(body, &raw); err != nil {
		return Token{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if raw.AccessToken == "" {
		return Token{}, srvErrors.NewMetadataUnavailableError("token response has no access token")
	}

	token := Token{AccessToken: raw.AccessToken}
	if raw.ExpiresIn > 0 {
		token.ExpiresAt = c.now().Add(time.Duration(raw.ExpiresIn) * time.Second).Truncate(time.Second)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if c.cache != nil {
		if err := c.cache.SaveToken(token); err != nil {
			zap.S().Named("igdb").Warnw("failed to cache access token", "error", err)
		}
	}

	return token, nil
}

// Search looks up games by name. platform is an IGDB platform id; zero
// searches every platform.
// POST {apiURL}/games
func (c *Client) Search(ctx context.Context, term string, platform int) ([]Game, error) {
	if !c.Configured() {
		return nil, srvErrors.NewMetadataUnavailableError("client credentials are not configured")
	}

	token, err := c.validToken(ctx)
	if err != nil {
		return nil, err
	}

	query := SearchQuery(term, platform)
	zap.S().Named("igdb").Debugw("search", "term", term, "platform", platform)

	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/games", strings.NewReader(query))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Client-ID", c.clientID)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		req.Header.Set("Content-Type", "text/plain")
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	games := []Game{}
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return games, nil
}

// SearchQuery builds the apicalypse body of a games search.
func SearchQuery(term string, platform int) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(term)

	var b strings.Builder
	fmt.Fprintf(&b, "fields %s;\n", searchFields)
	fmt.Fprintf(&b, "search \"%s\";\n", escaped)
	b.WriteString("where version_parent = null")
	if platform > 0 {
		fmt.Fprintf(&b, " & platforms = [%d]", platform)
	}
	b.WriteString(";\n")
	return b.String()
}

func (c *Client) validToken(ctx context.Context) (Token, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token.Valid(c.now()) {
		return token, nil
	}
	return c.Authenticate(ctx)
}

// do sends the request built by newReq, retrying network errors, 429 and
// 5xx responses. Other failures are returned at once.
func (c *Client) do(ctx context.Context, newReq func() (*http.Request, error)) ([]byte, error) {
	op := func() ([]byte, error) {
		req, err := newReq()
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			c.mu.Lock()
			c.token = Token{}
			c.mu.Unlock()
			return nil, backoff.Permanent(srvErrors.NewMetadataUnavailableError(fmt.Sprintf("unauthorized: %s", resp.Status)))
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return nil, fmt.Errorf("igdb request failed: %s", resp.Status)
		default:
			return nil, backoff.Permanent(fmt.Errorf("igdb request failed: %s", resp.Status))
		}
	}

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
}
