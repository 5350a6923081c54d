package preferences

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/jogos-org/jogos/internal/models"
	"github.com/jogos-org/jogos/pkg/igdb"
)

const (
	KeySchemaVersion         = "schema-version"
	KeyShowGrid              = "show-grid"
	KeyLastScope             = "last-scope"
	KeyLocaleLanguage        = "locale.language"
	KeyLocaleDateFormat      = "locale.date-format"
	KeyLocaleCurrency        = "locale.currency"
	KeyIGDBAccessToken       = "igdb.access-token"
	KeyIGDBAccessTokenExpiry = "igdb.access-token-expiration"
)

// Preferences are the user settings kept in a YAML file next to the
// database. They are safe for concurrent use.
type Preferences struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
	log  *zap.SugaredLogger
}

// Open loads the preferences file at path, creating nothing until the first
// Set. An empty path keeps preferences in memory only.
func Open(path string) (*Preferences, error) {
	p := &Preferences{path: path, log: zap.S().Named("preferences")}

	v, err := p.load()
	if err != nil {
		return nil, err
	}
	p.v = v
	return p, nil
}

// InMemory returns preferences that are never written to disk.
func InMemory() *Preferences {
	p, _ := Open("")
	return p
}

func (p *Preferences) Path() string {
	return p.path
}

func (p *Preferences) load() (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	if p.path == "" {
		return v, nil
	}

	v.SetConfigFile(p.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySchemaVersion, 0)
	v.SetDefault(KeyShowGrid, true)
	v.SetDefault(KeyLastScope, string(models.ScopeAll))
	v.SetDefault(KeyLocaleLanguage, "en-US")
	v.SetDefault(KeyLocaleDateFormat, "mm/dd/yyyy")
	v.SetDefault(KeyLocaleCurrency, models.DefaultCurrency)
	v.SetDefault(KeyIGDBAccessToken, "")
	v.SetDefault(KeyIGDBAccessTokenExpiry, int64(0))
}

func (p *Preferences) GetInt(key string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.v.GetInt(key)
}

func (p *Preferences) GetString(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.v.GetString(key)
}

func (p *Preferences) GetBool(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.v.GetBool(key)
}

// Set stores value under key and writes the file.
func (p *Preferences) Set(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.v.Set(key, value)
	return p.write()
}

func (p *Preferences) write() error {
	if p.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return p.v.WriteConfigAs(p.path)
}

func (p *Preferences) Presentation() models.Presentation {
	if p.GetBool(KeyShowGrid) {
		return models.PresentationGrid
	}
	return models.PresentationTable
}

func (p *Preferences) SetPresentation(presentation models.Presentation) error {
	return p.Set(KeyShowGrid, presentation == models.PresentationGrid)
}

// LastScope returns the scope shown when the catalog was last closed. An
// unreadable value falls back to all games.
func (p *Preferences) LastScope() models.Scope {
	scope, err := models.ParseScope(p.GetString(KeyLastScope))
	if err != nil {
		return models.AllGamesScope()
	}
	return scope
}

func (p *Preferences) SetLastScope(scope models.Scope) error {
	return p.Set(KeyLastScope, scope.String())
}

// Locale holds the formatting options for dates and prices.
type Locale struct {
	Language   language.Tag
	DateLayout string
	Currency   models.Currency
}

func (p *Preferences) Locale() Locale {
	tag, err := language.Parse(p.GetString(KeyLocaleLanguage))
	if err != nil {
		tag = language.AmericanEnglish
	}

	currency, ok := models.GetCurrency(p.GetString(KeyLocaleCurrency))
	if !ok {
		currency, _ = models.GetCurrency(models.DefaultCurrency)
	}

	return Locale{
		Language:   tag,
		DateLayout: DateLayout(p.GetString(KeyLocaleDateFormat)),
		Currency:   currency,
	}
}

// DateLayout turns a dd/mm/yyyy style pattern into a Go time layout.
func DateLayout(format string) string {
	if format == "" {
		format = "mm/dd/yyyy"
	}
	return strings.NewReplacer(
		"dd", "02",
		"mm", "01",
		"yyyy", "2006",
		"yy", "06",
	).Replace(format)
}

// Token implements igdb.TokenCache.
func (p *Preferences) Token() igdb.Token {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t := igdb.Token{AccessToken: p.v.GetString(KeyIGDBAccessToken)}
	if exp := p.v.GetInt64(KeyIGDBAccessTokenExpiry); exp > 0 {
		t.ExpiresAt = time.Unix(exp, 0).UTC()
	}
	return t
}

// SaveToken implements igdb.TokenCache.
func (p *Preferences) SaveToken(t igdb.Token) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var exp int64
	if !t.ExpiresAt.IsZero() {
		exp = t.ExpiresAt.Unix()
	}
	p.v.Set(KeyIGDBAccessToken, t.AccessToken)
	p.v.Set(KeyIGDBAccessTokenExpiry, exp)
	return p.write()
}

// Watch reloads the file whenever it changes on disk and then calls
// onChange, until ctx is done. In-memory preferences return at once.
func (p *Preferences) Watch(ctx context.Context, onChange func()) error {
	if p.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: editors replace the file rather than write it.
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = watcher.Close()
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				p.handleFileEvent(event, onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warnw("preferences watcher error", "error", err)
			}
		}
	}()

	return nil
}

func (p *Preferences) handleFileEvent(event fsnotify.Event, onChange func()) {
	if filepath.Clean(event.Name) != filepath.Clean(p.path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	v, err := p.load()
	if err != nil {
		p.log.Warnw("failed to reload preferences", "path", p.path, "error", err)
		return
	}

	p.mu.Lock()
	p.v = v
	p.mu.Unlock()

	p.log.Debugw("preferences reloaded", "path", p.path)
	if onChange != nil {
		onChange()
	}
}
