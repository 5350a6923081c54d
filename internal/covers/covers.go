package covers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxWidth    = 600
	MaxHeight   = 900
	JPEGQuality = 90
)

// Store keeps one JPEG cover per game in a directory, named <id>.jpg.
type Store struct {
	dir  string
	http *http.Client
	log  *zap.SugaredLogger
}

func New(dir string, client *http.Client) *Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{dir: dir, http: client, log: zap.S().Named("covers")}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path(id int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(id, 10)+".jpg")
}

func (s *Store) Exists(id int64) bool {
	info, err := os.Stat(s.Path(id))
	return err == nil && info.Mode().IsRegular()
}

// Delete removes the cover of id. A missing cover is not an error.
func (s *Store) Delete(id int64) error {
	err := os.Remove(s.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Save decodes a jpeg, png or webp image from r, shrinks it to fit
// MaxWidth x MaxHeight and writes it as the cover of id.
func (s *Store) Save(id int64, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	img, err := decode(data)
	if err != nil {
		return err
	}
	img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".cover-*.jpg")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode cover: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), s.Path(id)); err != nil {
		return err
	}

	s.log.Debugw("cover saved", "id", id, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// Download fetches url into a uniquely named file in the system temp
// directory and returns its path. The caller removes the file.
func (s *Store) Download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download cover: %s", resp.Status)
	}

	path := filepath.Join(os.TempDir(), "jogos-"+uuid.NewString()+filepath.Ext(url))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

// SaveFromURL downloads url and saves it as the cover of id.
func (s *Store) SaveFromURL(ctx context.Context, id int64, url string) error {
	path, err := s.Download(ctx, url)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Save(id, f)
}

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}

	ct := http.DetectContentType(data)
	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported image type: %s", ct)
}
