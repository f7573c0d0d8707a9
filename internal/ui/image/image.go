// Package image loads text-art rasters by path, the way the renderer asks
// for "misc/<style>-border-top" style assets.
package image

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/justinpbarnett/modal/internal/logging"
	"github.com/justinpbarnett/modal/internal/ui/canvas"
)

// ErrNotFound is returned when no layer holds the requested asset.
var ErrNotFound = errors.New("image not found")

// Mode selects whether an image is returned as stored or zoomed.
type Mode int

const (
	Unscaled Mode = iota
	Scaled
)

// Ext is the file extension appended to asset paths.
const Ext = ".txt"

//go:embed assets
var embedded embed.FS

// Builtin returns the embedded asset set.
func Builtin() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Layered returns an FS that resolves names against dir first and falls
// back to the builtin assets. An empty dir yields the builtin set.
func Layered(dir string) fs.FS {
	if dir == "" {
		return Builtin()
	}
	return layers{os.DirFS(dir), Builtin()}
}

type layers []fs.FS

func (l layers) Open(name string) (fs.File, error) {
	var firstErr error
	for _, f := range l {
		file, err := f.Open(name)
		if err == nil {
			return file, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

type cacheKey struct {
	path string
	mode Mode
}

// Loader reads and caches images. It is not safe for concurrent use; the
// dialog engine is single-threaded.
type Loader struct {
	fsys  fs.FS
	zoom  int
	cache map[cacheKey]*canvas.Image
	log   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithZoom sets the integer factor applied in Scaled mode.
func WithZoom(z int) Option {
	return func(l *Loader) {
		if z > 0 {
			l.zoom = z
		}
	}
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:  fsys,
		zoom:  1,
		cache: make(map[cacheKey]*canvas.Image),
		log:   logging.ForComponent(logging.CompAssets),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load returns the image stored at name (without extension). Missing
// assets yield an error wrapping ErrNotFound.
func (l *Loader) Load(name string, mode Mode) (*canvas.Image, error) {
	key := cacheKey{name, mode}
	if img, ok := l.cache[key]; ok {
		return img, nil
	}
	data, err := fs.ReadFile(l.fsys, path.Clean(name)+Ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	img := canvas.ImageFromText(string(data), canvas.Ink{})
	if mode == Scaled && l.zoom > 1 {
		img = canvas.Scale(img, img.W*l.zoom, img.H*l.zoom)
	}
	l.cache[key] = img
	return img, nil
}

// Get is Load for callers that treat a missing image as "draw nothing".
// It returns nil when the image cannot be loaded and logs the reason at
// debug level.
func (l *Loader) Get(name string, mode Mode) *canvas.Image {
	img, err := l.Load(name, mode)
	if err != nil {
		l.log.Debug("image unavailable", "name", name, "error", err)
		return nil
	}
	return img
}
