// Package resources provides the application's title, version, strings and
// images. Components receive a Provider rather than reaching for globals.
package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/svgedit/svgedit/internal/version"
	"gopkg.in/yaml.v3"
)

// ID identifies a string in the string bundle.
type ID string

const (
	AppTitle           ID = "app.title"
	MenuNew            ID = "menu.new"
	MenuOpen           ID = "menu.open"
	MenuTitle          ID = "menu.title"
	PromptOpen         ID = "prompt.open"
	TabsCanvas         ID = "tabs.canvas"
	TabsLogs           ID = "tabs.logs"
	CanvasEmpty        ID = "canvas.empty"
	DocumentUnsaved    ID = "document.unsaved"
	DocumentUnrendered ID = "document.unrendered"
)

// DefaultTitle is used when no title is available.
const DefaultTitle = "SVG Editor"

const (
	IconNew  = "icons/new.txt"
	IconOpen = "icons/open.txt"
)

var (
	ErrInvalidPath    = errors.New("invalid image path")
	ErrImageNotFound  = errors.New("image not found")
	ErrUnknownTitle   = errors.New("title unknown")
	ErrUnknownVersion = errors.New("version unknown")
)

//go:embed strings.yaml icons
var embedded embed.FS

// Image is a picture made of lines of text.
type Image []string

func (i Image) String() string {
	return strings.Join(i, "\n")
}

// Provider provides the application's resources.
type Provider interface {
	// Title returns the application title.
	Title() (string, error)
	// Version returns the application version.
	Version() (string, error)
	// String returns the bundled string with the given ID, or the ID itself
	// if there is no such string.
	String(id ID) string
	// Image loads the image at the given path.
	Image(path string) (Image, error)
}

// Bundle is a Provider backed by a filesystem containing a strings.yaml file
// and any images.
type Bundle struct {
	fsys    fs.FS
	strings map[ID]string
	title   string
	version string
}

type Option func(*Bundle)

// WithTitle overrides the title from the string bundle.
func WithTitle(title string) Option {
	return func(b *Bundle) {
		if title != "" {
			b.title = title
		}
	}
}

// WithVersion overrides the build version.
func WithVersion(v string) Option {
	return func(b *Bundle) {
		b.version = v
	}
}

// WithFS loads the bundle from fsys instead of the embedded resources.
func WithFS(fsys fs.FS) Option {
	return func(b *Bundle) {
		b.fsys = fsys
	}
}

// WithDir loads resources from a directory laid out like the embedded
// resources: a strings.yaml file and an icons directory.
func WithDir(dir string) Option {
	return WithFS(os.DirFS(dir))
}

// New loads the resource bundle.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{fsys: embedded}
	if version.Known() {
		b.version = version.Version
	}
	for _, fn := range opts {
		fn(b)
	}

	data, err := fs.ReadFile(b.fsys, "strings.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading string bundle: %w", err)
	}
	if err := yaml.Unmarshal(data, &b.strings); err != nil {
		return nil, fmt.Errorf("parsing string bundle: %w", err)
	}
	if b.title == "" {
		b.title = b.strings[AppTitle]
	}
	return b, nil
}

func (b *Bundle) Title() (string, error) {
	if b.title == "" {
		return "", ErrUnknownTitle
	}
	return b.title, nil
}

func (b *Bundle) Version() (string, error) {
	if b.version == "" {
		return "", ErrUnknownVersion
	}
	return b.version, nil
}

func (b *Bundle) String(id ID) string {
	if s, ok := b.strings[id]; ok {
		return s
	}
	return string(id)
}

func (b *Bundle) Image(p string) (Image, error) {
	if p == "" || !fs.ValidPath(p) {
		return nil, fmt.Errorf("loading image %q: %w", p, ErrInvalidPath)
	}
	data, err := fs.ReadFile(b.fsys, path.Clean(p))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading image %q: %w", p, ErrImageNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("loading image %q: %w", p, err)
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, fmt.Errorf("loading image %q: empty: %w", p, ErrImageNotFound)
	}
	return Image(strings.Split(text, "\n")), nil
}

// ScreenTitle combines the title and version for display. DefaultTitle is used
// when the provider has no title, and the version is omitted if unknown.
func ScreenTitle(p Provider) string {
	title, err := p.Title()
	if err != nil {
		title = DefaultTitle
	}
	if v, err := p.Version(); err == nil {
		title += " " + v
	}
	return title
}
