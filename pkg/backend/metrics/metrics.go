// Package metrics enumerates fonts by reading each installed font file
// with seehuhn.de/go/sfnt. Compared to the fontconfig backend it gets
// accurate per-face names and metrics (the library resolves the
// preferred name with fallback); it reports one record per face with no
// deduplication. File paths and variable-axis data are not part of this
// backend's capability set.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/sfnt"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/platform"
	"github.com/fontlens/fontlens/pkg/types"
)

type Backend struct {
	dirs []string
}

// New returns a metrics backend scanning the given directories, or the
// platform defaults when dirs is empty.
func New(dirs []string) *Backend {
	return &Backend{dirs: dirs}
}

func (b *Backend) Type() backend.Type { return backend.TypeMetrics }

func (b *Backend) Enumerate() ([]types.FontRecord, error) {
	dirs := b.dirs
	if len(dirs) == 0 {
		dirs = platform.FontDirs()
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no font directories found: %w", backend.ErrUnavailable)
	}

	var recs []types.FontRecord
	for _, dir := range dirs {
		// Unreadable subtrees and unparseable files are skipped, not
		// fatal; only the complete absence of font storage is.
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !isFontFile(path) {
				return nil
			}
			rec, err := readFace(path)
			if err != nil {
				return nil
			}
			recs = append(recs, rec)
			return nil
		})
	}

	types.SortByFamilyAndStyle(recs)
	return recs, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func readFace(path string) (types.FontRecord, error) {
	fd, err := os.Open(path)
	if err != nil {
		return types.FontRecord{}, err
	}
	defer fd.Close()

	f, err := sfnt.Read(fd)
	if err != nil {
		return types.FontRecord{}, err
	}

	weight := int(f.Weight)
	if weight == 0 {
		weight = 400
	}

	return types.FontRecord{
		Family:     f.FamilyName,
		Style:      StyleName(weight, f.IsItalic),
		Weight:     weight,
		Italic:     f.IsItalic,
		FixedPitch: f.IsFixedPitch(),
		Charset:    types.CharsetUnspecified,
	}, nil
}

// StyleName synthesizes a face name from the weight class and italic
// flag, "Regular" when neither says anything.
func StyleName(weight int, italic bool) string {
	var words []string
	if w := weightClassName(weight); w != "" {
		words = append(words, w)
	}
	if italic {
		words = append(words, "Italic")
	}
	if len(words) == 0 {
		return "Regular"
	}
	return strings.Join(words, " ")
}

func weightClassName(weight int) string {
	// Round to the nearest weight class.
	class := (weight + 50) / 100 * 100
	switch {
	case class <= 100:
		return "Thin"
	case class == 200:
		return "ExtraLight"
	case class == 300:
		return "Light"
	case class == 400:
		return "" // regular carries no weight word
	case class == 500:
		return "Medium"
	case class == 600:
		return "SemiBold"
	case class == 700:
		return "Bold"
	case class == 800:
		return "ExtraBold"
	default:
		return "Black"
	}
}
