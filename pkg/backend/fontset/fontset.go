// Package fontset is the richest enumeration backend. It reads sfnt
// containers (TrueType, OpenType, and TrueType collections) directly,
// so it can report what the other backends cannot: locale-preferred
// family and face names from the name table, file paths for faces
// backed by local files, and variable-axis ranges from the fvar table.
// Memory-resident faces (the embedded Go fonts) are enumerated with an
// empty path.
package fontset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/platform"
	"github.com/fontlens/fontlens/pkg/types"
)

type Backend struct {
	dirs            []string
	includeEmbedded bool
	lang            uint16
}

// New returns a fontset backend scanning the given directories (platform
// defaults when empty). Locale selects the preferred name-table
// language; includeEmbedded adds the compiled-in Go fonts as
// memory-resident faces.
func New(dirs []string, locale string, includeEmbedded bool) *Backend {
	return &Backend{
		dirs:            dirs,
		includeEmbedded: includeEmbedded,
		lang:            LanguageID(locale),
	}
}

func (b *Backend) Type() backend.Type { return backend.TypeFontSet }

func (b *Backend) Enumerate() ([]types.FontRecord, error) {
	dirs := b.dirs
	if len(dirs) == 0 {
		dirs = platform.FontDirs()
	}
	if len(dirs) == 0 && !b.includeEmbedded {
		return nil, fmt.Errorf("no font directories found: %w", backend.ErrUnavailable)
	}

	var recs []types.FontRecord
	for _, dir := range dirs {
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !isFontFile(path) {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			recs = append(recs, b.facesFrom(data, path, int64(len(data)))...)
			return nil
		})
	}

	if b.includeEmbedded {
		for _, data := range embeddedFaces {
			recs = append(recs, b.facesFrom(data, "", 0)...)
		}
	}

	types.SortByFamilyAndStyle(recs)
	return recs, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// facesFrom converts every parseable face in one container into
// canonical records. Faces without a resolved family name carry no
// identifying information and are discarded; parse failures yield no
// records but never abort the enumeration pass.
func (b *Backend) facesFrom(data []byte, path string, size int64) []types.FontRecord {
	faces, err := parseCollection(data, b.lang)
	if err != nil {
		return nil
	}

	var recs []types.FontRecord
	for _, f := range faces {
		if f.family == "" {
			continue
		}
		axes, variable := formatAxes(f.axes)
		recs = append(recs, types.FontRecord{
			Family:   f.family,
			Style:    f.style,
			Path:     path,
			Axes:     axes,
			Weight:   f.weight,
			Italic:   f.italic,
			Variable: variable,
			// The property set exposes neither pitch nor a charset code.
			FixedPitch: false,
			Charset:    types.CharsetUnspecified,
			FileSize:   size,
		})
	}
	return recs
}

// formatAxes renders every non-degenerate axis as "tag min-max", joined
// by ", ". An axis with min == max is a fixed design parameter and
// contributes nothing; the face is variable iff at least one axis
// survives.
func formatAxes(axes []axisRange) (string, bool) {
	var parts []string
	for _, a := range axes {
		if a.min == a.max {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.0f-%.0f", a.tag, a.min, a.max))
	}
	return strings.Join(parts, ", "), len(parts) > 0
}
