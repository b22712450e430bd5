// Package fontconfig enumerates fonts through the fontconfig CLI. This
// is the lowest-common-denominator backend: names and a handful of
// coarse flags, no file paths, no variable-axis data. fontconfig tends
// to report the same face more than once, so insertion deduplicates on
// (family, style), first occurrence wins.
package fontconfig

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/types"
)

// One face per line: first localized family and style names, then the
// raw fontconfig weight, slant and spacing values.
const listFormat = `%{family[0]}\t%{style[0]}\t%{weight}\t%{slant}\t%{spacing}\n`

// fontconfig slant/spacing constants (fontconfig.h).
const (
	slantRoman  = 0
	spacingMono = 100
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Type() backend.Type { return backend.TypeFontconfig }

func (b *Backend) Enumerate() ([]types.FontRecord, error) {
	path, err := exec.LookPath("fc-list")
	if err != nil {
		return nil, fmt.Errorf("fontconfig is not installed: %w", backend.ErrUnavailable)
	}

	out, err := exec.Command(path, "--format", listFormat).Output()
	if err != nil {
		return nil, fmt.Errorf("fc-list failed: %v: %w", err, backend.ErrUnavailable)
	}

	recs := parseList(out)
	types.SortByFamily(recs)
	return recs, nil
}

// parseList converts fc-list output into canonical records, dropping
// faces without a family name and (family, style) duplicates. Fields
// that fail to parse keep their documented defaults rather than failing
// the face.
func parseList(out []byte) []types.FontRecord {
	var recs []types.FontRecord
	seen := map[string]bool{}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		family := strings.TrimSpace(fields[0])
		if family == "" {
			continue
		}

		style := ""
		if len(fields) > 1 {
			style = strings.TrimSpace(fields[1])
		}

		key := family + "\x00" + style
		if seen[key] {
			continue
		}
		seen[key] = true

		fcWeight := 80.0 // FC_WEIGHT_REGULAR
		if len(fields) > 2 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err == nil {
				fcWeight = v
			}
		}
		slant := 0.0
		if len(fields) > 3 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
				slant = v
			}
		}
		spacing := 0.0
		if len(fields) > 4 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64); err == nil {
				spacing = v
			}
		}

		recs = append(recs, types.FontRecord{
			Family:     family,
			Style:      style,
			Weight:     WeightToOpenType(fcWeight),
			Italic:     slant > slantRoman,
			FixedPitch: spacing >= spacingMono,
			Charset:    types.CharsetUnspecified,
		})
	}

	return recs
}

// fontconfig weight scale anchors and their OpenType equivalents, from
// fontconfig's own conversion table.
var weightAnchors = []struct{ fc, ot float64 }{
	{0, 100},   // thin
	{40, 200},  // extralight
	{50, 300},  // light
	{55, 350},  // demilight
	{75, 380},  // book
	{80, 400},  // regular
	{100, 500}, // medium
	{180, 600}, // demibold
	{200, 700}, // bold
	{205, 800}, // extrabold
	{210, 900}, // black
	{215, 950}, // extrablack
}

// WeightToOpenType maps a fontconfig weight (0-215 scale) onto the
// OpenType 100-950 scale, interpolating linearly between anchor values
// and clamping outside the table.
func WeightToOpenType(fc float64) int {
	if fc <= weightAnchors[0].fc {
		return int(weightAnchors[0].ot)
	}
	last := weightAnchors[len(weightAnchors)-1]
	if fc >= last.fc {
		return int(last.ot)
	}
	for i := 1; i < len(weightAnchors); i++ {
		lo, hi := weightAnchors[i-1], weightAnchors[i]
		if fc <= hi.fc {
			frac := (fc - lo.fc) / (hi.fc - lo.fc)
			return int(lo.ot + frac*(hi.ot-lo.ot) + 0.5)
		}
	}
	return 400
}
