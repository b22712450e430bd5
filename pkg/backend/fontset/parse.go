package fontset

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Low-level sfnt container reading. Only the tables this backend
// reports on are decoded: the table directory itself, name, OS/2, head
// (as an italic fallback) and fvar.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff

var errMalformed = fmt.Errorf("malformed font data")

const (
	tagCollection   = 0x74746366 // "ttcf"
	versionTrueType = 0x00010000
	versionOpenType = 0x4F54544F // "OTTO"
	versionAppleTT  = 0x74727565 // "true"
)

type face struct {
	family string
	style  string
	weight int
	italic bool
	axes   []axisRange
}

type axisRange struct {
	tag      string
	min, max float64
}

// parseCollection returns the faces of a font container: one for a
// plain TrueType/OpenType file, one per member for a collection.
// Collection members that fail to parse are skipped.
func parseCollection(data []byte, lang uint16) ([]face, error) {
	if len(data) < 12 {
		return nil, errMalformed
	}

	if be32(data, 0) == tagCollection {
		numFonts := int(be32(data, 8))
		var faces []face
		for i := 0; i < numFonts; i++ {
			pos := 12 + 4*i
			if pos+4 > len(data) {
				break
			}
			f, err := parseFace(data, int(be32(data, pos)), lang)
			if err != nil {
				continue
			}
			faces = append(faces, f)
		}
		return faces, nil
	}

	f, err := parseFace(data, 0, lang)
	if err != nil {
		return nil, err
	}
	return []face{f}, nil
}

// parseFace reads the table directory rooted at off (offsets inside the
// directory are absolute within data, per the collection format) and
// extracts the metadata tables. A missing table leaves the documented
// default in place: empty names, weight 400, italic false.
func parseFace(data []byte, off int, lang uint16) (face, error) {
	if off < 0 || off+12 > len(data) {
		return face{}, errMalformed
	}
	switch be32(data, off) {
	case versionTrueType, versionOpenType, versionAppleTT:
	default:
		return face{}, errMalformed
	}

	numTables := int(be16(data, off+4))
	tables := map[string][]byte{}
	for i := 0; i < numTables; i++ {
		rec := off + 12 + 16*i
		if rec+16 > len(data) {
			return face{}, errMalformed
		}
		tOff := int(be32(data, rec+8))
		tLen := int(be32(data, rec+12))
		if tOff < 0 || tLen < 0 || tOff+tLen > len(data) {
			continue
		}
		tables[string(data[rec:rec+4])] = data[tOff : tOff+tLen]
	}

	names := parseNames(tables["name"])

	var f face
	f.family = lookupName(names, 16, 1, lang) // typographic family before legacy
	f.style = lookupName(names, 17, 2, lang)
	f.weight, f.italic = parseOS2(tables["OS/2"], tables["head"])
	f.axes = parseFvar(tables["fvar"])
	return f, nil
}

// parseOS2 reads weight and italic from the OS/2 table, falling back to
// the head table's macStyle for italic when OS/2 is absent. Absent
// values take the documented defaults.
func parseOS2(os2, head []byte) (weight int, italic bool) {
	weight = 400

	if len(os2) >= 6 {
		w := int(be16(os2, 4))
		// A few old fonts use the 1-9 scale instead of 100-900.
		if w > 0 && w < 10 {
			w *= 100
		}
		if w >= 100 && w <= 1000 {
			weight = w
		}
	}

	if len(os2) >= 64 {
		italic = be16(os2, 62)&0x0001 != 0 // fsSelection ITALIC
	} else if len(head) >= 46 {
		italic = be16(head, 44)&0x0002 != 0 // macStyle italic
	}
	return weight, italic
}

type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	value      string
}

// parseNames decodes the records of a name table we know how to read:
// Windows (platform 3) UTF-16BE strings and Macintosh (platform 1)
// Roman strings. Everything else is ignored.
func parseNames(data []byte) []nameRecord {
	if len(data) < 6 {
		return nil
	}
	count := int(be16(data, 2))
	storage := int(be16(data, 4))
	if storage > len(data) {
		return nil
	}

	var recs []nameRecord
	for i := 0; i < count; i++ {
		pos := 6 + 12*i
		if pos+12 > len(data) {
			break
		}
		r := nameRecord{
			platformID: be16(data, pos),
			encodingID: be16(data, pos+2),
			languageID: be16(data, pos+4),
			nameID:     be16(data, pos+6),
		}
		strLen := int(be16(data, pos+8))
		strOff := storage + int(be16(data, pos+10))
		if strOff+strLen > len(data) {
			continue
		}
		raw := data[strOff : strOff+strLen]

		switch {
		case r.platformID == 3 && (r.encodingID == 1 || r.encodingID == 10):
			r.value = decodeUTF16BE(raw)
		case r.platformID == 1 && r.encodingID == 0:
			r.value = decodeMacRoman(raw)
		default:
			continue
		}
		if r.value == "" {
			continue
		}
		recs = append(recs, r)
	}
	return recs
}

// lookupName resolves a name by ID with locale preference: the
// preferred name ID before its legacy fallback, and within each ID a
// Windows record in the wanted language, then any Windows record, then
// a Macintosh one. Returns "" when the table simply has no such name.
func lookupName(recs []nameRecord, preferredID, legacyID uint16, lang uint16) string {
	for _, id := range []uint16{preferredID, legacyID} {
		for _, r := range recs {
			if r.nameID == id && r.platformID == 3 && r.languageID == lang {
				return r.value
			}
		}
		for _, r := range recs {
			if r.nameID == id && r.platformID == 3 {
				return r.value
			}
		}
		for _, r := range recs {
			if r.nameID == id && r.platformID == 1 {
				return r.value
			}
		}
	}
	return ""
}

// parseFvar returns every axis record, degenerate or not; the caller
// decides which ranges are worth reporting.
func parseFvar(data []byte) []axisRange {
	if len(data) < 16 {
		return nil
	}
	axesOff := int(be16(data, 4))
	axisCount := int(be16(data, 8))
	axisSize := int(be16(data, 10))
	if axisSize < 20 {
		return nil
	}

	var axes []axisRange
	for i := 0; i < axisCount; i++ {
		pos := axesOff + i*axisSize
		if pos < 0 || pos+20 > len(data) {
			break
		}
		axes = append(axes, axisRange{
			tag: tagString(binary.LittleEndian.Uint32(data[pos : pos+4])),
			min: fixedToFloat(be32(data, pos+4)),
			max: fixedToFloat(be32(data, pos+12)),
		})
	}
	return axes
}

// tagString decodes a packed axis tag, low byte first, into its four
// characters ("wght", "wdth", ...).
func tagString(v uint32) string {
	b := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	for len(b) > 0 && (b[len(b)-1] == 0 || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return string(b)
}

// fixedToFloat converts a 16.16 fixed-point value.
func fixedToFloat(v uint32) float64 {
	return float64(int32(v)) / 65536
}

func decodeUTF16BE(raw []byte) string {
	u := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		u = append(u, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return string(utf16.Decode(u))
}

// decodeMacRoman approximates Mac Roman by passing ASCII through and
// mapping the high half via Latin-1, which matches for the characters
// that show up in font names in practice.
func decodeMacRoman(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

func be16(data []byte, off int) uint16 {
	return binary.BigEndian.Uint16(data[off : off+2])
}

func be32(data []byte, off int) uint32 {
	return binary.BigEndian.Uint32(data[off : off+4])
}
