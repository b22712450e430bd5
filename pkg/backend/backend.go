// Package backend defines the contract shared by the three font
// enumeration backends. Each backend maps whatever its underlying
// source can report into the canonical types.FontRecord shape; the
// capability differences between them are documented on the
// implementations.
package backend

import (
	"fmt"

	"github.com/fontlens/fontlens/pkg/types"
)

// ErrUnavailable is wrapped by a backend whose top-level resource cannot
// be acquired at all (binary missing, no font storage, ...). It is the
// only fatal failure a backend reports; individual faces that cannot be
// read are skipped instead.
var ErrUnavailable = fmt.Errorf("font backend unavailable")

// Type identifies one of the enumeration backends.
type Type string

const (
	// TypeFontconfig is the legacy backend: coarse metadata from
	// fc-list, deduplicated on (family, style).
	TypeFontconfig Type = "fontconfig"
	// TypeMetrics reads per-face metrics from font files, one record per
	// face, without file paths or axis data.
	TypeMetrics Type = "metrics"
	// TypeFontSet is the richest backend: locale-preferred names, file
	// paths for local faces, and variable-axis ranges.
	TypeFontSet Type = "fontset"
)

// Types lists all known backends, in the order the UI presents them.
func Types() []Type {
	return []Type{TypeFontconfig, TypeMetrics, TypeFontSet}
}

// ParseType converts a user-supplied string into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q", s)
}

// DisplayName is the human-facing backend name used in status text.
func (t Type) DisplayName() string {
	switch t {
	case TypeFontconfig:
		return "Fontconfig"
	case TypeMetrics:
		return "Metrics"
	case TypeFontSet:
		return "FontSet"
	default:
		return string(t)
	}
}

// Backend enumerates installed fonts into canonical records. Enumerate
// returns the full, sorted, backend-appropriate record sequence, or an
// error wrapping ErrUnavailable when the backend cannot run at all.
type Backend interface {
	Type() Type
	Enumerate() ([]types.FontRecord, error)
}
