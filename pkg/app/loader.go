package app

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"github.com/fontlens/fontlens/pkg/backend"
	"github.com/fontlens/fontlens/pkg/backend/fontconfig"
	"github.com/fontlens/fontlens/pkg/backend/fontset"
	"github.com/fontlens/fontlens/pkg/backend/metrics"
	"github.com/fontlens/fontlens/pkg/config"
)

// NewBackend constructs the enumeration backend for t, configured from
// cfg. Configured font directories are ~-expanded here so the backends
// only ever see absolute paths.
func NewBackend(t backend.Type, cfg *config.Config) (backend.Backend, error) {
	dirs, err := expandDirs(cfg.FontDirs)
	if err != nil {
		return nil, err
	}

	switch t {
	case backend.TypeFontconfig:
		return fontconfig.New(), nil
	case backend.TypeMetrics:
		return metrics.New(dirs), nil
	case backend.TypeFontSet:
		return fontset.New(dirs, cfg.Locale, cfg.IncludeEmbedded), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", t)
	}
}

func expandDirs(dirs []string) ([]string, error) {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		expanded, err := homedir.Expand(d)
		if err != nil {
			return nil, fmt.Errorf("unable to expand font directory %q: %w", d, err)
		}
		out = append(out, expanded)
	}
	return out, nil
}
