package config

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	XDGName = "fontlens"
)

var (
	// Default is the configuration used as-is when no config file
	// exists, and as the base that ~/.fontlens.yaml overrides.
	Default = Config{
		Backend:         "fontconfig",
		Locale:          "en-US",
		IncludeEmbedded: true,
		SampleText:      "AaBbCcDdEeFfGgHhIiJjKk 0123456789 !@#$%",
	}
)

type Config struct {
	// Backend selects which enumeration backend runs at startup.
	Backend string `yaml:"backend" validate:"required,oneof=fontconfig metrics fontset"`
	// FontDirs overrides the platform's standard font directories for
	// the file-scanning backends. Entries may start with "~".
	FontDirs []string `yaml:"fontDirs,omitempty" validate:"unique"`
	// Locale picks the preferred name-table language for the fontset
	// backend, e.g. "en-US" or "ja-JP".
	Locale string `yaml:"locale" validate:"required"`
	// IncludeEmbedded adds the compiled-in Go fonts to fontset
	// enumerations as memory-resident faces.
	IncludeEmbedded bool `yaml:"includeEmbedded"`
	// SampleText is rendered in the preview panel for the selected face.
	SampleText string `yaml:"sampleText" validate:"required"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &c, nil
}

// NewFromFile loads path (after ~ expansion), falling back to the XDG
// config search path and finally to Default when no file exists at all.
func NewFromFile(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("unable to expand config path: %w", err)
	}

	f, err := os.Open(expanded)
	if os.IsNotExist(err) {
		xdgPath, xdgErr := xdg.SearchConfigFile(fmt.Sprintf("%s/config.yaml", XDGName))
		if xdgErr != nil {
			c := Default
			return &c, nil
		}
		f, err = os.Open(xdgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open config: %w", err)
	}
	defer f.Close()

	return NewFromReader(f)
}
