package config

import (
	"strings"
	"testing"
)

func TestNewFromReaderOverridesDefaults(t *testing.T) {
	yml := `
backend: fontset
locale: ja-JP
fontDirs:
  - ~/fonts
  - /opt/fonts
includeEmbedded: false
`
	c, err := NewFromReader(strings.NewReader(yml))
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != "fontset" || c.Locale != "ja-JP" {
		t.Errorf("overrides not applied: %+v", c)
	}
	if len(c.FontDirs) != 2 {
		t.Errorf("fontDirs = %v", c.FontDirs)
	}
	if c.IncludeEmbedded {
		t.Error("includeEmbedded override not applied")
	}
	if c.SampleText != Default.SampleText {
		t.Errorf("unset field should keep its default, got %q", c.SampleText)
	}
}

func TestNewFromReaderEmptyKeepsDefaults(t *testing.T) {
	c, err := NewFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != Default.Backend || c.Locale != Default.Locale ||
		c.IncludeEmbedded != Default.IncludeEmbedded || c.SampleText != Default.SampleText {
		t.Errorf("empty config diverged from defaults: %+v", c)
	}
}

func TestNewFromReaderRejectsUnknownBackend(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("backend: directwrite\n"))
	if err == nil {
		t.Fatal("expected a validation error for an unknown backend")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v", err)
	}
}
