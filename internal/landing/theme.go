package landing

import (
	"encoding/json"
	"slices"
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ThemeConfig holds the visual settings applied by the editor and exporter.
type ThemeConfig struct {
	Mode       ThemeMode `json:"mode"`
	BrandColor string    `json:"brandColor"`
	Preset     string    `json:"preset"`
}

// DefaultTheme returns the theme used before the user changes anything.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Mode:       ThemeLight,
		BrandColor: DefaultBrandColor,
		Preset:     "default",
	}
}

// Merge overwrites non-zero fields from overlay.
func (t *ThemeConfig) Merge(overlay *ThemeConfig) {
	if overlay.Mode != "" {
		t.Mode = overlay.Mode
	}
	if overlay.BrandColor != "" {
		t.BrandColor = overlay.BrandColor
	}
	if overlay.Preset != "" {
		t.Preset = overlay.Preset
	}
}

// Validate rejects unknown theme modes.
func (t *ThemeConfig) Validate() error {
	if t.Mode != ThemeLight && t.Mode != ThemeDark {
		return ErrInvalidTheme
	}
	return nil
}

// PreviewMode is the device frame used by the editor preview.
type PreviewMode string

const (
	PreviewDesktop PreviewMode = "desktop"
	PreviewTablet  PreviewMode = "tablet"
	PreviewMobile  PreviewMode = "mobile"
)

var previewModes = []PreviewMode{PreviewDesktop, PreviewTablet, PreviewMobile}

// ParsePreviewMode validates a string as a known preview mode.
func ParsePreviewMode(s string) (PreviewMode, error) {
	v := PreviewMode(s)
	if !slices.Contains(previewModes, v) {
		return "", ErrInvalidPreviewMode
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known preview mode.
func (p *PreviewMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParsePreviewMode(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
