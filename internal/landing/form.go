// Package landing defines the landing page content model: the form attributes
// collected from the user, the fixed generated content schema, the display
// sections derived from it, and the theme configuration.
package landing

import "strings"

// Tone is the requested voice of the generated copy. The named values select
// phrasing in the fallback content; any other free text is passed through to
// the model as-is.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
)

// Named defaults substituted wherever a form attribute is absent.
const (
	DefaultProductName    = "Product"
	DefaultIndustry       = "Technology"
	DefaultTone           = ToneProfessional
	DefaultTargetAudience = "businesses"
	DefaultUniqueValue    = "innovative solution"
	DefaultBrandColor     = "#3B82F6"
)

// FormAttributes holds the product attributes accumulated across the
// multi-step form. Every field is optional; the zero value means absent.
type FormAttributes struct {
	ProductName    string   `json:"productName,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Tone           Tone     `json:"tone,omitempty"`
	KeyFeatures    []string `json:"keyFeatures,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
	UniqueValue    string   `json:"uniqueValue,omitempty"`
	BrandColor     string   `json:"brandColor,omitempty"`
}

// Merge overwrites non-zero fields from overlay. Empty strings leave the
// current value in place, so a text field cannot be cleared through Merge;
// send a replacement value or reset the session instead. A non-nil
// KeyFeatures slice replaces the existing list wholesale, and an empty
// non-nil slice clears it.
func (f *FormAttributes) Merge(overlay *FormAttributes) {
	if overlay.ProductName != "" {
		f.ProductName = overlay.ProductName
	}
	if overlay.Industry != "" {
		f.Industry = overlay.Industry
	}
	if overlay.Tone != "" {
		f.Tone = overlay.Tone
	}
	if overlay.KeyFeatures != nil {
		f.KeyFeatures = append([]string(nil), overlay.KeyFeatures...)
	}
	if overlay.TargetAudience != "" {
		f.TargetAudience = overlay.TargetAudience
	}
	if overlay.UniqueValue != "" {
		f.UniqueValue = overlay.UniqueValue
	}
	if overlay.BrandColor != "" {
		f.BrandColor = overlay.BrandColor
	}
}

// WithDefaults returns a copy with every absent attribute replaced by its
// named default. KeyFeatures has no default and is copied as-is.
func (f FormAttributes) WithDefaults() FormAttributes {
	out := f
	out.ProductName = orDefault(f.ProductName, DefaultProductName)
	out.Industry = orDefault(f.Industry, DefaultIndustry)
	out.Tone = Tone(orDefault(string(f.Tone), string(DefaultTone)))
	out.TargetAudience = orDefault(f.TargetAudience, DefaultTargetAudience)
	out.UniqueValue = orDefault(f.UniqueValue, DefaultUniqueValue)
	out.BrandColor = orDefault(f.BrandColor, DefaultBrandColor)
	out.KeyFeatures = append([]string(nil), f.KeyFeatures...)
	return out
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
