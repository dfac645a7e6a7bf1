package export_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/pagegen/internal/export"
	"github.com/JaimeStill/pagegen/internal/landing"
)

func content() landing.GeneratedContent {
	c := landing.GeneratedContent{
		Hero:  landing.Hero{Headline: "Shop Smarter", Subhead: "Everything in one cart", ImageURL: landing.HeroImageURL},
		About: landing.About{Title: "Our Story", Content: "We built Acme for shoppers."},
	}
	for i := range landing.FeatureCount {
		c.Features = append(c.Features, landing.Feature{
			ID: landing.FeatureID(i), Title: "Feature Title", Description: "desc", Icon: landing.FeatureIcon(i),
		})
	}
	for i := range landing.TestimonialCount {
		c.Testimonials = append(c.Testimonials, landing.Testimonial{
			ID: landing.TestimonialID(i), Name: "Name", Role: "Role", Company: "Co", Quote: "Quote", Avatar: landing.TestimonialAvatar(i),
		})
	}
	return c
}

func newExporter(t *testing.T) *export.HTMLExporter {
	t.Helper()
	e, err := export.NewHTMLExporter()
	if err != nil {
		t.Fatalf("NewHTMLExporter error: %v", err)
	}
	return e
}

func TestExport(t *testing.T) {
	e := newExporter(t)

	sections := append(landing.DeriveSections(content()), landing.NewCustomSection("custom-1", "Pricing", 4))
	sections[0], sections[4] = sections[4], sections[0]

	out, err := e.Export(export.Input{
		Sections:       sections,
		Theme:          landing.ThemeConfig{Mode: landing.ThemeDark, BrandColor: "#FF0000"},
		Form:           landing.FormAttributes{ProductName: "Acme"},
		IncludeStyles:  true,
		IncludeScripts: true,
	})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	for _, want := range []string{
		"<title>Acme</title>",
		`class="dark"`,
		"--brand: #FF0000",
		"<h1>Shop Smarter</h1>",
		"Our Story",
		"<style>",
		"<script>",
		`This is a custom section: &#34;Pricing&#34;.`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	hero := strings.Index(out, `id="hero"`)
	testimonials := strings.Index(out, `id="testimonials"`)
	custom := strings.Index(out, `id="custom-1"`)
	if hero < 0 || hero > testimonials || testimonials > custom {
		t.Errorf("sections out of order: hero=%d testimonials=%d custom=%d", hero, testimonials, custom)
	}
}

func TestExportOptions(t *testing.T) {
	e := newExporter(t)

	sections := landing.DeriveSections(content())
	sections[1].IsVisible = false

	out, err := e.Export(export.Input{Sections: sections, Theme: landing.DefaultTheme()})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if strings.Contains(out, "<style>") || strings.Contains(out, "<script") {
		t.Error("styles or scripts included when disabled")
	}
	if strings.Contains(out, `id="about"`) {
		t.Error("hidden section rendered")
	}
	if strings.Contains(out, `class="dark"`) {
		t.Error("light theme rendered dark")
	}
	if !strings.Contains(out, "<title>Product</title>") {
		t.Error("missing default product title")
	}
}

func TestExportSanitizes(t *testing.T) {
	e := newExporter(t)

	c := content()
	c.Hero.Headline = `<script>alert(1)</script>Tom & Jerry <b>Deluxe</b>`
	c.Testimonials[0].Avatar = "javascript:alert(1)"

	out, err := e.Export(export.Input{
		Sections:      landing.DeriveSections(c),
		Theme:         landing.ThemeConfig{Mode: landing.ThemeLight, BrandColor: "red;}</style><script>"},
		IncludeStyles: true,
	})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Error("script content survived sanitization")
	}
	if strings.Contains(out, "<b>") {
		t.Error("markup survived sanitization")
	}
	if !strings.Contains(out, "Tom &amp; Jerry Deluxe") {
		t.Error("text content not preserved with single escaping")
	}
	if strings.Contains(out, "&amp;amp;") {
		t.Error("text double escaped")
	}
	if !strings.Contains(out, "--brand: "+landing.DefaultBrandColor) {
		t.Error("invalid brand color not replaced with default")
	}
}

func TestShare(t *testing.T) {
	s := export.NewSharer()

	sections := landing.DeriveSections(content())
	theme := landing.DefaultTheme()
	form := landing.FormAttributes{ProductName: "Acme", KeyFeatures: []string{"a"}}

	payload, err := s.Share(sections, theme, form)
	if err != nil {
		t.Fatalf("Share error: %v", err)
	}
	if strings.ContainsAny(payload, "+/=") {
		t.Errorf("payload is not unpadded base64url: %s", payload)
	}

	page, err := export.Decode(payload)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := &export.SharedPage{Version: export.ShareVersion, Sections: sections, Theme: theme, Form: form}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not base64", "!!!"},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("hello"))},
		{"wrong version", base64.RawURLEncoding.EncodeToString([]byte(`{"v":99}`))},
		{"bad section", base64.RawURLEncoding.EncodeToString([]byte(`{"v":1,"sections":[{"id":"x","type":"pricing"}]}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := export.Decode(tt.payload); !errors.Is(err, export.ErrInvalidPayload) {
				t.Errorf("error = %v, want ErrInvalidPayload", err)
			}
		})
	}
}
