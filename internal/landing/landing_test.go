package landing_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/pagegen/internal/landing"
)

func validContent() landing.GeneratedContent {
	c := landing.GeneratedContent{
		Hero:  landing.Hero{Headline: "h", Subhead: "s", ImageURL: landing.HeroImageURL},
		About: landing.About{Title: "t", Content: "c"},
	}
	for i := range landing.FeatureCount {
		c.Features = append(c.Features, landing.Feature{
			ID: landing.FeatureID(i), Title: "f", Description: "d", Icon: landing.FeatureIcon(i),
		})
	}
	for i := range landing.TestimonialCount {
		c.Testimonials = append(c.Testimonials, landing.Testimonial{
			ID: landing.TestimonialID(i), Name: "n", Role: "r", Company: "c", Quote: "q", Avatar: landing.TestimonialAvatar(i),
		})
	}
	return c
}

func TestFormMerge(t *testing.T) {
	form := landing.FormAttributes{ProductName: "Acme", Industry: "Retail"}
	form.Merge(&landing.FormAttributes{Industry: "Finance", Tone: landing.ToneFriendly})

	want := landing.FormAttributes{ProductName: "Acme", Industry: "Finance", Tone: landing.ToneFriendly}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}

	t.Run("key features replaced wholesale", func(t *testing.T) {
		f := landing.FormAttributes{KeyFeatures: []string{"a", "b"}}
		f.Merge(&landing.FormAttributes{KeyFeatures: []string{"c"}})
		if diff := cmp.Diff([]string{"c"}, f.KeyFeatures); diff != "" {
			t.Errorf("KeyFeatures mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty strings keep existing", func(t *testing.T) {
		f := landing.FormAttributes{ProductName: "Acme", BrandColor: "#ff0000"}
		f.Merge(&landing.FormAttributes{ProductName: "", BrandColor: ""})
		if f.ProductName != "Acme" || f.BrandColor != "#ff0000" {
			t.Errorf("form = %+v, want fields unchanged", f)
		}
	})

	t.Run("empty key features clear list", func(t *testing.T) {
		f := landing.FormAttributes{KeyFeatures: []string{"a"}}
		f.Merge(&landing.FormAttributes{KeyFeatures: []string{}})
		if len(f.KeyFeatures) != 0 {
			t.Errorf("KeyFeatures = %v, want empty", f.KeyFeatures)
		}
	})

	t.Run("nil key features keep existing", func(t *testing.T) {
		f := landing.FormAttributes{KeyFeatures: []string{"a"}}
		f.Merge(&landing.FormAttributes{ProductName: "x"})
		if len(f.KeyFeatures) != 1 {
			t.Errorf("KeyFeatures = %v, want [a]", f.KeyFeatures)
		}
	})
}

func TestFormWithDefaults(t *testing.T) {
	got := landing.FormAttributes{ProductName: "  "}.WithDefaults()
	want := landing.FormAttributes{
		ProductName:    landing.DefaultProductName,
		Industry:       landing.DefaultIndustry,
		Tone:           landing.DefaultTone,
		TargetAudience: landing.DefaultTargetAudience,
		UniqueValue:    landing.DefaultUniqueValue,
		BrandColor:     landing.DefaultBrandColor,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithDefaults mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid content", func(t *testing.T) {
		c := validContent()
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*landing.GeneratedContent)
	}{
		{"empty headline", func(c *landing.GeneratedContent) { c.Hero.Headline = "" }},
		{"blank about content", func(c *landing.GeneratedContent) { c.About.Content = "   " }},
		{"three features", func(c *landing.GeneratedContent) { c.Features = c.Features[:3] }},
		{"duplicate feature id", func(c *landing.GeneratedContent) { c.Features[1].ID = c.Features[0].ID }},
		{"missing avatar", func(c *landing.GeneratedContent) { c.Testimonials[2].Avatar = "" }},
		{"four testimonials", func(c *landing.GeneratedContent) {
			c.Testimonials = append(c.Testimonials, c.Testimonials[0])
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, landing.ErrInvalidContent) {
				t.Errorf("Validate = %v, want ErrInvalidContent", err)
			}
		})
	}
}

func TestDeriveSections(t *testing.T) {
	c := validContent()
	sections := landing.DeriveSections(c)

	if len(sections) != 4 {
		t.Fatalf("len = %d, want 4", len(sections))
	}

	for i, s := range sections {
		if s.Order != i {
			t.Errorf("sections[%d].Order = %d, want %d", i, s.Order, i)
		}
		if s.Type != landing.StandardSections[i] || s.ID != string(s.Type) {
			t.Errorf("sections[%d] = %s/%s, want %s", i, s.ID, s.Type, landing.StandardSections[i])
		}
		if !s.IsVisible {
			t.Errorf("sections[%d] not visible", i)
		}
	}

	var features []landing.Feature
	if err := json.Unmarshal(sections[2].Content, &features); err != nil {
		t.Fatalf("unmarshal features payload: %v", err)
	}
	if diff := cmp.Diff(c.Features, features); diff != "" {
		t.Errorf("features payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomSections(t *testing.T) {
	t.Run("custom order skips reserved slots", func(t *testing.T) {
		if got := landing.NextCustomOrder(nil); got != 4 {
			t.Errorf("NextCustomOrder(nil) = %d, want 4", got)
		}
	})

	t.Run("custom order increases monotonically", func(t *testing.T) {
		sections := append(landing.DeriveSections(validContent()), landing.NewCustomSection("custom-a", "Pricing", 7))
		if got := landing.NextCustomOrder(sections); got != 8 {
			t.Errorf("NextCustomOrder = %d, want 8", got)
		}
	})

	t.Run("custom payload", func(t *testing.T) {
		s := landing.NewCustomSection("custom-a", "Pricing", 4)
		var payload landing.CustomContent
		if err := json.Unmarshal(s.Content, &payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		want := `This is a custom section: "Pricing". You can edit this content to match your needs.`
		if payload.Content != want || payload.Title != "Pricing" {
			t.Errorf("payload = %+v", payload)
		}
	})

	t.Run("replace standard keeps customs", func(t *testing.T) {
		custom := landing.NewCustomSection("custom-a", "Pricing", 4)
		current := append(landing.DeriveSections(validContent()), custom)

		next := validContent()
		next.Hero.Headline = "new"
		got := landing.ReplaceStandard(current, landing.DeriveSections(next))

		if len(got) != 5 {
			t.Fatalf("len = %d, want 5", len(got))
		}
		for i := range 4 {
			if got[i].Order != i {
				t.Errorf("got[%d].Order = %d", i, got[i].Order)
			}
		}
		if got[4].ID != "custom-a" {
			t.Errorf("got[4].ID = %s, want custom-a", got[4].ID)
		}
	})
}

func TestValidateSections(t *testing.T) {
	sections := landing.DeriveSections(validContent())
	if err := landing.ValidateSections(sections); err != nil {
		t.Fatalf("ValidateSections error: %v", err)
	}

	dup := append(sections, sections[0])
	if err := landing.ValidateSections(dup); !errors.Is(err, landing.ErrInvalidSection) {
		t.Errorf("duplicate id: error = %v, want ErrInvalidSection", err)
	}

	unknown := []landing.PageSection{{ID: "x", Type: "pricing"}}
	if err := landing.ValidateSections(unknown); !errors.Is(err, landing.ErrInvalidSection) {
		t.Errorf("unknown type: error = %v, want ErrInvalidSection", err)
	}
}

func TestTheme(t *testing.T) {
	theme := landing.DefaultTheme()
	theme.Merge(&landing.ThemeConfig{Mode: landing.ThemeDark})

	if theme.Mode != landing.ThemeDark || theme.BrandColor != landing.DefaultBrandColor || theme.Preset != "default" {
		t.Errorf("theme = %+v", theme)
	}

	bad := landing.ThemeConfig{Mode: "sepia"}
	if err := bad.Validate(); !errors.Is(err, landing.ErrInvalidTheme) {
		t.Errorf("Validate = %v, want ErrInvalidTheme", err)
	}
}

func TestPreviewMode(t *testing.T) {
	var mode landing.PreviewMode
	if err := json.Unmarshal([]byte(`"tablet"`), &mode); err != nil || mode != landing.PreviewTablet {
		t.Errorf("unmarshal tablet = %q, %v", mode, err)
	}
	if err := json.Unmarshal([]byte(`"watch"`), &mode); !errors.Is(err, landing.ErrInvalidPreviewMode) {
		t.Errorf("unmarshal watch error = %v, want ErrInvalidPreviewMode", err)
	}
}
