package landing

import (
	"errors"
	"fmt"
	"strings"
)

// Fixed sequence lengths of the generated content schema.
const (
	FeatureCount     = 4
	TestimonialCount = 3
)

// HeroImageURL is the sample hero image embedded in the prompt schema and used
// whenever the model omits its own.
const HeroImageURL = "https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&h=600&fit=crop"

// FeatureIcons is the fixed icon table indexed by feature position.
var FeatureIcons = [FeatureCount]string{"Zap", "Shield", "Rocket", "Star"}

// TestimonialAvatars is the fixed avatar table indexed by testimonial position.
var TestimonialAvatars = [TestimonialCount]string{
	"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
	"https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop",
	"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop",
}

// FeatureIcon returns the icon for the zero-based position, cycling the table.
func FeatureIcon(idx int) string {
	return FeatureIcons[idx%FeatureCount]
}

// TestimonialAvatar returns the avatar for the zero-based position, cycling the table.
func TestimonialAvatar(idx int) string {
	return TestimonialAvatars[idx%TestimonialCount]
}

// FeatureID returns the positional id for the zero-based position.
func FeatureID(idx int) string {
	return fmt.Sprintf("feature-%d", idx+1)
}

// TestimonialID returns the positional id for the zero-based position.
func TestimonialID(idx int) string {
	return fmt.Sprintf("testimonial-%d", idx+1)
}

type Hero struct {
	Headline string `json:"headline"`
	Subhead  string `json:"subhead"`
	ImageURL string `json:"imageUrl"`
}

type About struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Avatar  string `json:"avatar"`
}

// GeneratedContent is the fixed output schema of a generation. A value produced
// by this module is never partially populated.
type GeneratedContent struct {
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Features     []Feature     `json:"features"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Validate checks the full schema: exact sequence lengths, ids unique within
// each sequence, and every string field non-empty. All violations are reported.
func (c *GeneratedContent) Validate() error {
	var errs []error

	required := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%s is empty", field))
		}
	}

	required("hero.headline", c.Hero.Headline)
	required("hero.subhead", c.Hero.Subhead)
	required("hero.imageUrl", c.Hero.ImageURL)
	required("about.title", c.About.Title)
	required("about.content", c.About.Content)

	if len(c.Features) != FeatureCount {
		errs = append(errs, fmt.Errorf("features: got %d entries, want %d", len(c.Features), FeatureCount))
	}
	seen := make(map[string]bool, len(c.Features))
	for i, f := range c.Features {
		prefix := fmt.Sprintf("features[%d]", i)
		required(prefix+".id", f.ID)
		required(prefix+".title", f.Title)
		required(prefix+".description", f.Description)
		required(prefix+".icon", f.Icon)
		if seen[f.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, f.ID))
		}
		seen[f.ID] = true
	}

	if len(c.Testimonials) != TestimonialCount {
		errs = append(errs, fmt.Errorf("testimonials: got %d entries, want %d", len(c.Testimonials), TestimonialCount))
	}
	seen = make(map[string]bool, len(c.Testimonials))
	for i, t := range c.Testimonials {
		prefix := fmt.Sprintf("testimonials[%d]", i)
		required(prefix+".id", t.ID)
		required(prefix+".name", t.Name)
		required(prefix+".role", t.Role)
		required(prefix+".company", t.Company)
		required(prefix+".quote", t.Quote)
		required(prefix+".avatar", t.Avatar)
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, t.ID))
		}
		seen[t.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}
