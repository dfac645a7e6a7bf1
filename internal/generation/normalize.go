package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/pagegen/internal/landing"
	"github.com/JaimeStill/pagegen/pkg/formatting"
)

const (
	defaultSubhead            = "Innovative solutions for modern challenges"
	defaultAboutContent       = "We provide cutting-edge solutions tailored to your needs."
	defaultFeatureDescription = "Amazing feature description"
	defaultTestimonialName    = "Customer Name"
	defaultTestimonialRole    = "User"
	defaultTestimonialCompany = "Company"
	defaultTestimonialQuote   = "Great product!"
)

type object map[string]json.RawMessage

// Normalize coerces raw completion text into complete content. Missing,
// empty, or mistyped fields are repaired with defaults and short sequences
// are replaced with synthesized ones. When the text is not a JSON object the
// fallback content is returned together with ErrMalformedResponse.
func Normalize(raw string, attrs landing.FormAttributes) (landing.GeneratedContent, error) {
	content, _, err := normalize(raw, attrs)
	return content, err
}

// normalize also reports the paths of every repaired field.
func normalize(raw string, attrs landing.FormAttributes) (landing.GeneratedContent, []string, error) {
	root, err := formatting.Parse[object](raw)
	if err == nil && root == nil {
		err = errNotObject
	}
	if err != nil {
		return Fallback(attrs), nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	a := attrs.WithDefaults()
	r := &repairer{}

	hero := root.child("hero")
	about := root.child("about")

	content := landing.GeneratedContent{
		Hero: landing.Hero{
			Headline: r.str(hero, "hero.headline", "headline", fmt.Sprintf("Transform Your %s Business", a.Industry)),
			Subhead:  r.str(hero, "hero.subhead", "subhead", defaultSubhead),
			ImageURL: r.str(hero, "hero.imageUrl", "imageUrl", landing.HeroImageURL),
		},
		About: landing.About{
			Title:   r.str(about, "about.title", "title", "About "+a.ProductName),
			Content: r.str(about, "about.content", "content", defaultAboutContent),
		},
		Features:     r.features(root.array("features"), attrs),
		Testimonials: r.testimonials(root.array("testimonials")),
	}

	return content, r.repaired, nil
}

type repairer struct {
	repaired []string
}

func (r *repairer) str(obj object, path, key, def string) string {
	if v := obj.str(key); v != "" {
		return v
	}
	r.repaired = append(r.repaired, path)
	return def
}

func (r *repairer) features(items []json.RawMessage, attrs landing.FormAttributes) []landing.Feature {
	if len(items) < landing.FeatureCount {
		r.repaired = append(r.repaired, "features")
		return Features(attrs)
	}

	features := make([]landing.Feature, landing.FeatureCount)
	ids := uniqueIDs{}
	for i := range features {
		f := decodeObject(items[i])
		path := fmt.Sprintf("features[%d].", i)
		features[i] = landing.Feature{
			ID:          ids.claim(r.str(f, path+"id", "id", landing.FeatureID(i)), landing.FeatureID(i)),
			Title:       r.str(f, path+"title", "title", fmt.Sprintf("Feature %d", i+1)),
			Description: r.str(f, path+"description", "description", defaultFeatureDescription),
			Icon:        r.str(f, path+"icon", "icon", landing.FeatureIcon(i)),
		}
	}
	return features
}

func (r *repairer) testimonials(items []json.RawMessage) []landing.Testimonial {
	if len(items) < landing.TestimonialCount {
		r.repaired = append(r.repaired, "testimonials")
		return Testimonials()
	}

	testimonials := make([]landing.Testimonial, landing.TestimonialCount)
	ids := uniqueIDs{}
	for i := range testimonials {
		t := decodeObject(items[i])
		path := fmt.Sprintf("testimonials[%d].", i)
		testimonials[i] = landing.Testimonial{
			ID:      ids.claim(r.str(t, path+"id", "id", landing.TestimonialID(i)), landing.TestimonialID(i)),
			Name:    r.str(t, path+"name", "name", defaultTestimonialName),
			Role:    r.str(t, path+"role", "role", defaultTestimonialRole),
			Company: r.str(t, path+"company", "company", defaultTestimonialCompany),
			Quote:   r.str(t, path+"quote", "quote", defaultTestimonialQuote),
			Avatar:  r.str(t, path+"avatar", "avatar", landing.TestimonialAvatar(i)),
		}
	}
	return testimonials
}

// uniqueIDs tracks ids already used within one sequence.
type uniqueIDs map[string]bool

// claim returns id when unused, otherwise the positional id suffixed until unique.
func (u uniqueIDs) claim(id, positional string) string {
	if u[id] {
		id = positional
		for n := 2; u[id]; n++ {
			id = fmt.Sprintf("%s-%d", positional, n)
		}
	}
	u[id] = true
	return id
}

func decodeObject(raw json.RawMessage) object {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil
	}
	return o
}

func (o object) child(key string) object {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	return decodeObject(raw)
}

func (o object) array(key string) []json.RawMessage {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// str returns the trimmed-non-empty string member, or "" when the member is
// absent, blank, or not a string.
func (o object) str(key string) string {
	raw, ok := o[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
