package generation

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/pagegen/internal/landing"
)

var cannedFeatures = [landing.FeatureCount]struct{ title, description string }{
	{"Lightning Fast", "Built for speed and performance that scales with your business."},
	{"Secure & Reliable", "Enterprise-grade security to keep your data safe."},
	{"Rapid Growth", "Tools designed to accelerate your business growth."},
	{"Premium Quality", "Top-tier solutions that exceed expectations."},
}

var cannedTestimonials = [landing.TestimonialCount]struct{ name, role, company, quote string }{
	{"Sarah Johnson", "CEO", "TechCorp Inc", "This solution transformed our business operations and boosted productivity by 200%."},
	{"Michael Chen", "Product Manager", "InnovateNow", "The best investment we made this year. Our team loves using it every day."},
	{"Emily Rodriguez", "Founder", "StartupHub", "Incredibly intuitive and powerful. Exactly what we needed to scale our business."},
}

// Fallback synthesizes complete content from the form alone. It is pure and
// deterministic: equal inputs always yield equal content.
func Fallback(attrs landing.FormAttributes) landing.GeneratedContent {
	a := attrs.WithDefaults()

	return landing.GeneratedContent{
		Hero: landing.Hero{
			Headline: fmt.Sprintf("Transform Your %s with %s", a.Industry, a.ProductName),
			Subhead:  fmt.Sprintf("%s tools designed for %s.", toneQualifier(a.Tone), a.TargetAudience),
			ImageURL: landing.HeroImageURL,
		},
		About: landing.About{
			Title: "About " + a.ProductName,
			Content: fmt.Sprintf(
				"We're revolutionizing the %s industry with %s. Our mission is to empower %s with the tools they need to succeed.",
				a.Industry, a.UniqueValue, a.TargetAudience,
			),
		},
		Features:     Features(attrs),
		Testimonials: Testimonials(),
	}
}

// Features builds one feature per supplied key feature when at least four are
// given, otherwise the canned feature library.
func Features(attrs landing.FormAttributes) []landing.Feature {
	features := make([]landing.Feature, landing.FeatureCount)

	if len(attrs.KeyFeatures) >= landing.FeatureCount {
		for i := range features {
			title := strings.TrimSpace(attrs.KeyFeatures[i])
			if title == "" {
				title = fmt.Sprintf("Feature %d", i+1)
			}
			features[i] = landing.Feature{
				ID:          landing.FeatureID(i),
				Title:       title,
				Description: fmt.Sprintf("Experience the power of %s with our advanced platform.", strings.ToLower(title)),
				Icon:        landing.FeatureIcon(i),
			}
		}
		return features
	}

	for i, c := range cannedFeatures {
		features[i] = landing.Feature{
			ID:          landing.FeatureID(i),
			Title:       c.title,
			Description: c.description,
			Icon:        landing.FeatureIcon(i),
		}
	}
	return features
}

// Testimonials returns the canned testimonial library.
func Testimonials() []landing.Testimonial {
	testimonials := make([]landing.Testimonial, landing.TestimonialCount)
	for i, c := range cannedTestimonials {
		testimonials[i] = landing.Testimonial{
			ID:      landing.TestimonialID(i),
			Name:    c.name,
			Role:    c.role,
			Company: c.company,
			Quote:   c.quote,
			Avatar:  landing.TestimonialAvatar(i),
		}
	}
	return testimonials
}

func toneQualifier(tone landing.Tone) string {
	switch tone {
	case landing.ToneProfessional:
		return "Professional-grade"
	case landing.ToneFriendly:
		return "User-friendly"
	default:
		return "Cutting-edge"
	}
}
