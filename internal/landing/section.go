package landing

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// SectionType identifies the schema of a section's content payload.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionAbout        SectionType = "about"
	SectionFeatures     SectionType = "features"
	SectionTestimonials SectionType = "testimonials"
	SectionCustom       SectionType = "custom"
)

// StandardSections lists the derived section types in their fixed render order.
var StandardSections = []SectionType{
	SectionHero,
	SectionAbout,
	SectionFeatures,
	SectionTestimonials,
}

var sectionTitles = map[SectionType]string{
	SectionHero:         "Hero Section",
	SectionAbout:        "About Section",
	SectionFeatures:     "Features Section",
	SectionTestimonials: "Testimonials Section",
}

// Standard reports whether the type is one of the four derived section types.
func (t SectionType) Standard() bool {
	return slices.Contains(StandardSections, t)
}

// Valid reports whether the type is a known section type.
func (t SectionType) Valid() bool {
	return t.Standard() || t == SectionCustom
}

// PageSection is one ordered, independently toggle-able block of the rendered
// page. Content is an opaque payload matching the schema for Type.
type PageSection struct {
	ID        string          `json:"id"`
	Type      SectionType     `json:"type"`
	Title     string          `json:"title"`
	Order     int             `json:"order"`
	Content   json.RawMessage `json:"content"`
	IsVisible bool            `json:"isVisible"`
}

// CustomContent is the payload of a custom section.
type CustomContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DeriveSections projects content into the four standard sections with fixed
// order 0 through 3.
func DeriveSections(content GeneratedContent) []PageSection {
	payloads := map[SectionType]any{
		SectionHero:         content.Hero,
		SectionAbout:        content.About,
		SectionFeatures:     content.Features,
		SectionTestimonials: content.Testimonials,
	}

	sections := make([]PageSection, 0, len(StandardSections))
	for i, t := range StandardSections {
		sections = append(sections, PageSection{
			ID:        string(t),
			Type:      t,
			Title:     sectionTitles[t],
			Order:     i,
			Content:   rawJSON(payloads[t]),
			IsVisible: true,
		})
	}
	return sections
}

// NewCustomSection builds a visible custom section for the given description.
func NewCustomSection(id, description string, order int) PageSection {
	return PageSection{
		ID:    id,
		Type:  SectionCustom,
		Title: description,
		Order: order,
		Content: rawJSON(CustomContent{
			Title:   description,
			Content: fmt.Sprintf(`This is a custom section: "%s". You can edit this content to match your needs.`, description),
		}),
		IsVisible: true,
	}
}

// NextCustomOrder returns the order for a newly appended custom section. Slots
// below the standard section count stay reserved for derived sections.
func NextCustomOrder(sections []PageSection) int {
	next := len(StandardSections)
	for _, s := range sections {
		next = max(next, s.Order+1)
	}
	return next
}

// ReplaceStandard swaps the standard sections of current for derived, keeping
// every custom section untouched. The result is sorted by order.
func ReplaceStandard(current, derived []PageSection) []PageSection {
	out := make([]PageSection, 0, len(derived)+len(current))
	out = append(out, derived...)
	for _, s := range current {
		if s.Type == SectionCustom {
			out = append(out, s)
		}
	}
	SortSections(out)
	return out
}

// SortSections orders sections by Order, keeping the relative position of ties.
func SortSections(sections []PageSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

// ValidateSections checks that every section has a known type and a unique,
// non-empty id.
func ValidateSections(sections []PageSection) error {
	seen := make(map[string]bool, len(sections))
	for i, s := range sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section %d has no id", ErrInvalidSection, i)
		}
		if !s.Type.Valid() {
			return fmt.Errorf("%w: section %s has unknown type %q", ErrInvalidSection, s.ID, s.Type)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section id %s", ErrInvalidSection, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

func rawJSON(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
