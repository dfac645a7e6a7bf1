package export

import (
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/JaimeStill/pagegen/internal/landing"
)

//go:embed templates/*.html
var templateFS embed.FS

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// HTMLExporter renders visible sections, in order, into a single
// self-contained document. Every model-sourced string is stripped of markup
// before templating.
type HTMLExporter struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

// NewHTMLExporter parses the embedded templates once so a broken template
// fails at startup.
func NewHTMLExporter() (*HTMLExporter, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse export templates: %w", err)
	}

	return &HTMLExporter{
		tmpl:   tmpl,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

type pageView struct {
	Title          string
	Description    string
	Dark           bool
	BrandColor     template.CSS
	IncludeStyles  bool
	IncludeScripts bool
	Sections       []sectionView
}

type sectionView struct {
	ID           string
	Type         landing.SectionType
	Hero         *landing.Hero
	About        *landing.About
	Features     []landing.Feature
	Testimonials []landing.Testimonial
	Custom       *landing.CustomContent
}

func (e *HTMLExporter) Export(in Input) (string, error) {
	form := in.Form.WithDefaults()

	view := pageView{
		Title:          e.clean(form.ProductName),
		Description:    e.clean(form.UniqueValue),
		Dark:           in.Theme.Mode == landing.ThemeDark,
		BrandColor:     brandColor(in.Theme.BrandColor, form.BrandColor),
		IncludeStyles:  in.IncludeStyles,
		IncludeScripts: in.IncludeScripts,
	}

	sections := append([]landing.PageSection(nil), in.Sections...)
	landing.SortSections(sections)

	for _, s := range sections {
		if !s.IsVisible {
			continue
		}
		sv, ok := e.section(s)
		if !ok {
			continue
		}
		view.Sections = append(view.Sections, sv)
	}

	var sb strings.Builder
	if err := e.tmpl.ExecuteTemplate(&sb, "page.html", view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	return sb.String(), nil
}

// section decodes and cleans a section payload. Payloads that do not match
// their type are skipped.
func (e *HTMLExporter) section(s landing.PageSection) (sectionView, bool) {
	sv := sectionView{ID: e.clean(s.ID), Type: s.Type}

	switch s.Type {
	case landing.SectionHero:
		var h landing.Hero
		if json.Unmarshal(s.Content, &h) != nil {
			return sv, false
		}
		h.Headline, h.Subhead, h.ImageURL = e.clean(h.Headline), e.clean(h.Subhead), safeURL(h.ImageURL)
		sv.Hero = &h
	case landing.SectionAbout:
		var a landing.About
		if json.Unmarshal(s.Content, &a) != nil {
			return sv, false
		}
		a.Title, a.Content = e.clean(a.Title), e.clean(a.Content)
		sv.About = &a
	case landing.SectionFeatures:
		if json.Unmarshal(s.Content, &sv.Features) != nil {
			return sv, false
		}
		for i := range sv.Features {
			f := &sv.Features[i]
			f.Title, f.Description, f.Icon = e.clean(f.Title), e.clean(f.Description), e.clean(f.Icon)
		}
	case landing.SectionTestimonials:
		if json.Unmarshal(s.Content, &sv.Testimonials) != nil {
			return sv, false
		}
		for i := range sv.Testimonials {
			t := &sv.Testimonials[i]
			t.Name, t.Role, t.Company, t.Quote = e.clean(t.Name), e.clean(t.Role), e.clean(t.Company), e.clean(t.Quote)
			t.Avatar = safeURL(t.Avatar)
		}
	case landing.SectionCustom:
		var c landing.CustomContent
		if json.Unmarshal(s.Content, &c) != nil {
			return sv, false
		}
		c.Title, c.Content = e.clean(c.Title), e.clean(c.Content)
		sv.Custom = &c
	default:
		return sv, false
	}

	return sv, true
}

// clean strips all markup. The result is unescaped because html/template
// escapes again on output.
func (e *HTMLExporter) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(e.policy.Sanitize(s)))
}

func safeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.String()
}

func brandColor(candidates ...string) template.CSS {
	for _, c := range candidates {
		if hexColor.MatchString(c) {
			return template.CSS(c)
		}
	}
	return template.CSS(landing.DefaultBrandColor)
}
