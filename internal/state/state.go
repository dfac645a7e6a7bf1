// Package state owns the single application state container. Every mutation
// goes through an action method on Store; each action is atomic and readers
// always observe a consistent snapshot.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/JaimeStill/pagegen/internal/export"
	"github.com/JaimeStill/pagegen/internal/generation"
	"github.com/JaimeStill/pagegen/internal/landing"
	"github.com/JaimeStill/pagegen/internal/persist"
)

// State is a point-in-time copy of the application state.
type State struct {
	CurrentStep  int                       `json:"currentStep"`
	Form         landing.FormAttributes    `json:"form"`
	IsGenerating bool                      `json:"isGenerating"`
	Content      *landing.GeneratedContent `json:"content"`
	Sections     []landing.PageSection     `json:"sections"`
	Theme        landing.ThemeConfig       `json:"theme"`
	PreviewMode  landing.PreviewMode       `json:"previewMode"`
	Status       generation.Status         `json:"status"`
	Notice       *generation.Notice        `json:"notice,omitempty"`
}

// Generator produces content for a form. *generation.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, attrs landing.FormAttributes) generation.Result
}

// ExportOptions toggles the optional parts of an exported document.
type ExportOptions struct {
	IncludeStyles  bool
	IncludeScripts bool
}

// Store is the owned state container.
type Store struct {
	mu       sync.RWMutex
	state    State
	inFlight int

	// saveMu orders persistence writes so a later save never loses to an
	// earlier one.
	saveMu sync.Mutex

	generator Generator
	persist   persist.Store
	exporter  export.Exporter
	sharer    export.Sharer
	namespace string
	logger    *slog.Logger
}

func initial() State {
	return State{
		Theme:       landing.DefaultTheme(),
		PreviewMode: landing.PreviewDesktop,
		Status:      generation.StatusIdle,
	}
}

func New(
	gen Generator,
	p persist.Store,
	exp export.Exporter,
	sh export.Sharer,
	logger *slog.Logger,
) *Store {
	return &Store{
		state:     initial(),
		generator: gen,
		persist:   p,
		exporter:  exp,
		sharer:    sh,
		namespace: persist.Namespace,
		logger:    logger.With("system", "state"),
	}
}

// Snapshot returns a copy that shares no mutable memory with the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	st := s.state
	st.IsGenerating = s.inFlight > 0
	st.Form.KeyFeatures = slices.Clone(s.state.Form.KeyFeatures)
	st.Sections = slices.Clone(s.state.Sections)
	if s.state.Content != nil {
		st.Content = cloneContent(s.state.Content)
	}
	if s.state.Notice != nil {
		n := *s.state.Notice
		st.Notice = &n
	}
	return st
}

func (s *Store) SetCurrentStep(step int) (State, error) {
	if step < 0 {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentStep = step
	return s.snapshot(), nil
}

// UpdateForm merges overlay into the accumulated form. Fields absent from the
// overlay keep their previous values.
func (s *Store) UpdateForm(ctx context.Context, overlay landing.FormAttributes) State {
	s.mu.Lock()
	s.state.Form.Merge(&overlay)
	st := s.snapshot()
	s.mu.Unlock()

	s.save(ctx)
	return st
}

func (s *Store) UpdateTheme(ctx context.Context, overlay landing.ThemeConfig) (State, error) {
	s.mu.Lock()
	theme := s.state.Theme
	theme.Merge(&overlay)
	if err := theme.Validate(); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	s.state.Theme = theme
	st := s.snapshot()
	s.mu.Unlock()

	s.save(ctx)
	return st, nil
}

func (s *Store) SetPreviewMode(mode string) (State, error) {
	m, err := landing.ParsePreviewMode(mode)
	if err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PreviewMode = m
	return s.snapshot(), nil
}

// Publish replaces the content wholesale and rebuilds the standard sections
// from it. Custom sections are kept.
func (s *Store) Publish(ctx context.Context, content landing.GeneratedContent) (State, error) {
	if err := content.Validate(); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	s.publish(content)
	st := s.snapshot()
	s.mu.Unlock()

	s.save(ctx)
	return st, nil
}

func (s *Store) publish(content landing.GeneratedContent) {
	s.state.Content = cloneContent(&content)
	s.state.Sections = landing.ReplaceStandard(s.state.Sections, landing.DeriveSections(content))
}

// UpdateSections replaces the section list as edited (reordered, toggled).
func (s *Store) UpdateSections(ctx context.Context, sections []landing.PageSection) (State, error) {
	if err := landing.ValidateSections(sections); err != nil {
		return State{}, err
	}

	next := slices.Clone(sections)
	landing.SortSections(next)

	s.mu.Lock()
	s.state.Sections = next
	st := s.snapshot()
	s.mu.Unlock()

	s.save(ctx)
	return st, nil
}

// AddCustomSection appends a non-AI section after every existing one.
func (s *Store) AddCustomSection(ctx context.Context, description string) (landing.PageSection, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return landing.PageSection{}, fmt.Errorf("%w: description required", landing.ErrInvalidSection)
	}

	s.mu.Lock()
	section := landing.NewCustomSection(
		"custom-"+uuid.NewString(),
		description,
		landing.NextCustomOrder(s.state.Sections),
	)
	s.state.Sections = append(s.state.Sections, section)
	landing.SortSections(s.state.Sections)
	s.mu.Unlock()

	s.save(ctx)
	return section, nil
}

// Generate runs one generation against the current form and publishes the
// result. Concurrent calls are not deduplicated; the last to finish wins.
// The completion runs to the end even when ctx is cancelled.
func (s *Store) Generate(ctx context.Context) generation.Result {
	s.mu.Lock()
	s.inFlight++
	s.state.Status = generation.StatusInFlight
	attrs := s.state.Form
	attrs.KeyFeatures = slices.Clone(attrs.KeyFeatures)
	s.mu.Unlock()

	res := s.generator.Generate(context.WithoutCancel(ctx), attrs)

	s.mu.Lock()
	s.inFlight--
	s.publish(res.Content)
	s.state.Status = res.Status
	s.state.Notice = res.Notice
	s.mu.Unlock()

	s.save(ctx)
	return res
}

func (s *Store) Export(opts ExportOptions) (string, error) {
	st := s.Snapshot()
	return s.exporter.Export(export.Input{
		Sections:       st.Sections,
		Theme:          st.Theme,
		Form:           st.Form,
		IncludeStyles:  opts.IncludeStyles,
		IncludeScripts: opts.IncludeScripts,
	})
}

func (s *Store) Share() (string, error) {
	st := s.Snapshot()
	return s.sharer.Share(st.Sections, st.Theme, st.Form)
}

// Hydrate loads the persisted subset. Absent state leaves the store untouched.
func (s *Store) Hydrate(ctx context.Context) error {
	snap, err := s.persist.Load(ctx, s.namespace)
	if errors.Is(err, persist.ErrNotFound) {
		s.logger.Info("no persisted state", "namespace", s.namespace)
		return nil
	}
	if err != nil {
		return fmt.Errorf("hydrate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Form = snap.Form
	s.state.Theme = snap.Theme
	s.state.Sections = snap.Sections
	landing.SortSections(s.state.Sections)
	s.state.Content = snap.Content

	s.logger.Info("state hydrated", "namespace", s.namespace, "sections", len(snap.Sections))
	return nil
}

// Reset restores the initial state and removes persisted data.
func (s *Store) Reset(ctx context.Context) State {
	s.mu.Lock()
	s.state = initial()
	st := s.snapshot()
	s.mu.Unlock()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.persist.Delete(ctx, s.namespace); err != nil && !errors.Is(err, persist.ErrNotFound) {
		s.logger.Error("persisted state delete failed", "namespace", s.namespace, "error", err)
	}
	return st
}

// save writes the persisted subset. Failures are logged and never returned.
func (s *Store) save(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	st := s.snapshot()
	s.mu.RUnlock()

	snap := &persist.Snapshot{
		Form:     st.Form,
		Theme:    st.Theme,
		Sections: st.Sections,
		Content:  st.Content,
	}

	if err := s.persist.Save(context.WithoutCancel(ctx), s.namespace, snap); err != nil {
		s.logger.Error("state persistence failed", "namespace", s.namespace, "error", err)
	}
}

func cloneContent(c *landing.GeneratedContent) *landing.GeneratedContent {
	out := *c
	out.Features = slices.Clone(c.Features)
	out.Testimonials = slices.Clone(c.Testimonials)
	return &out
}
