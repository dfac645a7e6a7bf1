package api

import (
	"fmt"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/internal/export"
	"github.com/JaimeStill/pagegen/internal/generation"
	"github.com/JaimeStill/pagegen/internal/state"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Generator *generation.Generator
	Exporter  export.Exporter
	Sharer    export.Sharer
	State     *state.Store
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	exporter, err := export.NewHTMLExporter()
	if err != nil {
		return nil, fmt.Errorf("exporter init failed: %w", err)
	}
	sharer := export.NewSharer()

	generator := generation.New(
		runtime.Completion,
		completion.DefaultOptions(),
		runtime.Logger,
	)

	store := state.New(
		generator,
		runtime.Persist,
		exporter,
		sharer,
		runtime.Logger,
	)

	return &Domain{
		Generator: generator,
		Exporter:  exporter,
		Sharer:    sharer,
		State:     store,
	}, nil
}
