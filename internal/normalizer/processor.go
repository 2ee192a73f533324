// Package normalizer maps loosely typed movie records onto the clean movie schema.
package normalizer

import (
	"fmt"
	"time"

	"moviedata/internal/models"
)

// DefaultPosterBaseURL is the image host prefix for poster paths.
const DefaultPosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Options configures a normalization run.
type Options struct {
	// PosterBaseURL is prepended to every non-empty poster path.
	PosterBaseURL string
	// Today is the reference date for the released flag.
	Today time.Time
	// StripMarkup reduces HTML in overviews to plain text.
	StripMarkup bool
}

// Processor handles data processing and transformation.
type Processor struct {
	opts      Options
	validator *Validator
	stats     Stats
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		opts:      opts,
		validator: NewValidator(),
	}
}

// Process transforms raw records into clean movies, one for one and in input order.
// It only fails when the options themselves are unusable.
func (p *Processor) Process(records []models.RawRecord) ([]models.Movie, error) {
	if err := p.validator.Validate(p.opts); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	transformer := NewTransformer(p.opts)

	movies := make([]models.Movie, 0, len(records))
	for i, raw := range records {
		movies = append(movies, transformer.Transform(i, raw))
	}

	p.stats = transformer.Stats()

	return movies, nil
}

// Stats reports how many fields fell back to defaults in the last Process call.
func (p *Processor) Stats() Stats {
	return p.stats
}
