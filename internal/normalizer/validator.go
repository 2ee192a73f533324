package normalizer

import (
	"errors"
	"fmt"
	"net/url"
)

// Validation errors.
var (
	ErrMissingReferenceDate = errors.New("missing reference date")
	ErrMissingPosterBaseURL = errors.New("missing poster base URL")
	ErrInvalidPosterBaseURL = errors.New("poster base URL must be an absolute http(s) URL")
)

// Validator checks the normalizer options before any record is touched.
// Individual records are never rejected.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if the options can produce clean records.
func (v *Validator) Validate(opts Options) error {
	if opts.Today.IsZero() {
		return ErrMissingReferenceDate
	}

	if opts.PosterBaseURL == "" {
		return ErrMissingPosterBaseURL
	}

	u, err := url.Parse(opts.PosterBaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPosterBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPosterBaseURL, opts.PosterBaseURL)
	}

	return nil
}
