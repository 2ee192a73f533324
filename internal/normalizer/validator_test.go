package normalizer

import (
	"errors"
	"testing"
	"time"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(testOptions()); err != nil {
		t.Errorf("Validate returned unexpected error for valid options: %v", err)
	}
}

func TestValidator_Validate_Errors(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "Zero reference date",
			opts:    Options{PosterBaseURL: DefaultPosterBaseURL},
			wantErr: ErrMissingReferenceDate,
		},
		{
			name:    "Missing base URL",
			opts:    Options{Today: time.Now()},
			wantErr: ErrMissingPosterBaseURL,
		},
		{
			name:    "Relative base URL",
			opts:    Options{Today: time.Now(), PosterBaseURL: "/t/p/w500"},
			wantErr: ErrInvalidPosterBaseURL,
		},
		{
			name:    "Unsupported scheme",
			opts:    Options{Today: time.Now(), PosterBaseURL: "ftp://image.tmdb.org/t/p"},
			wantErr: ErrInvalidPosterBaseURL,
		},
		{
			name:    "Unparsable base URL",
			opts:    Options{Today: time.Now(), PosterBaseURL: "http://[::1"},
			wantErr: ErrInvalidPosterBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
