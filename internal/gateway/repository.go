package gateway

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownRuleType    = errors.New("unknown rule type")
	ErrUnknownPaymentType = errors.New("unknown payment type")
	ErrMalformedFile      = errors.New("malformed input file")
)

// FileRepository implements the usecase repositories for local YAML and CSV files.
// Files are only read.
type FileRepository struct {
	logger zerolog.Logger
}

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithLogger logs a debug event for every file loaded.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *FileRepository) {
		r.logger = logger
	}
}

// NewFileRepository creates a new repository instance.
func NewFileRepository(opts ...Option) *FileRepository {
	r := &FileRepository{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func readYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedFile, path, err)
	}
	return nil
}
