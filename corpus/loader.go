package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadCorrectnessCases reads a correctness_test_cases.json-shaped file
// (a JSON array of Case) from path.
func LoadCorrectnessCases(path string, opts ...Option) ([]Case, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}

	var cases []Case
	if err := decode(data, &cases, o); err != nil {
		return nil, fmt.Errorf("corpus: decoding %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	return cases, nil
}

// LoadLargeCases reads a large_test_case.json-shaped file (a JSON
// array of LargeCase) from path.
func LoadLargeCases(path string, opts ...Option) ([]LargeCase, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}

	var cases []LargeCase
	if err := decode(data, &cases, o); err != nil {
		return nil, fmt.Errorf("corpus: decoding %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	return cases, nil
}

func decode(data []byte, v any, o Options) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if o.StrictFields {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}
