package corpus

// Case is one entry of correctness_test_cases.json: a pair of trees in
// bracket notation plus the expected unit-cost edit distance between
// them.
type Case struct {
	TestID           string  `json:"testID"`
	T1               string  `json:"t1"`
	T2               string  `json:"t2"`
	ExpectedDistance float64 `json:"d"`
}

// LargeCase is one entry of large_test_case.json: a pair of trees with
// no ground-truth distance, meant to be fed to a benchmark rather than
// checked for correctness.
type LargeCase struct {
	TestID string `json:"testID"`
	T1     string `json:"t1"`
	T2     string `json:"t2"`
}

// Options configures how Load* parses and validates fixture files.
type Options struct {
	// StrictFields rejects JSON objects carrying fields this package
	// does not recognize, instead of silently ignoring them.
	StrictFields bool
}

// Option is a functional option for Options.
type Option func(*Options)

// WithStrictFields enables json.Decoder's DisallowUnknownFields during
// decoding, catching typos in hand-edited fixture files early.
func WithStrictFields() Option {
	return func(o *Options) {
		o.StrictFields = true
	}
}

// DefaultOptions returns the permissive default: unknown JSON fields
// are ignored rather than rejected.
func DefaultOptions() Options {
	return Options{StrictFields: false}
}
