package corpus

import "errors"

var (
	// ErrEmptyPath is returned when Load* is called with an empty file path.
	ErrEmptyPath = errors.New("corpus: file path is empty")
	// ErrNoCases is returned by LoadCorrectnessCases when the decoded
	// file contains zero entries.
	ErrNoCases = errors.New("corpus: file contains no test cases")
)
