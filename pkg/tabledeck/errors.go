package tabledeck

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tabledeck-go/pkg/tabledeck/render"
)

// ErrFileNotFound indicates the input spreadsheet does not exist.
var ErrFileNotFound = errors.New("input file not found")

// ErrEmptyDataset indicates the spreadsheet has no data rows below the header.
var ErrEmptyDataset = errors.New("no data rows")

// ErrFontUnavailable indicates no usable font was found on the host.
var ErrFontUnavailable = render.ErrFontUnavailable

// BuildError represents a failure in one stage of the conversion pipeline.
// Every stage failure is terminal for the whole run.
type BuildError struct {
	Stage string // "read", "render", "assemble"
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("deck build failed during %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage string, err error) *BuildError {
	return &BuildError{Stage: stage, Err: err}
}
