package flag

import (
	"io"

	"github.com/thirukguru/pid/model"
)

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
	PrintUsage(w io.Writer)
}

// ExitError carries a process exit code other than 1.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
