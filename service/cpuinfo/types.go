package cpuinfo

import (
	"io"

	"github.com/thirukguru/pid/model"
	"go.uber.org/zap"
)

// DefaultPath is the kernel's processor description file.
const DefaultPath = "/proc/cpuinfo"

// PathEnv overrides DefaultPath when no explicit path is given.
const PathEnv = "PID_CPUINFO"

type service struct {
	logger *zap.Logger
}

// Service is the interface for reading cpu info.
type Service interface {
	Load(path string) (*model.InfoMap, error)
	Read(r io.Reader) (*model.InfoMap, error)
	Parse(lines []string) *model.InfoMap
}
