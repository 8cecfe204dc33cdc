package processor

import (
	"github.com/thirukguru/pid/model"
	"go.uber.org/zap"
)

type service struct {
	logger *zap.Logger
}

// Service is the interface for summarizing processor cores.
type Service interface {
	Summarize(path string) (model.ProcessorSummary, error)
}
