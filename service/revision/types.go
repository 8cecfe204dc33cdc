package revision

import (
	"github.com/thirukguru/pid/model"
	"go.uber.org/zap"
)

type service struct {
	logger *zap.Logger
}

// Service is the interface for decoding board revision codes.
type Service interface {
	Decode(code string) model.PlatformIdentity
	DecodeInfo(info *model.InfoMap) model.PlatformIdentity
}
