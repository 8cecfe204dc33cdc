// Package revision maps Raspberry Pi revision codes to board identities.
package revision

import (
	"github.com/thirukguru/pid/model"
	"go.uber.org/zap"
)

// NewService creates a new revision decoding service. A nil logger disables logging.
func NewService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{logger: logger}
}

func (s *service) Decode(code string) model.PlatformIdentity {
	identity, ok := Lookup(code)
	s.logger.Debug("Decoded revision", zap.String("code", code), zap.Bool("known", ok), zap.String("model", identity.ModelName))
	return identity
}

func (s *service) DecodeInfo(info *model.InfoMap) model.PlatformIdentity {
	return s.Decode(model.RevisionCode(info))
}

// Decode returns the identity for code, or model.UnknownPlatform when the
// code is not in the catalog. Matching is exact and case-sensitive.
func Decode(code string) model.PlatformIdentity {
	identity, _ := Lookup(code)
	return identity
}

// Lookup is Decode that also reports whether code was found.
func Lookup(code string) (model.PlatformIdentity, bool) {
	for _, e := range catalog {
		for _, c := range e.Codes {
			if c == code {
				return e.Identity, true
			}
		}
	}
	return model.UnknownPlatform, false
}
