package model

// Well-known cpu info keys.
const (
	KeyRevision = "Revision"
	KeyHardware = "Hardware"
	KeySerial   = "Serial"
)

// DefaultRevisionCode is used when cpu info carries no Revision field.
const DefaultRevisionCode = "0"

// PlatformIdentity describes a board decoded from its revision code.
type PlatformIdentity struct {
	Version       string
	ModelName     string
	ModelRevision string
	ModelMemory   string
	Notes         string
}

// UnknownPlatform is the identity reported for unrecognized revision codes.
var UnknownPlatform = PlatformIdentity{
	Version:       "0",
	ModelName:     "Unknown",
	ModelRevision: "Unknown",
	ModelMemory:   "Unknown",
	Notes:         "",
}

// RevisionCode returns the revision code from info, or DefaultRevisionCode.
func RevisionCode(info *InfoMap) string {
	return info.GetOrDefault(KeyRevision, DefaultRevisionCode)
}
