package revision

import "github.com/thirukguru/pid/model"

// Entry maps one or more revision codes to a board identity. Several
// manufacturing batches can share a single design revision.
type Entry struct {
	Codes    []string
	Identity model.PlatformIdentity
}

const (
	madeBySony   = "Made in the UK by Sony"
	madeByEmbest = "Made in China by Embest"
)

var catalog = []Entry{
	{Codes: []string{"0002"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "1", ModelMemory: "256MB"}},
	{Codes: []string{"0003"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model B ECN0001", ModelRevision: "1", ModelMemory: "256MB", Notes: "No Fuses, D14 Removed"}},
	{Codes: []string{"0004", "0005", "0006"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "2", ModelMemory: "256MB"}},
	{Codes: []string{"0007", "0008", "0009"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model A", ModelRevision: "1", ModelMemory: "256MB"}},
	{Codes: []string{"000d", "000e", "000f"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "2", ModelMemory: "512MB"}},
	{Codes: []string{"0010", "0013", "900032"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model B+", ModelRevision: "1", ModelMemory: "512MB"}},
	{Codes: []string{"0011"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Compute Module", ModelRevision: "1", ModelMemory: "512MB"}},
	{Codes: []string{"0014"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Compute Module", ModelRevision: "1", ModelMemory: "512MB", Notes: madeByEmbest}},
	{Codes: []string{"0012"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model A+", ModelRevision: "1", ModelMemory: "256MB"}},
	{Codes: []string{"0015"}, Identity: model.PlatformIdentity{Version: "1", ModelName: "Model A+", ModelRevision: "1", ModelMemory: "256MB or 512MB", Notes: madeByEmbest}},
	{Codes: []string{"a01041"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.1", ModelRevision: "1", ModelMemory: "1GB", Notes: madeBySony}},
	{Codes: []string{"a21041"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.1", ModelRevision: "1", ModelMemory: "1GB", Notes: madeByEmbest}},
	{Codes: []string{"a22042"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.2", ModelRevision: "1", ModelMemory: "1GB"}},
	{Codes: []string{"900092"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Zero v1.2", ModelRevision: "1", ModelMemory: "512MB"}},
	{Codes: []string{"900093"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Zero v1.3", ModelRevision: "1", ModelMemory: "512MB"}},
	{Codes: []string{"0x9000C1"}, Identity: model.PlatformIdentity{Version: "2", ModelName: "Zero W", ModelRevision: "1", ModelMemory: "512MB"}},
	{Codes: []string{"a02082"}, Identity: model.PlatformIdentity{Version: "3", ModelName: "Model B", ModelRevision: "1", ModelMemory: "1GB", Notes: madeBySony}},
	{Codes: []string{"a22082"}, Identity: model.PlatformIdentity{Version: "3", ModelName: "Model B", ModelRevision: "1", ModelMemory: "1GB", Notes: madeByEmbest}},
}

// Catalog returns a copy of the known revision table in declaration order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	for i, e := range catalog {
		out[i] = Entry{Codes: append([]string(nil), e.Codes...), Identity: e.Identity}
	}
	return out
}
