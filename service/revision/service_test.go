package revision

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/cpuinfo"
)

func TestDecodeCatalog(t *testing.T) {
	tests := []struct {
		code string
		want model.PlatformIdentity
	}{
		{code: "0002", want: model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "1", ModelMemory: "256MB"}},
		{code: "0003", want: model.PlatformIdentity{Version: "1", ModelName: "Model B ECN0001", ModelRevision: "1", ModelMemory: "256MB", Notes: "No Fuses, D14 Removed"}},
		{code: "0008", want: model.PlatformIdentity{Version: "1", ModelName: "Model A", ModelRevision: "1", ModelMemory: "256MB"}},
		{code: "000e", want: model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "2", ModelMemory: "512MB"}},
		{code: "900032", want: model.PlatformIdentity{Version: "1", ModelName: "Model B+", ModelRevision: "1", ModelMemory: "512MB"}},
		{code: "0011", want: model.PlatformIdentity{Version: "1", ModelName: "Compute Module", ModelRevision: "1", ModelMemory: "512MB"}},
		{code: "0014", want: model.PlatformIdentity{Version: "1", ModelName: "Compute Module", ModelRevision: "1", ModelMemory: "512MB", Notes: "Made in China by Embest"}},
		{code: "0012", want: model.PlatformIdentity{Version: "1", ModelName: "Model A+", ModelRevision: "1", ModelMemory: "256MB"}},
		{code: "0015", want: model.PlatformIdentity{Version: "1", ModelName: "Model A+", ModelRevision: "1", ModelMemory: "256MB or 512MB", Notes: "Made in China by Embest"}},
		{code: "a01041", want: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.1", ModelRevision: "1", ModelMemory: "1GB", Notes: "Made in the UK by Sony"}},
		{code: "a21041", want: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.1", ModelRevision: "1", ModelMemory: "1GB", Notes: "Made in China by Embest"}},
		{code: "a22042", want: model.PlatformIdentity{Version: "2", ModelName: "Model B v1.2", ModelRevision: "1", ModelMemory: "1GB"}},
		{code: "900092", want: model.PlatformIdentity{Version: "2", ModelName: "Zero v1.2", ModelRevision: "1", ModelMemory: "512MB"}},
		{code: "900093", want: model.PlatformIdentity{Version: "2", ModelName: "Zero v1.3", ModelRevision: "1", ModelMemory: "512MB"}},
		{code: "0x9000C1", want: model.PlatformIdentity{Version: "2", ModelName: "Zero W", ModelRevision: "1", ModelMemory: "512MB"}},
		{code: "a02082", want: model.PlatformIdentity{Version: "3", ModelName: "Model B", ModelRevision: "1", ModelMemory: "1GB", Notes: "Made in the UK by Sony"}},
		{code: "a22082", want: model.PlatformIdentity{Version: "3", ModelName: "Model B", ModelRevision: "1", ModelMemory: "1GB", Notes: "Made in China by Embest"}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Decode(tt.code)); diff != "" {
				t.Fatalf("Decode(%q) mismatch (-want +got):\n%s", tt.code, diff)
			}
		})
	}
}

func TestDecodeAliases(t *testing.T) {
	want := model.PlatformIdentity{Version: "1", ModelName: "Model B", ModelRevision: "2", ModelMemory: "256MB"}
	for _, code := range []string{"0004", "0005", "0006"} {
		assert.Equal(t, want, Decode(code), code)
	}
	assert.Equal(t, Decode("0010"), Decode("0013"))
	assert.Equal(t, Decode("0013"), Decode("900032"))
	assert.Equal(t, Decode("000d"), Decode("000f"))
}

func TestDecodeUnknownFallsBackToDefaults(t *testing.T) {
	want := model.PlatformIdentity{Version: "0", ModelName: "Unknown", ModelRevision: "Unknown", ModelMemory: "Unknown", Notes: ""}
	for _, code := range []string{"nonexistent-code", "", "0", "A02082", "0x9000c1", " a02082"} {
		got, ok := Lookup(code)
		assert.False(t, ok, code)
		assert.Equal(t, want, got, code)
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	for _, e := range Catalog() {
		for _, code := range e.Codes {
			assert.Equal(t, Decode(code), Decode(code))
		}
	}
	assert.Equal(t, Decode("ffff"), Decode("ffff"))
}

func TestCatalogShape(t *testing.T) {
	entries := Catalog()
	assert.Len(t, entries, 18)

	seen := map[string]bool{}
	codes := 0
	for _, e := range entries {
		assert.NotEmpty(t, e.Identity.Version)
		assert.NotEmpty(t, e.Identity.ModelName)
		assert.NotEmpty(t, e.Identity.ModelRevision)
		assert.NotEmpty(t, e.Identity.ModelMemory)
		for _, c := range e.Codes {
			assert.False(t, seen[c], "duplicate code %s", c)
			seen[c] = true
			codes++
		}
	}
	assert.Equal(t, 26, codes)
}

func TestCatalogReturnsCopy(t *testing.T) {
	entries := Catalog()
	entries[0].Codes[0] = "mutated"
	entries[0].Identity.ModelName = "mutated"

	got, ok := Lookup("0002")
	assert.True(t, ok)
	assert.Equal(t, "Model B", got.ModelName)
}

func TestDecodeInfo(t *testing.T) {
	svc := NewService(nil)

	withRevision := cpuinfo.Parse([]string{"Hardware\t: BCM2835", "Revision   : a02082"})
	assert.Equal(t, model.PlatformIdentity{
		Version:       "3",
		ModelName:     "Model B",
		ModelRevision: "1",
		ModelMemory:   "1GB",
		Notes:         "Made in the UK by Sony",
	}, svc.DecodeInfo(withRevision))

	withoutRevision := cpuinfo.Parse([]string{"Hardware\t: BCM2835", "Revisions are not here"})
	assert.Equal(t, "0", model.RevisionCode(withoutRevision))
	assert.Equal(t, model.UnknownPlatform, svc.DecodeInfo(withoutRevision))
}
