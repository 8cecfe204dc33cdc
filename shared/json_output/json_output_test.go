package jsonoutput

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/pid/model"
)

func infoOf(pairs ...string) *model.InfoMap {
	info := model.NewInfoMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		info.Set(pairs[i], pairs[i+1])
	}
	return info
}

func TestOutputCPUInfoJSONKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	info := infoOf("processor", "0", "Hardware", "BCM2835", "Revision", "a02082", "modelname", "ARMv7 <v7l> & co")

	require.NoError(t, OutputCPUInfoJSON(&buf, info))

	want := "{\n" +
		"  \"processor\": \"0\",\n" +
		"  \"Hardware\": \"BCM2835\",\n" +
		"  \"Revision\": \"a02082\",\n" +
		"  \"modelname\": \"ARMv7 <v7l> & co\"\n" +
		"}\n"
	assert.Equal(t, want, buf.String())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 4)
}

func TestOutputCPUInfoJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputCPUInfoJSON(&buf, model.NewInfoMap()))
	assert.Equal(t, "{}\n", buf.String())
}

func TestOutputPlatformJSON(t *testing.T) {
	var buf bytes.Buffer
	platform := model.PlatformIdentity{Version: "3", ModelName: "Model B", ModelRevision: "1", ModelMemory: "1GB", Notes: "Made in the UK by Sony"}

	require.NoError(t, OutputPlatformJSON(&buf, infoOf("Revision", "a02082"), platform))

	want := "{\n" +
		"  \"piVersion\": 3,\n" +
		"  \"piModel\": \"Model B\",\n" +
		"  \"piModelRevision\": 1,\n" +
		"  \"piMemory\": \"1GB\",\n" +
		"  \"notes\": \"Made in the UK by Sony\"\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestOutputPlatformJSONUnknownRevisionStaysString(t *testing.T) {
	report := BuildPlatformReport(model.UnknownPlatform)
	assert.Equal(t, 0, report.Version)
	assert.Equal(t, "Unknown", report.ModelRevision)
}

func TestOutputPlatformJSONWithoutRevision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputPlatformJSON(&buf, infoOf("Hardware", "BCM2835"), model.UnknownPlatform))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{"error": model.NoRevisionMessage}, decoded)
}
