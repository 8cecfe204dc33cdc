package yamloutput

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/pid/model"
	"gopkg.in/yaml.v3"
)

func TestOutputCPUInfoYAMLKeepsOrder(t *testing.T) {
	info := model.NewInfoMap()
	info.Set("processor", "3")
	info.Set("Hardware", "BCM2835")
	info.Set("Revision", "a02082")

	var buf bytes.Buffer
	require.NoError(t, OutputCPUInfoYAML(&buf, info))

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &node))
	require.Len(t, node.Content, 1)
	mapping := node.Content[0]
	require.Len(t, mapping.Content, 6)
	assert.Equal(t, "processor", mapping.Content[0].Value)
	assert.Equal(t, "3", mapping.Content[1].Value)
	assert.Equal(t, "Hardware", mapping.Content[2].Value)
	assert.Equal(t, "Revision", mapping.Content[4].Value)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3", decoded["processor"])
}

func TestOutputPlatformYAML(t *testing.T) {
	info := model.NewInfoMap()
	info.Set("Revision", "0015")
	platform := model.PlatformIdentity{Version: "1", ModelName: "Model A+", ModelRevision: "1", ModelMemory: "256MB or 512MB", Notes: "Made in China by Embest"}

	var buf bytes.Buffer
	require.NoError(t, OutputPlatformYAML(&buf, info, platform))

	var decoded model.PlatformReportYAML
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, model.PlatformReportYAML{Version: "1", Model: "Model A+", ModelRevision: "1", Memory: "256MB or 512MB", Notes: "Made in China by Embest"}, decoded)
}

func TestOutputPlatformYAMLWithoutRevision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputPlatformYAML(&buf, model.NewInfoMap(), model.UnknownPlatform))
	assert.Equal(t, "error: "+model.NoRevisionMessage+"\n", buf.String())
}
