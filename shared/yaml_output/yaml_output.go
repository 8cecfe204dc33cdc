// Package yamloutput renders cpu info and platform views as YAML.
package yamloutput

import (
	"io"

	"github.com/thirukguru/pid/model"
	"gopkg.in/yaml.v3"
)

// OutputCPUInfoYAML writes every cpu info field as a YAML mapping, keys in
// first-seen order.
func OutputCPUInfoYAML(w io.Writer, info *model.InfoMap) error {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range info.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	return printYAML(w, node)
}

// OutputPlatformYAML writes the decoded platform, or an error mapping when
// cpu info carries no revision.
func OutputPlatformYAML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	if !info.Has(model.KeyRevision) {
		return printYAML(w, model.ErrorReport{Error: model.NoRevisionMessage})
	}
	return printYAML(w, model.PlatformReportYAML{
		Version:       platform.Version,
		Model:         platform.ModelName,
		ModelRevision: platform.ModelRevision,
		Memory:        platform.ModelMemory,
		Notes:         platform.Notes,
	})
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
