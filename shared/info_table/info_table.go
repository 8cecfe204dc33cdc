// Package infotable renders cpu info, platform and catalog views as tables.
package infotable

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/revision"
	"github.com/thirukguru/pid/shared/console"
)

// RenderCPUInfoTable prints every cpu info field, one row per key.
func RenderCPUInfoTable(w io.Writer, info *model.InfoMap) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, e := range info.Entries() {
		t.AppendRow(table.Row{e.Key, e.Value})
	}
	t.Render()
}

// RenderPlatformTable prints the decoded platform, or the missing revision
// message when cpu info carries none.
func RenderPlatformTable(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) {
	t := newWriter(w)
	if !info.Has(model.KeyRevision) {
		t.AppendHeader(table.Row{"Error"})
		t.AppendRow(table.Row{model.NoRevisionMessage})
		t.Render()
		return
	}
	t.AppendHeader(table.Row{"Revision", "Version", "Model", "Model Revision", "Memory", "Notes"})
	t.AppendRow(table.Row{model.RevisionCode(info), platform.Version, platform.ModelName, platform.ModelRevision, platform.ModelMemory, platform.Notes})
	t.Render()
}

// RenderCatalogTable prints every known revision code. Aliased codes share a row.
func RenderCatalogTable(w io.Writer, entries []revision.Entry) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Codes", "Version", "Model", "Model Revision", "Memory", "Notes"})
	for _, e := range entries {
		id := e.Identity
		t.AppendRow(table.Row{strings.Join(e.Codes, ", "), id.Version, id.ModelName, id.ModelRevision, id.ModelMemory, id.Notes})
	}
	t.Render()
}

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if width := console.Width(w); width > 0 {
		t.SetAllowedRowLength(width)
	}
	if colors := console.HeaderColors(w); colors != nil {
		t.Style().Color.Header = colors
	}
	return t
}
