package output

import (
	"errors"
	"io"

	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/revision"
	infotable "github.com/thirukguru/pid/shared/info_table"
	jsonoutput "github.com/thirukguru/pid/shared/json_output"
	xmloutput "github.com/thirukguru/pid/shared/xml_output"
	yamloutput "github.com/thirukguru/pid/shared/yaml_output"
)

// ErrUnknownMode is returned by Render for modes it does not handle.
var ErrUnknownMode = errors.New("unknown output mode")

// Per-field fallbacks printed when a value is absent.
const (
	DefaultHardware  = "Unknown"
	DefaultSerial    = "NotPresent"
	DefaultVersion   = "0"
	DefaultModel     = "Unknown"
	DefaultRevision  = "0"
	DefaultMemory    = "0MB"
	DefaultProcessor = "Unknown"
)

// Renderer defines the interface for drawing each view.
type Renderer interface {
	OutputCPUInfoJSON(w io.Writer, info *model.InfoMap) error
	OutputCPUInfoXML(w io.Writer, info *model.InfoMap) error
	OutputCPUInfoYAML(w io.Writer, info *model.InfoMap) error
	DrawCPUInfoTable(w io.Writer, info *model.InfoMap)
	OutputPlatformJSON(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error
	OutputPlatformXML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error
	OutputPlatformYAML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error
	DrawPlatformTable(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity)
	DrawCatalogTable(w io.Writer, entries []revision.Entry)
}

type realRenderer struct{}

func (r *realRenderer) OutputCPUInfoJSON(w io.Writer, info *model.InfoMap) error {
	return jsonoutput.OutputCPUInfoJSON(w, info)
}

func (r *realRenderer) OutputCPUInfoXML(w io.Writer, info *model.InfoMap) error {
	return xmloutput.OutputCPUInfoXML(w, info)
}

func (r *realRenderer) OutputCPUInfoYAML(w io.Writer, info *model.InfoMap) error {
	return yamloutput.OutputCPUInfoYAML(w, info)
}

func (r *realRenderer) DrawCPUInfoTable(w io.Writer, info *model.InfoMap) {
	infotable.RenderCPUInfoTable(w, info)
}

func (r *realRenderer) OutputPlatformJSON(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	return jsonoutput.OutputPlatformJSON(w, info, platform)
}

func (r *realRenderer) OutputPlatformXML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	return xmloutput.OutputPlatformXML(w, info, platform)
}

func (r *realRenderer) OutputPlatformYAML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	return yamloutput.OutputPlatformYAML(w, info, platform)
}

func (r *realRenderer) DrawPlatformTable(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) {
	infotable.RenderPlatformTable(w, info, platform)
}

func (r *realRenderer) DrawCatalogTable(w io.Writer, entries []revision.Entry) {
	infotable.RenderCatalogTable(w, entries)
}

// service is the internal implementation
type service struct {
	w        io.Writer
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	Render(mode model.Mode, input model.RenderInput) error
}
