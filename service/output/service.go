// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/revision"
)

// NewService creates a new output service writing to w.
func NewService(w io.Writer) Service {
	return &service{
		w:        w,
		renderer: &realRenderer{},
	}
}

// Supports reports whether mode is a known output mode.
func Supports(mode model.Mode) bool {
	switch mode {
	case model.ModeCPUInfoJSON, model.ModeCPUInfoXML, model.ModeCPUInfoYAML, model.ModeCPUInfoTable,
		model.ModePlatformJSON, model.ModePlatformXML, model.ModePlatformYAML, model.ModePlatformTbl,
		model.ModeCatalog,
		model.ModeHardware, model.ModeSerial, model.ModeVersion, model.ModeModel, model.ModeRevision, model.ModeMemory,
		model.ModeCores, model.ModeProcessor:
		return true
	}
	return false
}

// NeedsProcessor reports whether mode reads the per-core summary.
func NeedsProcessor(mode model.Mode) bool {
	return mode == model.ModeCores || mode == model.ModeProcessor
}

func (s *service) Render(mode model.Mode, input model.RenderInput) error {
	info, platform := input.Info, input.Platform

	switch mode {
	case model.ModeCPUInfoJSON:
		return s.renderer.OutputCPUInfoJSON(s.w, info)
	case model.ModeCPUInfoXML:
		return s.renderer.OutputCPUInfoXML(s.w, info)
	case model.ModeCPUInfoYAML:
		return s.renderer.OutputCPUInfoYAML(s.w, info)
	case model.ModeCPUInfoTable:
		s.renderer.DrawCPUInfoTable(s.w, info)
		return nil
	case model.ModePlatformJSON:
		return s.renderer.OutputPlatformJSON(s.w, info, platform)
	case model.ModePlatformXML:
		return s.renderer.OutputPlatformXML(s.w, info, platform)
	case model.ModePlatformYAML:
		return s.renderer.OutputPlatformYAML(s.w, info, platform)
	case model.ModePlatformTbl:
		s.renderer.DrawPlatformTable(s.w, info, platform)
		return nil
	case model.ModeCatalog:
		s.renderer.DrawCatalogTable(s.w, revision.Catalog())
		return nil
	case model.ModeHardware:
		return s.line(info.GetOrDefault(model.KeyHardware, DefaultHardware))
	case model.ModeSerial:
		return s.line(info.GetOrDefault(model.KeySerial, DefaultSerial))
	case model.ModeVersion:
		return s.line(orDefault(platform.Version, DefaultVersion))
	case model.ModeModel:
		return s.line(orDefault(platform.ModelName, DefaultModel))
	case model.ModeRevision:
		return s.line(orDefault(platform.ModelRevision, DefaultRevision))
	case model.ModeMemory:
		return s.line(orDefault(platform.ModelMemory, DefaultMemory))
	case model.ModeCores:
		if input.Processor == nil {
			return s.line("0")
		}
		return s.line(strconv.Itoa(input.Processor.Cores))
	case model.ModeProcessor:
		if input.Processor == nil {
			return s.line(DefaultProcessor)
		}
		return s.line(orDefault(input.Processor.ModelName, DefaultProcessor))
	}

	return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

func (s *service) line(v string) error {
	_, err := fmt.Fprintln(s.w, v)
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
