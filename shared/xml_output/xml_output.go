// Package xmloutput renders cpu info and platform views as XML.
package xmloutput

import (
	"encoding/xml"
	"io"
	"strings"
	"unicode"

	"github.com/thirukguru/pid/model"
)

const cpuInfoRoot = "picpuinfo"

// OutputCPUInfoXML writes every cpu info field as a child of <picpuinfo>.
func OutputCPUInfoXML(w io.Writer, info *model.InfoMap) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: cpuInfoRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, e := range info.Entries() {
		el := xml.StartElement{Name: xml.Name{Local: ElementName(e.Key)}}
		if err := enc.EncodeElement(e.Value, el); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// OutputPlatformXML writes the decoded platform as <piplatform>, or an
// <error> child when cpu info carries no revision.
func OutputPlatformXML(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	var v any = model.PlatformReportXML{
		Version:  platform.Version,
		Model:    platform.ModelName,
		Revision: platform.ModelRevision,
		Memory:   platform.ModelMemory,
		Notes:    platform.Notes,
	}
	if !info.Has(model.KeyRevision) {
		v = model.ErrorReport{Error: model.NoRevisionMessage}
	}

	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// ElementName turns a cpu info key into a valid XML element name.
func ElementName(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
			b.WriteRune(r)
		case i == 0 && unicode.IsDigit(r):
			b.WriteRune('_')
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
