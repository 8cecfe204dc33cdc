package model

import "encoding/xml"

// NoRevisionMessage is reported by the structured platform views when cpu
// info has no Revision field.
const NoRevisionMessage = "No revision present in cpu info, cannot determine pi model"

// PlatformReportJSON is the JSON shape of the platform view.
// Version and ModelRevision are numbers when the catalog value is numeric.
type PlatformReportJSON struct {
	Version       any    `json:"piVersion"`
	Model         string `json:"piModel"`
	ModelRevision any    `json:"piModelRevision"`
	Memory        string `json:"piMemory"`
	Notes         string `json:"notes"`
}

// PlatformReportYAML is the YAML shape of the platform view.
type PlatformReportYAML struct {
	Version       string `yaml:"piVersion"`
	Model         string `yaml:"piModel"`
	ModelRevision string `yaml:"piModelRevision"`
	Memory        string `yaml:"piMemory"`
	Notes         string `yaml:"notes"`
}

// PlatformReportXML is the XML shape of the platform view.
type PlatformReportXML struct {
	XMLName  xml.Name `xml:"piplatform"`
	Version  string   `xml:"version"`
	Model    string   `xml:"model"`
	Revision string   `xml:"revision"`
	Memory   string   `xml:"memory"`
	Notes    string   `xml:"notes"`
}

// ErrorReport is emitted instead of a platform view when it cannot be built.
type ErrorReport struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"piplatform"`
	Error   string   `json:"error" yaml:"error" xml:"error"`
}
