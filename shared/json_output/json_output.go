// Package jsonoutput renders cpu info and platform views as JSON.
package jsonoutput

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/thirukguru/pid/model"
)

// OutputCPUInfoJSON writes every cpu info field as one JSON object, keys in
// first-seen order.
func OutputCPUInfoJSON(w io.Writer, info *model.InfoMap) error {
	return printJSON(w, orderedInfo(info.Entries()))
}

// OutputPlatformJSON writes the decoded platform, or an error object when
// cpu info carries no revision.
func OutputPlatformJSON(w io.Writer, info *model.InfoMap, platform model.PlatformIdentity) error {
	if !info.Has(model.KeyRevision) {
		return printJSON(w, model.ErrorReport{Error: model.NoRevisionMessage})
	}
	return printJSON(w, BuildPlatformReport(platform))
}

// BuildPlatformReport builds the platform JSON report model.
func BuildPlatformReport(platform model.PlatformIdentity) model.PlatformReportJSON {
	return model.PlatformReportJSON{
		Version:       numberOrString(platform.Version),
		Model:         platform.ModelName,
		ModelRevision: numberOrString(platform.ModelRevision),
		Memory:        platform.ModelMemory,
		Notes:         platform.Notes,
	}
}

func numberOrString(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}

type orderedInfo []model.InfoEntry

func (o orderedInfo) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(&buf, e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeString(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
