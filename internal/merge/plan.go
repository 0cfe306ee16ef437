// file: internal/merge/plan.go

package merge

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type planDocument struct {
	Files    int        `json:"files" yaml:"files"`
	Sections []*Section `json:"sections" yaml:"sections"`
}

// RenderPlan writes sections to w as "json" or "yaml".
func RenderPlan(w io.Writer, sections *Sections, format string) error {
	doc := planDocument{
		Files:    sections.Files(),
		Sections: sections.All(),
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return nil
}
