// Package display holds the result types the CLI hands to renderers.
package display

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/linktime/pkg/registry"
)

// Table is implemented by results that the text and terminal renderers
// lay out as a table.
type Table interface {
	Title() string
	Header() []string
	Rows() [][]string
}

// FamiliesResult lists registered plug-in families.
type FamiliesResult struct {
	Families []registry.FamilyInfo `json:"families" yaml:"families" toml:"families"`
}

func (r *FamiliesResult) Title() string {
	return fmt.Sprintf("%d plug-in %s", len(r.Families), plural(len(r.Families), "family", "families"))
}

func (r *FamiliesResult) Header() []string {
	return []string{"FAMILY", "TYPE", "NAME", "DESCRIPTION"}
}

func (r *FamiliesResult) Rows() [][]string {
	var rows [][]string
	for _, f := range r.Families {
		if len(f.Plugins) == 0 {
			rows = append(rows, []string{f.Family, "-", "", ""})
			continue
		}
		for _, p := range f.Plugins {
			rows = append(rows, []string{f.Family, p.Type, p.Name, p.Description})
		}
	}
	return rows
}

// Measurement is the area one shape plug-in computed.
type Measurement struct {
	Shape string  `json:"shape" yaml:"shape" toml:"shape"`
	Type  string  `json:"type" yaml:"type" toml:"type"`
	Area  float64 `json:"area" yaml:"area" toml:"area"`
}

// MeasurementsResult is the output of evaluating every shape at one size.
type MeasurementsResult struct {
	Size         float64       `json:"size" yaml:"size" toml:"size"`
	Measurements []Measurement `json:"measurements" yaml:"measurements" toml:"measurements"`
}

func (r *MeasurementsResult) Title() string {
	return fmt.Sprintf("Areas at size %s", formatFloat(r.Size))
}

func (r *MeasurementsResult) Header() []string {
	return []string{"SHAPE", "TYPE", "AREA"}
}

func (r *MeasurementsResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		rows = append(rows, []string{m.Shape, m.Type, formatFloat(m.Area)})
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
