// Package text provides plain text output without styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/linktime/pkg/ui/display"
)

// Renderer writes tab-aligned plain text
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders tables as aligned columns and anything else with %v
func (r *Renderer) RenderResult(result interface{}) error {
	table, ok := result.(display.Table)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}

	if _, err := fmt.Fprintln(r.output, table.Title()); err != nil {
		return err
	}

	rows := table.Rows()
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Header(), "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// RenderError renders an error message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
