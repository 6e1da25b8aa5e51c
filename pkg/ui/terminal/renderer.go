// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/linktime/pkg/ui/display"
)

var (
	titleColor = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	errorColor = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"}
)

// Renderer draws styled titles with lipgloss and tables with pterm
type Renderer struct {
	output   io.Writer
	title    lipgloss.Style
	errStyle lipgloss.Style
	muted    lipgloss.Style
	plain    bool
}

// New creates a new terminal renderer. noColor strips all styling.
func New(output io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(output)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		output:   output,
		title:    lr.NewStyle().Bold(true).Foreground(titleColor).MarginBottom(1),
		errStyle: lr.NewStyle().Bold(true).Foreground(errorColor),
		muted:    lr.NewStyle().Italic(true).Foreground(mutedColor),
		plain:    noColor,
	}
}

// RenderResult renders tables with a styled title; other values are printed as-is
func (r *Renderer) RenderResult(result interface{}) error {
	table, ok := result.(display.Table)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}

	if _, err := fmt.Fprintln(r.output, r.title.Render(table.Title())); err != nil {
		return err
	}

	rows := table.Rows()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.output, r.muted.Render("(none registered)"))
		return err
	}

	data := pterm.TableData{table.Header()}
	data = append(data, rows...)

	tp := pterm.DefaultTable.WithHasHeader().WithData(data)
	if r.plain {
		tp = tp.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}
	rendered, err := tp.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, rendered)
	return err
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.errStyle.Render("Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
