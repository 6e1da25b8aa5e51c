package cli

import (
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/shapes"
	"github.com/arthur-debert/linktime/pkg/ui/display"
)

func newAreaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "area <size>",
		Short: "Compute the area of every registered shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseFloat(args[0], 64)
			if err != nil || size < 0 || math.IsNaN(size) || math.IsInf(size, 0) {
				return errors.Newf(errors.ErrInvalidInput, "size must be a finite, non-negative number, got %q", args[0])
			}

			result := &display.MeasurementsResult{Size: size, Measurements: measure(size)}
			return a.renderer.RenderResult(result)
		},
	}
}

func measure(size float64) []display.Measurement {
	all := shapes.All()
	out := make([]display.Measurement, 0, len(all))
	for _, s := range all {
		out = append(out, display.Measurement{
			Shape: s.Name(),
			Type:  typeName(s),
			Area:  s.Area(size),
		})
	}
	return out
}

func typeName(v interface{}) string {
	return reflect.TypeOf(v).String()
}
