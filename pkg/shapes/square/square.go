package square

import (
	"github.com/arthur-debert/linktime/pkg/registry"
	"github.com/arthur-debert/linktime/pkg/shapes"
)

const SquareShapeName = "square"

// Square is a shape whose size is its side length.
type Square struct {
	evaluated int
}

func (s *Square) Name() string {
	return SquareShapeName
}

func (s *Square) Description() string {
	return "Square, area s^2"
}

// Area returns s^2.
func (s *Square) Area(side float64) float64 {
	s.evaluated++
	return side * side
}

// Evaluations counts calls to Area on this instance.
func (s *Square) Evaluations() int {
	return s.evaluated
}

var _ = registry.Register[shapes.Shape, Square]()
