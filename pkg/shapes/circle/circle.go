package circle

import (
	"math"

	"github.com/arthur-debert/linktime/pkg/registry"
	"github.com/arthur-debert/linktime/pkg/shapes"
)

const CircleShapeName = "circle"

// Circle is a shape whose size is its radius.
type Circle struct {
	evaluated int
}

// Name returns the unique name of this shape
func (c *Circle) Name() string {
	return CircleShapeName
}

// Description returns a human-readable description of the shape
func (c *Circle) Description() string {
	return "Circle, area pi*r^2"
}

// Area returns pi*r^2.
func (c *Circle) Area(radius float64) float64 {
	c.evaluated++
	return math.Pi * radius * radius
}

// Evaluations counts calls to Area on this instance.
func (c *Circle) Evaluations() int {
	return c.evaluated
}

func init() {
	registry.Register[shapes.Shape, Circle]()
}
