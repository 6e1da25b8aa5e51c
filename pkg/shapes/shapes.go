// Package shapes declares the Shape plug-in family. Implementations live
// in sub-packages and register themselves when imported.
package shapes

import "github.com/arthur-debert/linktime/pkg/registry"

// Shape is the contract every shape plug-in implements.
type Shape interface {
	Name() string
	Description() string

	// Area returns the area of the shape with the given characteristic
	// size (radius, side length, ...).
	Area(size float64) float64
}

// All returns every registered shape.
func All() []Shape {
	return registry.Plugins[Shape]()
}
