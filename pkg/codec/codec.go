// Package codec declares the Codec plug-in family. No implementation is
// shipped; All returns an empty slice unless a program links one in.
package codec

import "github.com/arthur-debert/linktime/pkg/registry"

// Codec converts values to and from bytes.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// All returns every registered codec.
func All() []Codec {
	return registry.Plugins[Codec]()
}

// Lookup returns the registered codec with the given name.
func Lookup(name string) (Codec, bool) {
	for _, c := range All() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
