// Package toml renders results as TOML. Results must marshal to a table
// (a struct or map), as TOML has no top-level arrays.
package toml

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

type Renderer struct {
	encoder *toml.Encoder
}

func New(output io.Writer) *Renderer {
	enc := toml.NewEncoder(output)
	enc.SetIndentTables(true)
	return &Renderer{encoder: enc}
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
