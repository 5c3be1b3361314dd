// Package types contains common interfaces shared across the module packages.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Redact replaces the password part of the user info with "xxxxx".
	Redact bool `json:"redact,omitempty"`
}

type ValidFlag interface {
	IsValid() bool
}

type Cloneable[T any] interface {
	Clone() T
}
