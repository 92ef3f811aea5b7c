// Package types contains common types used across the rfc3986 packages.
package types

import "io"

type ContextKey string

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string.
	Render() string
	// RenderTo renders the type to a writer.
	RenderTo(w io.Writer) (int, error)
}

type Validatable interface {
	Validate() error
}
