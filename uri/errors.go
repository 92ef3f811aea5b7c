package uri

import (
	"fmt"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// Error is a sentinel error kind.
type Error = errorutil.Error

const (
	// ErrSyntax is the kind of [SyntaxError].
	ErrSyntax Error = "invalid URI syntax"
	// ErrPortRange is the kind of [RangeError].
	ErrPortRange Error = "port out of range"
	// ErrStructure is the kind of [StructuralError].
	ErrStructure Error = "invalid URI structure"
	// ErrHost is returned by the host conversions.
	ErrHost Error = "invalid host"
)

// MaxPort is the upper bound (exclusive) of a port number.
const MaxPort = 100000

// SyntaxError reports a character that stopped the scan of a component
// at a position where the component may not end.
type SyntaxError struct {
	// Component is the name of the component that was being scanned.
	Component string
	// Char is the offending character, 0 at the end of input.
	Char byte
	// Offset is the byte offset of Char.
	Offset int
	Input  string
}

func (e *SyntaxError) Error() string {
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("%s: unexpected end of input in %s at offset %d", ErrSyntax, e.Component, e.Offset)
	}
	return fmt.Sprintf("%s: unexpected character %q in %s at offset %d", ErrSyntax, e.Char, e.Component, e.Offset)
}

func (*SyntaxError) Unwrap() error { return ErrSyntax }

func (*SyntaxError) Grammar() bool { return true }

func (e *SyntaxError) InputOffset() int { return e.Offset }

func newSyntaxError(component, input string, offset int) *SyntaxError {
	e := &SyntaxError{Component: component, Offset: offset, Input: input}
	if offset < len(input) {
		e.Char = input[offset]
	}
	return e
}

// RangeError reports a port number that is not below [MaxPort].
type RangeError struct {
	Port int
	// Offset is the byte offset of the digit that overflowed the port, -1 for constructed values.
	Offset int
}

func (e *RangeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %d", ErrPortRange, e.Port)
	}
	return fmt.Sprintf("%s: %d at offset %d", ErrPortRange, e.Port, e.Offset)
}

func (*RangeError) Unwrap() error { return ErrPortRange }

func (*RangeError) Grammar() bool { return true }

func (e *RangeError) InputOffset() int { return e.Offset }

// StructuralError reports a combination of components that does not form a valid URI.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string { return fmt.Sprintf("%s: %s", ErrStructure, e.Reason) }

func (*StructuralError) Unwrap() error { return ErrStructure }
