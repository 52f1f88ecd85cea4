// Package types holds the record types the demos construct and display.
//
// Every record keeps its fields UNEXPORTED. A field can only be set by
// one of the package's constructor functions (NewStudent, ReadStudent,
// NewPerson, NewDate, Person.Copy), and after that it can only be read.
// Go has no constructors, so the convention used here is the usual one:
// a package-level New...() function that returns a ready value.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every record. A *validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New()

// render runs a Display-style function into a string. It backs the
// String methods so String and Display can never drift apart.
func render(display func(w *strings.Builder) error) string {
	var sb strings.Builder
	_ = display(&sb) // strings.Builder never returns a write error
	return sb.String()
}
