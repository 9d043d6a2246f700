// Package model holds the row shapes read from and written to the
// LightBnB store, together with the payloads accepted at the HTTP boundary.
//
// Structs here carry no behavior beyond input validation. The store owns
// every invariant (foreign keys, unique emails); this package only
// describes what crosses the wire.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload.
var validate = newValidator()

// newValidator reports fields by their wire name (json, query or param
// tag) so field errors match what the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}
