// Package forms holds the form-POST request structures and their server-side
// validation. Each form binds from the request body with gin and returns
// field-level errors as a map consumed by the templates.
package forms

import (
	"net/mail"
	"strings"
)

// Errors maps a form field name to its validation message
type Errors map[string]string

// Add records a validation message for a field, keeping the first message
// when a field fails more than one check
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Has reports whether a field has a validation error
func (e Errors) Has(field string) bool {
	_, exists := e[field]
	return exists
}

// Get returns the validation message for a field
func (e Errors) Get(field string) string {
	return e[field]
}

func validEmail(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}

func normalized(s string) string {
	return strings.TrimSpace(s)
}
