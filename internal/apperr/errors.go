// Package apperr defines the error taxonomy shared across the content service.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid metadata")
)

// ValidationError reports a document whose metadata header is missing required
// fields or carries mistyped values. Fatal for single-document loads,
// skip-and-warn during bulk listing.
type ValidationError struct {
	Slug string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("experiment %q: invalid metadata: %v", e.Slug, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets errors.Is match against the ErrValidation sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a slug with no backing file. It carries the full list
// of valid slugs so the caller can self-correct; the message is intended to be
// surfaced to the end user as-is.
type NotFoundError struct {
	Slug      string
	Available []string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "experiment %q not found\n\nAvailable experiments:\n", e.Slug)
	for _, s := range e.Available {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\nUse listExperiments to browse by category.")
	return b.String()
}

// Is lets errors.Is match against the ErrNotFound sentinel.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidCategoryError reports a category outside the enumeration. It is
// rendered as a help message at the tool boundary, never thrown across it.
type InvalidCategoryError struct {
	Category string
	Valid    []string
}

func (e *InvalidCategoryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invalid category %q.\n\nValid categories:\n- all\n", e.Category)
	for _, c := range e.Valid {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	return strings.TrimRight(b.String(), "\n")
}
