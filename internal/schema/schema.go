// Package schema parses and validates the metadata header of experiment documents.
package schema

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vishesh-baghel/portfolio-sub000/internal/apperr"
	"github.com/vishesh-baghel/portfolio-sub000/internal/models"
)

// DefaultAuthor is applied when a document omits the author field.
const DefaultAuthor = "Vishesh Baghel"

// header mirrors the YAML frontmatter of a content file. Unknown keys are
// ignored by the decoder; required fields are enforced by validate.
type header struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	OSSProject  string   `yaml:"ossProject"`
	PRLink      string   `yaml:"prLink"`
}

func (h *header) validate() error {
	valid := make([]interface{}, len(models.Categories))
	for i, c := range models.Categories {
		valid[i] = c
	}
	return validation.ValidateStruct(h,
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.Category, validation.Required, validation.In(valid...)),
	)
}

// Parse splits raw document bytes into validated metadata (with slug injected)
// and the free-form body. A missing or malformed header yields a
// *apperr.ValidationError; the body is still the best-effort remainder.
func Parse(slug string, data []byte) (models.Metadata, string, error) {
	var h header
	rest, err := frontmatter.Parse(bytes.NewReader(data), &h)
	if err != nil {
		return models.Metadata{}, string(data), &apperr.ValidationError{
			Slug: slug,
			Err:  fmt.Errorf("parse frontmatter: %w", err),
		}
	}
	if err := h.validate(); err != nil {
		return models.Metadata{}, string(rest), &apperr.ValidationError{Slug: slug, Err: err}
	}

	author := h.Author
	if author == "" {
		author = DefaultAuthor
	}

	return models.Metadata{
		Slug:        slug,
		Title:       h.Title,
		Description: h.Description,
		Category:    h.Category,
		Tags:        h.Tags,
		Date:        h.Date,
		Author:      author,
		OSSProject:  h.OSSProject,
		PRLink:      h.PRLink,
	}, string(rest), nil
}
