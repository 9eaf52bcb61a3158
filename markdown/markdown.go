// Package markdown parses front-matter markdown documents and renders their
// bodies to HTML.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Document is a parsed content file: the required front-matter fields, any
// extra fields passed through as-is, and the markdown body without the
// front-matter delimiters.
type Document struct {
	Title string
	Date  string
	Extra map[string]any
	Body  []byte
}

// envelope decodes the YAML front-matter block. The inline map collects
// every key not matched by a named field.
type envelope struct {
	Title string         `yaml:"title"`
	Date  string         `yaml:"date"`
	Extra map[string]any `yaml:",inline"`
}

// dateLayouts are the accepted forms of the date field.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Parse splits a content file into front-matter and body and validates the
// required fields: title must be non-empty and date must be a parseable
// calendar date.
func Parse(source []byte) (Document, error) {
	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return Document{}, fmt.Errorf("parse front-matter: %w", err)
	}
	if env.Title == "" {
		return Document{}, fmt.Errorf("front-matter missing title")
	}
	if env.Date == "" {
		return Document{}, fmt.Errorf("front-matter missing date")
	}
	if !validDate(env.Date) {
		return Document{}, fmt.Errorf("front-matter date %q is not a calendar date", env.Date)
	}
	extra := env.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	return Document{
		Title: env.Title,
		Date:  env.Date,
		Extra: extra,
		Body:  body,
	}, nil
}

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a front-matter date value, trying each accepted layout.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// engine is shared across calls. Goldmark instances are stateless after
// construction, so concurrent Convert calls need no locking and the same
// input always yields the same output.
var engine = goldmark.New(
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithExtensions(
		extension.GFM,
	),
)

// Render converts a markdown body to HTML.
func Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// HTML returns a templ.Component that writes pre-rendered post HTML into a
// template tree.
func HTML(rendered string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, rendered)
		return err
	})
}
