package goblog

// PostMeta is the parsed front-matter of a single post plus its derived
// identity. Extra carries every front-matter key other than title and date
// through verbatim so templates and other collaborators can consume custom
// fields without the store knowing about them.
type PostMeta struct {
	ID    string
	Title string
	Date  string // ISO-8601 calendar date, e.g. "2021-01-02"
	Extra map[string]any
	Link  string
}

// Summary returns the optional summary front-matter field, if present.
func (m PostMeta) Summary() string {
	s, _ := m.Extra["summary"].(string)
	return s
}

// Post is a fully loaded post: metadata plus the rendered HTML body.
// The raw markdown is not retained past rendering.
type Post struct {
	PostMeta
	HTML string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
