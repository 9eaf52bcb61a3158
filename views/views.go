// Package views provides the default templ components for a goblog site.
// Sites that want their own look supply a goblog.ViewFuncs instead.
package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/rama5789/goblog"
	"github.com/rama5789/goblog/markdown"
)

// Default returns the stock view set for the given site config.
func Default(site goblog.SiteConfig) goblog.ViewFuncs {
	return goblog.ViewFuncs{
		Home: func(posts []goblog.PostMeta, siteURL string) templ.Component {
			return Home(site, posts)
		},
		Post: func(post goblog.Post, siteURL string) templ.Component {
			return PostPage(site, post)
		},
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// layout wraps page content in the shared document chrome.
func layout(site goblog.SiteConfig, title string, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>"); err != nil {
			return err
		}
		io.WriteString(w, "<title>"+html.EscapeString(title)+"</title>")
		if site.Description != "" {
			io.WriteString(w, "<meta name=\"description\" content=\""+html.EscapeString(site.Description)+"\"/>")
		}
		io.WriteString(w, "<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\"/>")
		io.WriteString(w, "<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
		if jsonLD != "" {
			io.WriteString(w, "<script type=\"application/ld+json\">"+jsonLD+"</script>")
		}
		io.WriteString(w, "</head><body><header><a href=\"/\" class=\"site-name\">"+html.EscapeString(site.Name)+"</a></header><main>")
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main><footer><p>"+html.EscapeString(site.Name)+"</p></footer></body></html>")
		return err
	})
}

// Home renders the index page: site intro plus the date-sorted post list.
func Home(site goblog.SiteConfig, posts []goblog.PostMeta) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if site.Author != "" {
			io.WriteString(w, "<section class=\"intro\"><h1>"+html.EscapeString(site.Author)+"</h1>")
			if site.Description != "" {
				io.WriteString(w, "<p>"+html.EscapeString(site.Description)+"</p>")
			}
			io.WriteString(w, "</section>")
		}
		io.WriteString(w, "<section class=\"posts\"><h2>Blog</h2><ul>")
		for _, p := range posts {
			io.WriteString(w, "<li><a href=\""+p.Link+"\">"+html.EscapeString(p.Title)+"</a><br/><small>"+html.EscapeString(p.Date)+"</small></li>")
		}
		_, err := io.WriteString(w, "</ul></section>")
		return err
	})
	return layout(site, site.Name, goblog.WebsiteJsonLD(site), body)
}

// PostPage renders a single post. The post body is engine-rendered HTML and
// is written through unescaped.
func PostPage(site goblog.SiteConfig, post goblog.Post) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<article><h1>"+html.EscapeString(post.Title)+"</h1>")
		io.WriteString(w, "<div class=\"post-date\"><small>"+html.EscapeString(post.Date)+"</small></div>")
		if err := markdown.HTML(post.HTML).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, "</article>")
		_, err := io.WriteString(w, "<p><a href=\"/\">&larr; Back to home</a></p>")
		return err
	})
	return layout(site, post.Title+" | "+site.Name, goblog.BlogPostingJsonLD(post.PostMeta, site), body)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/><title>Not Found</title></head><body><main><h1>404</h1><p>This page could not be found.</p><p><a href=\"/\">&larr; Back to home</a></p></main></body></html>")
		return err
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/><title>Server Error</title></head><body><main><h1>500</h1><p>Something went wrong.</p><p><a href=\"/\">&larr; Back to home</a></p></main></body></html>")
		return err
	})
}
