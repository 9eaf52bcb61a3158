package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rama5789/goblog"
)

var site = goblog.SiteConfig{
	Name:        "Test Blog",
	URL:         "http://localhost:3000",
	Description: "A blog for tests",
	Author:      "Jane Doe",
}

func TestHome(t *testing.T) {
	posts := []goblog.PostMeta{
		{ID: "b", Title: "Second <Post>", Date: "2021-06-01", Link: "/posts/b/"},
		{ID: "a", Title: "First", Date: "2020-01-01", Link: "/posts/a/"},
	}
	var buf bytes.Buffer
	if err := Home(site, posts).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "Test Blog") {
		t.Error("home should contain the site name")
	}
	if !strings.Contains(got, "Second &lt;Post&gt;") {
		t.Error("post titles must be HTML-escaped")
	}
	if !strings.Contains(got, `href="/posts/a/"`) {
		t.Error("home should link to each post")
	}
	if strings.Index(got, "Second") > strings.Index(got, "First") {
		t.Error("posts must render in the order given")
	}
}

func TestPostPage(t *testing.T) {
	post := goblog.Post{
		PostMeta: goblog.PostMeta{ID: "a", Title: "Hello & Welcome", Date: "2021-01-02", Link: "/posts/a/"},
		HTML:     "<h1 id=\"hi\">Hi</h1><p>body</p>",
	}
	var buf bytes.Buffer
	if err := PostPage(site, post).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "Hello &amp; Welcome") {
		t.Error("post title must be HTML-escaped")
	}
	if !strings.Contains(got, "<h1 id=\"hi\">Hi</h1>") {
		t.Error("pre-rendered body HTML must pass through unescaped")
	}
	if !strings.Contains(got, "2021-01-02") {
		t.Error("post page should show the date")
	}
}

func TestErrorPages(t *testing.T) {
	var buf bytes.Buffer
	if err := NotFound().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "404") {
		t.Error("NotFound should mention 404")
	}

	buf.Reset()
	if err := ServerError().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "500") {
		t.Error("ServerError should mention 500")
	}
}

func TestDefaultWiresAllViews(t *testing.T) {
	funcs := Default(site)
	if funcs.Home == nil || funcs.Post == nil || funcs.NotFound == nil || funcs.ServerError == nil {
		t.Fatal("Default must populate every view")
	}
	var buf bytes.Buffer
	cmp := funcs.Home([]goblog.PostMeta{{ID: "a", Title: "T", Date: "2020-01-01", Link: "/posts/a/"}}, site.URL)
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "T") {
		t.Error("Default home should render post titles")
	}
}
