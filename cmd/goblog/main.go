package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rama5789/goblog"
	"github.com/rama5789/goblog/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: goblog new <project-name>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("goblog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// runServe starts the blog server. All site branding comes from environment
// variables.
func runServe() error {
	cfg := goblog.SiteConfig{
		Name:             goblog.EnvOr("SITE_NAME", "Blog"),
		URL:              goblog.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:      os.Getenv("SITE_DESCRIPTION"),
		Author:           os.Getenv("SITE_AUTHOR"),
		Addr:             goblog.EnvOr("ADDR", ":3000"),
		ContentDir:       goblog.EnvOr("CONTENT_DIR", "content"),
		AnalyticsEnabled: os.Getenv("ANALYTICS_ENABLED") == "true",
	}

	app := goblog.New(cfg, views.Default(cfg))
	defer app.Close()
	return app.Start()
}

func printUsage() {
	fmt.Println(`goblog - a markdown-file blog engine built with Go, Echo, and templ

Usage:
  goblog <command> [arguments]

Commands:
  serve         Serve the content directory as a blog
  new <name>    Create a new goblog site
  version       Print the goblog version
  help          Show this help message

Examples:
  goblog serve
  goblog new myblog
  goblog new github.com/user/myblog`)
}
