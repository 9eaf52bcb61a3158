package goblog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	a.recordView(c, "/")
	return Render(c, a.Views.Home(posts, a.Config.URL))
}

func (a *App) handlePost(c echo.Context) error {
	id := c.Param("id")
	post, err := a.Store.GetPost(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	a.recordView(c, post.Link)
	return Render(c, a.Views.Post(post, a.Config.URL))
}

// handleAPIHello is the lone JSON API endpoint.
func handleAPIHello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"text": "Hello"})
}

func (a *App) handleStats(c echo.Context) error {
	counts, err := a.analyticsStore.ViewCounts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// recordView stores a page view when analytics is enabled. Failures are
// logged and swallowed; analytics never breaks page delivery.
func (a *App) recordView(c echo.Context, path string) {
	if a.analyticsStore == nil {
		return
	}
	if err := a.analyticsStore.RecordView(path, c.RealIP()); err != nil {
		c.Logger().Warnf("record view: %v", err)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
