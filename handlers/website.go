package handlers

import (
	"net/http"
	"northbridge_site_go/config"
	"northbridge_site_go/middleware"
	"northbridge_site_go/models"
	"northbridge_site_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func pageSEO(c echo.Context, page string) *models.SEO {
	cfg := c.Get("config").(*config.Config)
	return GetSEO(page, cfg.AppURL, middleware.GetLocale(c))
}

// HomeHandler renders the landing page
func HomeHandler(c echo.Context) error {
	return render(c, pages.Home(pageSEO(c, "home")))
}

func ApproachHandler(c echo.Context) error {
	return render(c, pages.Approach(pageSEO(c, "approach")))
}

func ContactPageHandler(c echo.Context) error {
	return render(c, pages.Contact(pageSEO(c, "contact")))
}
