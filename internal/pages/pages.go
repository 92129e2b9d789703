package pages

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/*
var templateFiles embed.FS

// Page describes one servable HTML page: the content fragment plus the
// metadata the layout needs.
type Page struct {
	Fragment string
	Title    string
	Scripts  []string
}

// pageTable maps normalized URL paths to their page definitions.
var pageTable = map[string]Page{
	"/": {
		Fragment: "templates/index.fragment.html",
		Title:    "Home",
	},
	"/about": {
		Fragment: "templates/about.fragment.html",
		Title:    "About",
	},
	"/countries": {
		Fragment: "templates/countries.fragment.html",
		Title:    "Countries",
		Scripts:  []string{"/scripts/countries.js"},
	},
	"/users": {
		Fragment: "templates/users.fragment.html",
		Title:    "Users",
		Scripts:  []string{"/scripts/users.js"},
	},
}

// Service resolves URL paths to templated HTML pages and embedded static
// assets. Everything the API router does not match falls through to here.
type Service struct {
	logger *zap.Logger
	layout *template.Template
	pages  map[string]Page
}

// NewService creates a new page service. The layout template is parsed once
// at startup.
func NewService(logger *zap.Logger) (*Service, error) {
	layout, err := template.ParseFS(templateFiles, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	return &Service{
		logger: logger,
		layout: layout,
		pages:  pageTable,
	}, nil
}

// SetupRoutes registers the static asset routes and installs the page server
// as the fallback for everything the API does not match.
func (s *Service) SetupRoutes(router *gin.Engine) error {
	for _, prefix := range []string{"styles", "scripts", "components", "assets"} {
		sub, err := fs.Sub(staticFiles, "static/"+prefix)
		if err != nil {
			return err
		}
		router.StaticFS("/"+prefix, http.FS(sub))
	}

	router.NoRoute(s.ServePage)
	return nil
}

// ServePage resolves the request path against the page table and renders the
// layout around the page fragment. Unknown paths get the standalone 404 page.
func (s *Service) ServePage(c *gin.Context) {
	path := normalizePath(c.Request.URL.Path)

	page, ok := s.pages[path]
	if !ok {
		s.serve404(c)
		return
	}

	content, err := fs.ReadFile(templateFiles, page.Fragment)
	if err != nil {
		s.logger.Error("Missing page fragment", zap.String("fragment", page.Fragment), zap.Error(err))
		s.serve404(c)
		return
	}

	var headExtras strings.Builder
	for _, src := range page.Scripts {
		headExtras.WriteString(`<script defer src="` + src + `"></script>` + "\n")
	}

	data := map[string]interface{}{
		"Title":      page.Title,
		"HeadExtras": template.HTML(headExtras.String()),
		"Content":    template.HTML(content),
	}

	var buf bytes.Buffer
	if err := s.layout.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to execute page layout", zap.String("path", path), zap.Error(err))
		c.String(http.StatusInternalServerError, "Template Error: "+err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// serve404 serves the standalone 404 page. It is kept outside the layout so
// it renders even when templating is broken.
func (s *Service) serve404(c *gin.Context) {
	body, err := fs.ReadFile(templateFiles, "templates/404.html")
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", body)
}

// normalizePath maps /about.html and /about/ onto /about.
func normalizePath(path string) string {
	if strings.HasSuffix(path, ".html") {
		path = strings.TrimSuffix(path, ".html")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
