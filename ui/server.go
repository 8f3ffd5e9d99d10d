package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"godraft/adapters/archive"
	"godraft/app"
	"godraft/internal/config"

	"github.com/gin-gonic/gin"
)

// Server represents the web server for the contract drafting UI
type Server struct {
	router        *gin.Engine
	cfg           *config.Config
	service       *app.GenerateService
	packager      *archive.Packager
	templates     *template.Template
	embeddedFiles fs.FS
	helpHTML      template.HTML
}

// NewServer creates a web server wired to the generation service
func NewServer(cfg *config.Config, service *app.GenerateService, embeddedFiles fs.FS) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:        gin.Default(),
		cfg:           cfg,
		service:       service,
		packager:      archive.NewPackager(),
		embeddedFiles: embeddedFiles,
	}

	// Parse templates from the embedded filesystem
	templatesFS, err := fs.Sub(embeddedFiles, "ui/templates")
	if err != nil {
		return nil, fmt.Errorf("failed to create templates filesystem: %w", err)
	}
	s.templates, err = template.New("").ParseFS(templatesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s.helpHTML, err = renderHelp(embeddedFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to render usage notes: %w", err)
	}

	s.router.MaxMultipartMemory = cfg.Upload.MaxUploadMB << 20
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/generate", s.handleGenerate)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting godraft UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// handleIndex serves the upload form
func (s *Server) handleIndex(c *gin.Context) {
	data := gin.H{
		"Notes":       s.helpHTML,
		"DateColumns": s.cfg.Generate.DateColumns,
		"IDColumn":    s.cfg.Generate.IDColumn,
	}
	s.renderTemplate(c, "index.html", data)
}

// Template helpers
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
