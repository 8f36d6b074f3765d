// Package server serves the modulation generator over HTTP: an HTML form
// that renders plots and a JSON API.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/cwbudde/algo-modulation/internal/config"
	"github.com/cwbudde/algo-modulation/internal/plotstore"
	"github.com/cwbudde/algo-modulation/internal/webdemo"
	"github.com/cwbudde/algo-modulation/modulation"
)

const (
	apiPrefix = "/api/v1"
	plotsPath = "/plots"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds the engine, the plot store and the render limiter.
type Server struct {
	engine  *webdemo.Engine
	plots   *plotstore.Store
	renders chan struct{}

	plotWidth  int
	plotHeight int
}

// New creates a server from cfg.
func New(cfg *config.Config) (*Server, error) {
	engine, err := webdemo.NewEngine(cfg.Modulation())
	if err != nil {
		return nil, err
	}

	return &Server{
		engine:     engine,
		plots:      plotstore.New(cfg.Plots.Capacity, cfg.Plots.TTL),
		renders:    make(chan struct{}, cfg.MaxConcurrentRenders),
		plotWidth:  cfg.Plots.Width,
		plotHeight: cfg.Plots.Height,
	}, nil
}

// Handler returns the gin router serving all routes.
func (s *Server) Handler() (http.Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.indexHandler)
	r.POST("/", s.generateFormHandler)
	r.GET("/about", s.aboutHandler)
	r.GET("/working", s.workingHandler)
	r.GET(plotsPath+"/:id/:name", s.plotHandler)

	api := r.Group(apiPrefix)
	api.GET("/schemes", s.schemesHandler)
	api.POST("/generate", s.generateAPIHandler)

	return r, nil
}

// requestLogger logs one line per request through glog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		glog.V(1).Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.ClientIP())
	}
}

// acquire waits for a render slot or for ctx to end.
func (s *Server) acquire(ctx context.Context) error {
	select {
	case s.renders <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) release() {
	<-s.renders
}

// generation is a rendered and stored frame.
type generation struct {
	frame  *webdemo.Frame
	plotID string
}

// generate runs req and stores its plots. The returned status is the HTTP
// status to report when err is not nil.
func (s *Server) generate(ctx context.Context, req webdemo.Request) (*generation, int, error) {
	frame, err := s.engine.Run(req)
	if err != nil {
		if errors.Is(err, modulation.ErrUnsupportedScheme) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}

	if err := s.acquire(ctx); err != nil {
		return nil, http.StatusServiceUnavailable, fmt.Errorf("waiting for render slot: %w", err)
	}
	plots, err := frame.Plots(s.plotWidth, s.plotHeight)
	s.release()
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	id := s.plots.Put(plots)
	glog.V(1).Infof("generated %s frame, plots %s", frame.Scheme(), id)

	return &generation{frame: frame, plotID: id}, http.StatusOK, nil
}

func plotURLs(id string) map[string]string {
	urls := make(map[string]string, len(webdemo.PlotNames))
	for _, name := range webdemo.PlotNames {
		urls[name] = plotURL(id, name)
	}
	return urls
}

func plotURL(id, name string) string {
	return fmt.Sprintf("%s/%s/%s", plotsPath, id, name)
}

func (s *Server) plotHandler(c *gin.Context) {
	data, ok := s.plots.Get(c.Param("id"), c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "plot not found or expired")
		return
	}

	c.Header("Cache-Control", "private, max-age=600")
	c.Data(http.StatusOK, "image/png", data)
}
