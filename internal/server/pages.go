package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/cwbudde/algo-modulation/internal/webdemo"
	"github.com/cwbudde/algo-modulation/modulation"
)

// page is the data of every HTML template.
type page struct {
	Title   string
	Schemes []webdemo.SchemeInfo

	Request webdemo.Request
	Error   string
	Result  *pageResult

	Samples    int
	SampleRate float64
	Config     modulation.Config
}

type pageResult struct {
	Scheme        string
	Index         string
	Bits          string
	RMS           float64
	Peak          float64
	PeakFrequency float64
	Plots         []string
}

func (s *Server) newPage(title string) page {
	cfg := s.engine.Generator().Config()
	return page{
		Title:      title,
		Schemes:    webdemo.Schemes(),
		Request:    webdemo.DefaultRequest(),
		Samples:    s.engine.Generator().Samples(),
		SampleRate: cfg.Processor.SampleRate,
		Config:     cfg,
	}
}

func (s *Server) indexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.newPage("Signal Generator"))
}

func (s *Server) aboutHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", s.newPage("About"))
}

func (s *Server) workingHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "working.html", s.newPage("How it works"))
}

func (s *Server) generateFormHandler(c *gin.Context) {
	p := s.newPage("Signal Generator")

	var req webdemo.Request
	if err := c.ShouldBind(&req); err != nil {
		glog.Warningf("rejected form: %s", err)
		p.Error = err.Error()
		c.HTML(http.StatusBadRequest, "index.html", p)
		return
	}
	if req.MessageWaveform == "" {
		req.MessageWaveform = p.Request.MessageWaveform
	}
	if req.CarrierWaveform == "" {
		req.CarrierWaveform = p.Request.CarrierWaveform
	}
	p.Request = req

	gen, status, err := s.generate(c.Request.Context(), req)
	if err != nil {
		glog.Warningf("generate %q failed: %s", req.ModulationType, err)
		p.Error = err.Error()
		c.HTML(status, "index.html", p)
		return
	}

	f := gen.frame
	plots := make([]string, 0, len(webdemo.PlotNames))
	for _, name := range webdemo.PlotNames {
		plots = append(plots, plotURL(gen.plotID, name))
	}
	p.Result = &pageResult{
		Scheme:        f.Scheme().String(),
		Index:         f.Index.String(),
		Bits:          modulation.FormatBits(f.Bits),
		RMS:           f.ModulatedStats.RMS,
		Peak:          f.ModulatedStats.Peak,
		PeakFrequency: f.PeakFrequency,
		Plots:         plots,
	}

	c.HTML(http.StatusOK, "index.html", p)
}
