package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/cwbudde/algo-modulation/internal/webdemo"
	"github.com/cwbudde/algo-modulation/modulation"
	"github.com/cwbudde/algo-modulation/stats/frequency"
	timestats "github.com/cwbudde/algo-modulation/stats/time"
)

type paramsResponse struct {
	MessageFrequency float64 `json:"messageFrequency"`
	MessageAmplitude float64 `json:"messageAmplitude"`
	CarrierFrequency float64 `json:"carrierFrequency"`
	CarrierAmplitude float64 `json:"carrierAmplitude"`
	MessageWaveform  string  `json:"messageWaveform"`
	CarrierWaveform  string  `json:"carrierWaveform"`
}

type generateResponse struct {
	Scheme modulation.Scheme `json:"scheme"`
	Params paramsResponse    `json:"params"`
	Index  modulation.Index  `json:"index"`
	Bits   string            `json:"bits,omitempty"`

	Time      []float64          `json:"time"`
	Message   modulation.Message `json:"message"`
	Carrier   []float64          `json:"carrier"`
	Modulated []float64          `json:"modulated"`

	MessageStats   timestats.Stats `json:"messageStats"`
	ModulatedStats timestats.Stats `json:"modulatedStats"`
	SpectralStats  frequency.Stats `json:"spectralStats"`
	PeakFrequency  float64         `json:"peakFrequency"`

	Plots map[string]string `json:"plots"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) schemesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, webdemo.Schemes())
}

func (s *Server) generateAPIHandler(c *gin.Context) {
	var req webdemo.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		glog.Warningf("rejected API request: %s", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	gen, status, err := s.generate(c.Request.Context(), req)
	if err != nil {
		glog.Warningf("generate %q failed: %s", req.ModulationType, err)
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	f := gen.frame
	c.JSON(http.StatusOK, generateResponse{
		Scheme: f.Scheme(),
		Params: paramsResponse{
			MessageFrequency: f.Params.MessageFrequency,
			MessageAmplitude: f.Params.MessageAmplitude,
			CarrierFrequency: f.Params.CarrierFrequency,
			CarrierAmplitude: f.Params.CarrierAmplitude,
			MessageWaveform:  f.Params.MessageWaveform.String(),
			CarrierWaveform:  f.Params.CarrierWaveform.String(),
		},
		Index:          f.Index,
		Bits:           modulation.FormatBits(f.Bits),
		Time:           f.Time,
		Message:        f.Message,
		Carrier:        f.Carrier,
		Modulated:      f.Modulated,
		MessageStats:   f.MessageStats,
		ModulatedStats: f.ModulatedStats,
		SpectralStats:  f.SpectralStats,
		PeakFrequency:  f.PeakFrequency,
		Plots:          plotURLs(gen.plotID),
	})
}
