// Command modserver serves the modulation generator web interface and
// JSON API.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/cwbudde/algo-modulation/internal/config"
	"github.com/cwbudde/algo-modulation/internal/server"
)

var (
	configFile = flag.String("config", "", "Path of the YAML configuration file. Built-in defaults are used when empty.")
	listen     = flag.String("listen", "", "Address to listen on; overrides the configuration file.")
	debug      = flag.Bool("debug", false, "Run gin in debug mode.")
)

func main() {
	// Set defaults for glog flags. Can be overridden via cmdline.
	flag.Set("logtostderr", "true")
	flag.Set("v", "1")
	// Parse flags globally.
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			glog.Exitf("unable to load config %q: %s", *configFile, err)
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := server.New(cfg)
	if err != nil {
		glog.Exitf("unable to create server: %s", err)
	}
	handler, err := s.Handler()
	if err != nil {
		glog.Exitf("unable to create handler: %s", err)
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			glog.Warningf("shutdown: %s", err)
		}
	}()

	glog.Infof("serving modulation generator on %s", cfg.Listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		glog.Exitf("server failed: %s", err)
	}
	glog.Info("server stopped")
}
