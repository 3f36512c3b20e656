// cmd/web/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/jobtracker/internal/client"
	"github.com/javajoker/jobtracker/internal/config"
	"github.com/javajoker/jobtracker/internal/utils"
	"github.com/javajoker/jobtracker/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	utils.ConfigureLogger(cfg.Log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	api := client.New(cfg.Web.APIBaseURL, cfg.Web.Timeout())

	r, err := web.Initialize(api)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load templates")
	}

	srv := &http.Server{
		Addr:         cfg.WebAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr": srv.Addr,
			"api":  cfg.Web.APIBaseURL,
		}).Info("Starting web client")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down web client...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Web client forced to shutdown")
	}

	logrus.Info("Web client exited")
}
