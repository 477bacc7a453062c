package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"erpdesk/internal/devserver"
	"erpdesk/internal/platform/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	srv, err := devserver.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("devserver init failed")
	}

	logrus.WithFields(logrus.Fields{
		"addr":  cfg.Addr,
		"admin": cfg.SeedAdminEmail,
	}).Info("dev backend listening")
	if err := http.ListenAndServe(cfg.Addr, srv.Router); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}
