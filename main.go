package main

import (
	"daybook/api"
	"daybook/calendar"
	"daybook/config"
	"daybook/logger"
	"net/http"
	"os"
)

func main() {
	cfg, err := config.Load(os.Getenv("DAYBOOK_CONFIG"))
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "err", err)
	}
	cfg.ApplyEnv(os.Getenv)

	log := logger.New(logger.Config{Level: cfg.LogLevel})
	if cfg.AllowPastDates {
		log.Warn("booking on past dates is enabled")
	}

	cal := calendar.New(
		calendar.WithReporter(calendar.NewLogReporter(log)),
		calendar.WithAllowPastDates(cfg.AllowPastDates),
	)

	service := api.NewAPI(cal, log)
	service.RegisterRoutes()

	log.Info("server starting", "listen", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, service.Handler()); err != nil {
		log.Fatal("listen", "err", err)
	}
}
