// Command worker delivers queued mail when QUEUE_DRIVER=asynq.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"teamhub/internal/config"
	"teamhub/internal/logger"
	"teamhub/internal/mail"
	"teamhub/internal/metrics"
	"teamhub/internal/queue"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "worker: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	defer func() { _ = log.Sync() }()

	var sender mail.Sender = mail.NewLogSender(log)
	if cfg.SMTPEnabled() {
		sender = mail.NewSMTPSender(mail.SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			User:        cfg.SMTPUser,
			Password:    cfg.SMTPPassword,
			FromAddress: cfg.MailFromAddress,
			FromName:    cfg.MailFromName,
		}, log)
	}

	m := metrics.New()
	worker, err := queue.NewWorker(cfg.RedisURI, cfg.QueueWorkers, sender, log, m.ObserveMailDelivery)
	if err != nil {
		log.Fatal("create worker", zap.Error(err))
	}

	if err := worker.Start(); err != nil {
		log.Fatal("start worker", zap.Error(err))
	}
	log.Info("mail worker started", zap.Int("concurrency", cfg.QueueWorkers))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down mail worker")
	worker.Shutdown()
}
