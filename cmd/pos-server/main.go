package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"coffee-pos/internal/config"
	"coffee-pos/internal/connections/database"
	"coffee-pos/internal/connections/rabbitmq"
	"coffee-pos/internal/logger"
	"coffee-pos/internal/notifier"
	"coffee-pos/internal/repository"
	"coffee-pos/internal/server"
	"coffee-pos/internal/settlement"
)

func main() {
	cfgPath := flag.String("config", "config.yml", "path to YAML config")
	mode := flag.String("mode", "server", "server | notifier")
	port := flag.Int("port", 0, "override http.port from config")
	flag.Parse()

	lg := logger.New("pos-" + *mode)

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		lg.Error("config_load", err, map[string]any{"path": *cfgPath})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rmq, err := rabbitmq.Dial(rabbitmq.Config{
		Host:     cfg.RabbitMQ.Host,
		Port:     cfg.RabbitMQ.Port,
		User:     cfg.RabbitMQ.User,
		Password: cfg.RabbitMQ.Password,
		VHost:    cfg.RabbitMQ.VHost,
	})
	if err != nil {
		lg.Error("rabbitmq_connect", err, nil)
		os.Exit(1)
	}
	defer rmq.Close()
	if err := rmq.DeclareSettlements(); err != nil {
		lg.Error("rabbitmq_declare", err, nil)
		os.Exit(1)
	}

	switch *mode {
	case "server":
		if err := runServer(ctx, cfg, rmq, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notifier":
		lg.Info("service_started", map[string]any{"queue": rabbitmq.SettlementsQueue})
		if err := notifier.Run(ctx, rmq, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be one of: server | notifier")
		os.Exit(2)
	}
}

func runServer(ctx context.Context, cfg *config.Config, rmq *rabbitmq.Client, lg *logger.Logger) error {
	db, err := database.ConnectDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()
	lg.Info("db_connected", map[string]any{
		"host": cfg.Database.Host, "port": cfg.Database.Port, "database": cfg.Database.Database,
	})

	vatRate, err := cfg.POS.VAT()
	if err != nil {
		return err
	}

	store := repository.New(db)
	svc := settlement.NewService(store, rmq, logger.New("settlement"), vatRate)
	handler := server.NewHandler(svc, store, lg)

	addr := ":" + strconv.Itoa(cfg.HTTP.Port)
	lg.Info("service_started", map[string]any{"addr": addr, "vat_rate": cfg.POS.VATRate})
	return server.New(addr, handler.Routes()).Run(ctx)
}
