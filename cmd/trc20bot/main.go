package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nanakim-star/trc20bot/internal/config"
	"github.com/nanakim-star/trc20bot/internal/http_api"
	"github.com/nanakim-star/trc20bot/internal/notificator"
	"github.com/nanakim-star/trc20bot/internal/relay"
	"github.com/nanakim-star/trc20bot/internal/repository"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "trc20bot",
		Usage: "Relays TRC20 deposit webhooks to Telegram chats and operator callbacks",
		Flags: appFlags(),
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "HTTP listen port"},
		&cli.StringFlag{Name: "database-url", Aliases: []string{"d"}, Usage: "Postgres connection URL"},
		&cli.IntFlag{Name: "db-max-open-conns", Usage: "Maximum open database connections"},
		&cli.StringFlag{Name: "monitored-contract-address", Aliases: []string{"c"}, Usage: "TRC20 token contract to relay deposits for"},
		&cli.StringFlag{Name: "asset-symbol", Usage: "Ticker shown in deposit alerts"},
		&cli.StringFlag{Name: "telegram-api-url", Usage: "Telegram Bot API base URL"},
		&cli.DurationFlag{Name: "notification-timeout", Aliases: []string{"t"}, Usage: "Per-channel notification timeout"},
		&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
	}
}

// loadConfig reads the environment, applies flags that were set and then
// validates the result.
func loadConfig(c *cli.Context) (*config.Config, error) {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override with flags if set
	if c.IsSet("port") {
		cfg.APIPort = c.Int("port")
	}
	if c.IsSet("database-url") {
		cfg.DatabaseURL = c.String("database-url")
	}
	if c.IsSet("db-max-open-conns") {
		cfg.DBMaxOpenConns = c.Int("db-max-open-conns")
	}
	if c.IsSet("monitored-contract-address") {
		cfg.MonitoredContractAddress = c.String("monitored-contract-address")
	}
	if c.IsSet("asset-symbol") {
		cfg.AssetSymbol = c.String("asset-symbol")
	}
	if c.IsSet("telegram-api-url") {
		cfg.TelegramAPIURL = c.String("telegram-api-url")
	}
	if c.IsSet("notification-timeout") {
		cfg.NotificationTimeout = c.Duration("notification-timeout")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize database
	db, err := repository.NewPostgresDB(cfg.DatabaseURL, log, repository.WithMaxOpenConns(cfg.DBMaxOpenConns))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	// Initialize notificator
	notif := notificator.NewNotificator(
		log,
		notificator.NewTelegramNotificator(log, cfg.TelegramAPIURL, cfg.NotificationTimeout),
		notificator.NewCallbackNotificator(log, cfg.NotificationTimeout),
		cfg.NotificationTimeout,
	)

	relayApp := relay.NewRelay(db, notif, log, cfg)
	apiServer := http_api.NewHTTPServer(relayApp, cfg.APIPort, log)

	go apiServer.Start()
	log.Info("trc20bot started",
		"port", cfg.APIPort,
		"contract_address", cfg.MonitoredContractAddress,
		"notification_timeout", cfg.NotificationTimeout.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Received shutdown signal", "signal", sig.String())

	start := time.Now()
	if err := apiServer.Shutdown(); err != nil {
		return err
	}
	log.Info("Shutdown complete", "took", time.Since(start).String())
	return nil
}
