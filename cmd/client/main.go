package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpClient "github.com/solmax/tgshop/internal/client/api"
	"github.com/solmax/tgshop/internal/client/auth"
	"github.com/solmax/tgshop/internal/client/cart"
	"github.com/solmax/tgshop/internal/client/cli"
	"github.com/solmax/tgshop/internal/client/iocli"
	"github.com/solmax/tgshop/internal/client/session"
	"github.com/solmax/tgshop/internal/client/storage/boltdb"
	"github.com/solmax/tgshop/internal/telegram"
	"github.com/solmax/tgshop/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "tgshop-client.db", "Path to local database")
	initData := flag.String("init-data", "", "Telegram Mini App initData (default: TGSHOP_INIT_DATA env)")
	preview := flag.Bool("preview", false, "Show hidden products with a badge (admin preview mode)")
	interval := flag.Duration("interval", 0, "Catalog poll interval (default 15s)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	if *initData == "" {
		*initData = os.Getenv("TGSHOP_INIT_DATA")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Ctrl+C останавливает watch и прерывает зависшие запросы
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	io := iocli.NewStdio()
	apiClient := httpClient.NewClient(*serverURL)
	cartStore := cart.NewStore(boltStorage, logger)
	authService := auth.NewService(apiClient, boltStorage, *initData, logger)

	cfg := session.Config{
		InitData:      *initData,
		PollInterval:  *interval,
		PreviewHidden: *preview,
	}
	if *preview {
		// Публичный каталог не содержит скрытых товаров:
		// предпросмотр читает витрину через админский эндпоинт
		cfg.ProductSource = func(ctx context.Context) ([]api.Product, error) {
			auth, err := authService.Auth(ctx)
			if err != nil {
				return nil, fmt.Errorf("preview mode needs 'admin login' first: %w", err)
			}
			return apiClient.AdminProducts(ctx, auth)
		}
	}

	sess := session.NewController(apiClient, cartStore, printNotifier{io: io}, telegram.NoopBridge{}, logger, cfg)

	c := cli.New(apiClient, authService, sess, io, logger)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printNotifier выводит уведомления витрины в терминал
type printNotifier struct {
	io iocli.IO
}

func (n printNotifier) Notify(message string) {
	n.io.Println(message)
}

func printVersion() {
	fmt.Printf("Tgshop Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
