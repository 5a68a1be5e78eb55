package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"samko/internal/config"
	"samko/internal/prices"
	"samko/internal/server"
	"samko/internal/store"
	"samko/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "samko",
	Short: "samko - blog and commodity price API for the SAMKO website",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = cfg.NewLogger()
		return err
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the import worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		journal, err := store.OpenBadgerJournal(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open post journal", zap.Error(err))
		}
		defer journal.Close()

		posts, err := store.NewPosts(store.WithJournal(journal), store.WithLogger(logger))
		if err != nil {
			logger.Fatal("Failed to init post store", zap.Error(err))
		}
		categories := store.NewCategories()

		priceOpts := []prices.Option{prices.WithWindow(cfg.PriceWindow), prices.WithLogger(logger)}
		var imports worker.Queue = worker.NewMemoryQueue(cfg.ImportQueueSize)

		if cfg.UseRedis() {
			rdb, err := connectRedis(ctx)
			if err != nil {
				logger.Fatal("Failed to connect to redis", zap.Error(err))
			}
			defer rdb.Close()
			priceOpts = append(priceOpts, prices.WithBackend(prices.NewRedisBackend(rdb, cfg.PriceWindow)))
			imports = worker.NewRedisQueue(rdb)
		}

		w := worker.NewWorker(posts, categories, imports, logger)
		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			w.Start(ctx)
		}()

		srv := server.NewServer(server.Deps{
			Posts:      posts,
			Categories: categories,
			Prices:     prices.NewCache(priceOpts...),
			Imports:    imports,
			Logger:     logger,
			WriteRPS:   cfg.WriteRPS,
			WriteBurst: cfg.WriteBurst,
		})

		go func() {
			if err := srv.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Web server stopped", zap.Error(err))
				stop()
			}
		}()

		// Block until shutdown
		<-ctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}

		// The journal closes on return; let an in-flight import finish first
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			logger.Warn("Import worker did not stop in time")
		}
		logger.Info("Goodbye!")
	},
}

var importCmd = &cobra.Command{
	Use:   "import [url]",
	Short: "Queue an external article for import as a draft post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !cfg.UseRedis() {
			logger.Fatal("import needs --redis (or SAMKO_REDIS_ADDR) to reach a running server")
		}

		ctx := context.Background()
		rdb, err := connectRedis(ctx)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		job := worker.NewImportJob(args[0])
		job.Category, _ = cmd.Flags().GetString("category")
		job.Author, _ = cmd.Flags().GetString("author")
		job.AuthorRole, _ = cmd.Flags().GetString("author-role")

		if err := worker.NewRedisQueue(rdb).Push(ctx, job); err != nil {
			logger.Fatal("Failed to queue import", zap.Error(err))
		}

		logger.Info("Import queued",
			zap.String("id", job.ID.String()),
			zap.String("url", job.URL))
	},
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Print the current simulated commodity quotes",
	Run: func(cmd *cobra.Command, args []string) {
		res := prices.NewCache(prices.WithLogger(logger)).Get(cmd.Context())

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "CODE\tNAME\tPRICE\tCHANGE\t%%\tTREND\n")
		for _, p := range res.Prices {
			fmt.Fprintf(tw, "%s\t%s\t%.2f %s/%s\t%s\t%s\t%s\n",
				p.Code, p.Name, p.Price, p.Currency, p.Unit,
				prices.FormatChange(p.Change), prices.FormatPercentChange(p.ChangePercent), prices.Trend(p.Change))
		}
		tw.Flush()
		fmt.Printf("source: %s, updated %s\n", res.Source, res.LastUpdated.Format(time.RFC3339))
	},
}

func connectRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Address of Redis server (empty keeps caches and queues in process)")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data", cfg.DataDir, "BadgerDB data directory (empty keeps posts in memory)")

	importCmd.Flags().String("category", "", "Category slug or name for the draft")
	importCmd.Flags().String("author", "", "Author shown on the draft")
	importCmd.Flags().String("author-role", "", "Author role shown on the draft")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pricesCmd)

	err = rootCmd.Execute()
	if logger != nil {
		logger.Sync()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
