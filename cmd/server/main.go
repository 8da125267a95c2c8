package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"github.com/QuangTung97/crowd-escrow/config"
	"github.com/QuangTung97/crowd-escrow/pkg/memtable"
	"github.com/QuangTung97/crowd-escrow/pkg/migration"
	"github.com/QuangTung97/crowd-escrow/pkg/otellib"
	"github.com/QuangTung97/crowd-escrow/repository"
	"github.com/QuangTung97/crowd-escrow/service/escrow"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func connect(conf config.Config, sqlitePath string, logger *zap.Logger) *sqlx.DB {
	if sqlitePath == "" {
		return conf.MySQL.MustConnect()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", sqlitePath)
	db := sqlx.MustConnect(migration.DialectSQLite, dsn)
	db.SetMaxOpenConns(1)

	if err := migration.Up(db); err != nil {
		panic(err)
	}
	logger.Info("using sqlite database", zap.String("path", sqlitePath))
	return db
}

func startServer(sqlitePath string) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel("crowd-escrow", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := connect(conf, sqlitePath, logger)
	defer func() { _ = db.Close() }()

	provider := repository.NewProvider(db)
	cache := memtable.New(conf.Cache.SizeBytes, time.Duration(conf.Cache.TTLSeconds)*time.Second)

	service := escrow.NewDefaultService(provider, conf.Escrow, escrow.WithCache(cache))
	server := escrow.NewServer(escrow.NewIServiceWrapper(service,
		tracerProvider.Tracer("server"), "service::"))

	if !conf.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.Router(tracerProvider.Tracer("http"), logger)

	startHTTPServer(conf, router, logger)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	var sqlitePath string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer(sqlitePath)
		},
	}
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "",
		"use a local sqlite database file instead of mysql, migrated on start")
	return cmd
}

func startHTTPServer(conf config.Config, handler http.Handler, logger *zap.Logger) {
	logger.Info("starting http server", zap.String("addr", conf.Server.HTTP.ListenString()))

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("shutdown http server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
