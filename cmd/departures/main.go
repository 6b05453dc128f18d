package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arunsworld/departures"
	"github.com/arunsworld/departures/config"
	"github.com/arunsworld/departures/handlers"
	"github.com/arunsworld/departures/webserver"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "departures",
	Short:        "Personal transit departures board",
	Long:         "Polls TfL and National Rail and serves a live departures board for your configured stations",
	SilenceUsage: true,
}

var (
	configPath string
	port       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the departures board server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "server configuration file")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func serve() error {
	shutdownCtx, shutdown := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer shutdown()

	cfg, err := config.LoadServer(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}

	store := config.NewStore(cfg.DashboardFile)
	client := departures.NewClient(cfg.TfLBaseURL, cfg.HuxleyBaseURL, time.Duration(cfg.RequestTimeoutMS)*time.Millisecond)
	board := departures.NewBoard(client, store)

	settings := store.Settings()
	if settings.AutoRefresh {
		board.Start(time.Duration(settings.RefreshInterval) * time.Second)
		defer board.Stop()
	} else {
		board.Refresh(shutdownCtx)
	}

	router := mux.NewRouter()
	handlers.RegisterHandlers(router, store, board, client)

	server := webserver.NewHTTPWebServer(router, time.Duration(cfg.ShutdownTimeoutMS)*time.Millisecond)
	return server.Serve(shutdownCtx, cfg.Port)
}
