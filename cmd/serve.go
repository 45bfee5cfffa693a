package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Grodondo/aitutor/pkg/config"
	"github.com/Grodondo/aitutor/pkg/server"
	"github.com/Grodondo/aitutor/pkg/tutor"
	"github.com/spf13/cobra"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editor-plugin bridge",
	Long: `Starts a local HTTP server that editor plugins talk to: POST /api/analyze
accepts {code, level, includeLineNumbers} and returns line-anchored
suggestions; /ws pushes suggestion events to connected editors.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadOrInitConfig(true)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if model != "" {
			cfg.Model = model
		}

		addr := serveListen
		if addr == "" {
			addr = cfg.ListenAddr
		}

		logger := newLogger(cfg)
		srv := server.New(cfg, logger, tutor.NewService(cfg, logger))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.LogError(err)
			}
		}()

		if err := srv.Start(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default from config)")
}
