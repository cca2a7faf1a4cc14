// cmd/quiz/main.go は端末で○×問題を解くための学習CLIです
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go_5_quiz_keep/internal/applog"
	"go_5_quiz_keep/internal/client"
	"go_5_quiz_keep/internal/config"
)

var (
	configPath string
	apiURL     string
	apiToken   string

	cfg    config.Config
	api    *client.Client
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "quiz",
	Short:         "○×クイズの学習CLI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if apiURL != "" {
			cfg.Client.BaseURL = apiURL
		}
		if apiToken != "" {
			cfg.Client.Token = apiToken
		}

		logger = applog.New(os.Stderr, cfg.Log.Level, "dev")
		slog.SetDefault(logger)
		api = client.New(cfg.Client)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "config.yaml のあるディレクトリ")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "APIのURL (既定は client.base_url / QUIZ_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "access-token", "", "アクセストークン (既定は client.token / QUIZ_TOKEN)")

	rootCmd.AddCommand(newStudyCmd(), newStatsCmd(), newChaptersCmd(), newLoginCmd(), newVerifyCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
