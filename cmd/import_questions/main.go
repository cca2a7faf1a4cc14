// cmd/import_questions/main.go は問題マスターCSVをDBに取り込みます
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go_5_quiz_keep/internal/applog"
	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/repository"
	"go_5_quiz_keep/internal/service"
)

var (
	filePath   string
	configPath string
	dryRun     bool
)

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "取り込むCSVファイル")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "configs", "config.yaml のあるディレクトリ")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "DBに書き込まず件数だけ表示")
	_ = rootCmd.MarkFlagRequired("file")
}

var rootCmd = &cobra.Command{
	Use:          "import_questions",
	Short:        "問題マスターCSVを問題IDで upsert します",
	SilenceUsage: true,
	RunE:         app,
}

func app(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := applog.New(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	ctx := middleware.WithLogger(cmd.Context(), logger)

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("CSVファイルを開けません: %w", err)
	}
	defer f.Close()

	var importer *service.ImportService
	if dryRun {
		importer = service.NewImportService(nil, nil)
	} else {
		db, err := repository.NewDB(cfg.Database.URL, logger)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		importer = service.NewImportService(db, repository.NewGormQuestionRepository())
	}

	result, err := importer.Import(ctx, f, dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "columns: %v\n", result.Columns)
	fmt.Fprintf(out, "total: %d, skipped: %d\n", result.Total, result.Skipped)
	if dryRun {
		fmt.Fprintln(out, "dry-run: 書き込みは行いませんでした")
		return nil
	}
	fmt.Fprintf(out, "imported: %d, failed: %d\n", result.Imported, result.Failed)
	if result.Failed > 0 {
		return fmt.Errorf("%d 件の取り込みに失敗しました", result.Failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
