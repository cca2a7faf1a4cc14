package study

import (
	"context"

	"go_5_quiz_keep/internal/model"

	"golang.org/x/sync/errgroup"
)

// Dashboard は今日の成績と分野別の成績
type Dashboard struct {
	Today      model.Summary
	Categories []model.CategoryStat
}

// LoadDashboard は2つの集計を並行して取得します。一方が失敗すればもう一方もキャンセル
func LoadDashboard(ctx context.Context, src StatsSource) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		today, err := src.TodayStats(gctx)
		if err != nil {
			return err
		}
		d.Today = today
		return nil
	})
	g.Go(func() error {
		categories, err := src.CategoryStats(gctx)
		if err != nil {
			return err
		}
		d.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
