package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/study"
)

func newStudyCmd() *cobra.Command {
	var (
		mode    string
		chapter int
		count   int
	)
	cmd := &cobra.Command{
		Use:   "study",
		Short: "問題を出題して回答を記録します",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := study.ParseMode(mode)
			if err != nil {
				return err
			}
			var ch *int
			if cmd.Flags().Changed("chapter") {
				ch = &chapter
			}

			recorder := study.NewRecorder(api, cfg.Recorder, logger)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := recorder.Close(ctx); err != nil {
					logger.Warn("Some answers were not sent", "error", err)
				}
				st := recorder.Stats()
				logger.Info("Answer recorder closed", "delivered", st.Delivered, "failed", st.Failed, "dropped", st.Dropped)
			}()

			session := study.NewSession(api, recorder, count)
			if err := session.Start(cmd.Context(), m, ch); err != nil {
				return err
			}

			tracker := study.NewBookmarkTracker(api)
			if err := tracker.Load(cmd.Context()); err != nil {
				logger.Warn("Bookmarks unavailable", "error", err)
			}

			return runStudy(cmd.Context(), session, tracker, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(study.ModeRandom), "学習モード (random|category|weak|bookmark)")
	cmd.Flags().IntVar(&chapter, "chapter", 0, "分野番号 (category モードで必須)")
	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultQuestionCount, "出題数")
	return cmd
}

// runStudy は o/x で回答、b でブックマーク切り替え、q で中断する対話ループです
func runStudy(ctx context.Context, session *study.Session, tracker *study.BookmarkTracker, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for !session.IsCompleted() {
		q, ok := session.Current()
		if !ok {
			break
		}
		mark := " "
		if tracker.IsBookmarked(q.ID) {
			mark = "*"
		}
		fmt.Fprintf(out, "\n[%d/%d]%s 第%d章 %s\n%s\n", session.Index()+1, session.Total(), mark, q.Chapter, q.ChapterTitle, q.StatementText)

	prompt:
		for {
			fmt.Fprint(out, "○なら o / ×なら x (b: ブックマーク, q: 終了) > ")
			if !scanner.Scan() {
				return finish(session, out)
			}
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "o":
				if err := answer(session, true, out); err != nil {
					return err
				}
				break prompt
			case "x":
				if err := answer(session, false, out); err != nil {
					return err
				}
				break prompt
			case "b":
				on, err := tracker.Toggle(ctx, q.ID)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				if on {
					fmt.Fprintln(out, "ブックマークしました")
				} else {
					fmt.Fprintln(out, "ブックマークを外しました")
				}
			case "q":
				return finish(session, out)
			}
		}
		session.Next()
	}
	return finish(session, out)
}

func answer(session *study.Session, choice bool, out io.Writer) error {
	q, _ := session.Current()
	correct, err := session.Answer(choice)
	if err != nil {
		return err
	}
	if correct {
		fmt.Fprintln(out, "正解!")
	} else {
		fmt.Fprintln(out, "不正解")
	}
	fmt.Fprintf(out, "答え: %s\n", q.Answer)
	if q.Explanation != nil {
		fmt.Fprintf(out, "解説: %s\n", *q.Explanation)
	}
	return nil
}

func finish(session *study.Session, out io.Writer) error {
	res := session.Result()
	fmt.Fprintf(out, "\n結果: %d問中 %d問正解 (正答率 %.1f%%)\n", res.TotalQuestions, res.CorrectCount, res.Accuracy)
	if len(res.IncorrectQuestionIDs) > 0 {
		fmt.Fprintf(out, "間違えた問題: %v\n", res.IncorrectQuestionIDs)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "今日と分野別の成績を表示します",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d, err := study.LoadDashboard(cmd.Context(), api)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "今日: %d問中 %d問正解 (%.1f%%)\n", d.Today.TotalAnswers, d.Today.CorrectCount, d.Today.Accuracy)
			for _, c := range d.Categories {
				fmt.Fprintf(out, "  第%d章 %s: %d/%d (%.1f%%)\n", c.Chapter, c.ChapterTitle, c.CorrectCount, c.TotalAnswers, c.Accuracy)
			}

			if days > 0 {
				daily, err := api.DailyStats(cmd.Context(), days)
				if err != nil {
					return err
				}
				for _, s := range daily {
					fmt.Fprintf(out, "%s: %d/%d (%.1f%%)\n", s.Date, s.CorrectCount, s.TotalAnswers, s.Accuracy)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "直近N日の日別成績も表示")
	return cmd
}

func newChaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters",
		Short: "分野の一覧を表示します",
		RunE: func(cmd *cobra.Command, args []string) error {
			chapters, err := api.Chapters(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range chapters {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s (%d問)\n", c.Chapter, c.ChapterTitle, c.QuestionCount)
			}
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "ログインリンクをメールで受け取ります",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.RequestMagicLink(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ログインリンクを送信しました。メールのトークンで quiz verify を実行してください")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "メールアドレス")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "ログインリンクのトークンをアクセストークンに交換します",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New("--token が必要です")
			}
			accessToken, err := api.VerifyMagicLink(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), accessToken)
			fmt.Fprintln(os.Stderr, "QUIZ_TOKEN に設定すると以降のコマンドで使われます")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "メールに記載されたトークン")
	return cmd
}
