package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show EduCoins and roadmap progress of the acting user",
	Run: func(_ *cobra.Command, _ []string) {
		e := setup("dashboard")

		if err := dashboard(e); err != nil {
			e.logger.Fatal("exiting", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func dashboard(e *env) error {
	userID := e.config.User

	user, err := e.repo.User(e.ctx, userID)
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	coins, err := e.repo.EduCoins(e.ctx, userID)
	if err != nil {
		return fmt.Errorf("getting edu coins: %w", err)
	}

	e.logger.Info("welcome back",
		zap.String("name", user.Name),
		zap.Int("edu_coins", catalog.TotalCoins(coins)),
	)

	for _, coin := range coins {
		e.logger.Info("edu coins",
			zap.Int("amount", coin.Amount),
			zap.String("source", coin.Source),
			zap.String("description", coin.Description),
			zap.String("date", coin.CreatedAt.Format("2006-01-02")),
		)
	}

	roadmap, err := e.repo.Roadmap(e.ctx, userID)
	if errors.Is(err, catalog.ErrNotFound) {
		e.logger.Info("no roadmap yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting roadmap: %w", err)
	}

	e.logger.Info("roadmap",
		zap.String("title", roadmap.Title),
		zap.Int("progress", roadmap.Progress),
		zap.String("steps_done", fmt.Sprintf("%d/%d", roadmap.CompletedSteps(), len(roadmap.Steps))),
	)
	for _, step := range roadmap.Steps {
		e.logger.Info("roadmap step",
			zap.String("title", step.Title),
			zap.Bool("completed", step.Completed),
		)
	}

	return nil
}
