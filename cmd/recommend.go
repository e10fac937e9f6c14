package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/matching"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest colleges and scholarships for a budget and a rank",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup("recommend")

		user, err := recommendationSubject(e, cmd)
		if err != nil {
			e.logger.Fatal("preparing recommendation input", zap.Error(err))
		}

		recs := matching.NewRecommender(time.Now).Recommend(user)

		// do not bother error since recommendations are plain data
		pretty, _ := json.MarshalIndent(recs, "", "  ")
		e.logger.Info(string(pretty),
			zap.Int("colleges", len(recs.Colleges)),
			zap.Int("scholarships", len(recs.Scholarships)),
		)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("budget", "", "yearly budget (overrides the stored one)")
	recommendCmd.Flags().String("rank", "", "entrance exam rank (overrides the stored one)")
	recommendCmd.Flags().String("location", "", "preferred location (overrides the stored one)")
}

// recommendationSubject starts from the stored account of the acting user
// and applies the flags given on the command line.
func recommendationSubject(e *env, cmd *cobra.Command) (*catalog.User, error) {
	user := &catalog.User{ID: e.config.User}

	stored, err := e.repo.User(e.ctx, e.config.User)
	switch {
	case err == nil:
		copied := *stored
		user = &copied
	case errors.Is(err, catalog.ErrNotFound):
		e.logger.Warn("user not found, using flags only", zap.Error(err))
	default:
		return nil, err
	}

	for _, name := range []string{"budget", "rank"} {
		if !cmd.Flags().Changed(name) {
			continue
		}

		value, err := parseWholeNumber(flagValue(cmd, name))
		if err != nil {
			return nil, fmt.Errorf("parsing --%s: %w", name, err)
		}

		if name == "budget" {
			user.Budget = &value
		} else {
			user.Rank = &value
		}
	}

	if cmd.Flags().Changed("location") {
		user.Location = flagValue(cmd, "location")
	}

	e.logger.Debug("recommending",
		zap.Any("budget", user.Budget),
		zap.Any("rank", user.Rank),
		zap.String("location", user.Location),
	)

	return user, nil
}

// parseWholeNumber reads a decimal integer. Leading zeros are kept decimal,
// so "010000" is ten thousand rather than an octal literal.
func parseWholeNumber(raw string) (int, error) {
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is out of range", raw)
	}
	return int(f), nil
}
