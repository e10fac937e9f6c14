package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/filtering"
	"github.com/edufi/edufi/internal/matching"
	"github.com/edufi/edufi/internal/utils"
)

const (
	PromptLike   = "Like"
	PromptPass   = "Pass"
	PromptStop   = "Stop"
	PromptAccept = "Accept"
	PromptReject = "Reject"
	PromptKeep   = "Keep pending"
)

const matchRewardSource = "EduSwipe Match"

// chooser asks the user to pick one of items.
type chooser func(label string, items []string) (string, error)

func promptChooser(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, selected, err := prompt.Run()
	return selected, err
}

type swipeOptions struct {
	Search      string
	MinScore    int
	Interactive bool
}

var swipeCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Find compatible study peers (EduSwipe)",
	Run: func(cmd *cobra.Command, _ []string) {
		e := setup("swipe")

		interactive, _ := cmd.Flags().GetBool("interactive")
		opts := swipeOptions{
			Search:      flagValue(cmd, "search"),
			MinScore:    e.config.Swipe.MinimumScore,
			Interactive: interactive,
		}

		if err := swipe(e, opts, promptChooser); err != nil {
			e.logger.Fatal("exiting", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(swipeCmd)

	swipeCmd.Flags().StringP("search", "s", "", "case-insensitive text to look for in names and bios")
	swipeCmd.Flags().Int("min-score", 0, "minimum compatibility score (0-100) of shown profiles")
	swipeCmd.Flags().BoolP("interactive", "i", false, "answer every card with like or pass")

	viper.BindPFlag("swipe.minimum-score", swipeCmd.Flags().Lookup("min-score"))
}

func swipe(e *env, opts swipeOptions, choose chooser) error {
	userID := e.config.User

	self, err := selfTraits(e, userID)
	if err != nil {
		return fmt.Errorf("getting traits of %s: %w", userID, err)
	}

	profiles, err := e.repo.Profiles(e.ctx, userID)
	if err != nil {
		return fmt.Errorf("getting profiles: %w", err)
	}

	e.logger.Info("getting profiles", zap.Int("count", len(profiles)))

	steps := []filtering.Filter[*catalog.Profile]{
		filtering.NewSearch[*catalog.Profile](opts.Search, catalog.ProfileSearchFields),
		matching.NewCompatibilityFilter(opts.MinScore, &matching.CompatibilityFilterDeps{
			Logger:  e.logger,
			Matcher: matching.NewCompatibilityMatcher(opts.MinScore, e.logger),
			Self:    self,
		}),
	}

	if opts.Search == "" {
		filtering.DisableByName(steps, "search", "no search text given")
	}

	candidates, err := filtering.Run(e.ctx, e.logger, steps, profiles)
	if err != nil {
		return fmt.Errorf("filtering profiles: %w", err)
	}

	if len(candidates) == 0 {
		e.logger.Info("exiting", zap.String("reason", "no profiles left after filters"))
		return nil
	}

	assessments := matching.AssessmentsOf(steps)

	for _, candidate := range candidates {
		assessment := assessments[candidate.ID]
		e.logger.Info("profile",
			zap.String("id", candidate.ID),
			zap.String("name", candidate.Name),
			zap.String("location", candidate.Location),
			zap.String("stream", candidate.Stream),
			zap.Int("score", assessment.Score),
			zap.String("reason", assessment.Reason),
			zap.String("bio", utils.TruncateForLog(candidate.Bio, e.config.MaxLogLength)),
		)
	}
	e.logger.Info("found profiles", zap.Int("count", len(candidates)))

	if !opts.Interactive {
		return nil
	}

	if err := swipeCards(e, candidates, assessments, choose); err != nil {
		return err
	}
	if err := reviewMatches(e, candidates, choose); err != nil {
		return err
	}

	return reportMatches(e)
}

// selfTraits prefers the user's EduSwipe profile and falls back to the
// account data.
func selfTraits(e *env, userID string) (catalog.Traits, error) {
	profile, err := e.repo.ProfileByUser(e.ctx, userID)
	if err == nil {
		return profile.Traits(), nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return catalog.Traits{}, err
	}

	e.logger.Debug("no profile found, using account data")

	user, err := e.repo.User(e.ctx, userID)
	if err != nil {
		return catalog.Traits{}, err
	}
	return user.Traits(), nil
}

func swipeCards(e *env, candidates []*catalog.Profile, assessments map[string]*matching.Assessment, choose chooser) error {
	for _, candidate := range candidates {
		label := fmt.Sprintf("%s (%s, %s) %d%% match",
			candidate.Name, candidate.Stream, candidate.Location, assessments[candidate.ID].Score,
		)

		action, err := choose(label, []string{PromptLike, PromptPass, PromptStop})
		if err != nil {
			return err
		}

		switch action {
		case PromptLike:
			match, err := e.repo.CreateMatch(e.ctx, e.config.User, candidate.UserID)
			if err != nil {
				return fmt.Errorf("creating a match with %s: %w", candidate.UserID, err)
			}
			e.logger.Info("liked profile",
				zap.String("name", candidate.Name),
				zap.String("match_id", match.ID),
			)
		case PromptPass:
			e.logger.Debug("passed profile", zap.String("name", candidate.Name))
		case PromptStop:
			return nil
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
	return nil
}

func reviewMatches(e *env, candidates []*catalog.Profile, choose chooser) error {
	matches, err := e.repo.UserMatches(e.ctx, e.config.User)
	if err != nil {
		return fmt.Errorf("getting matches: %w", err)
	}

	names := make(map[string]string, len(candidates))
	for _, candidate := range candidates {
		names[candidate.UserID] = candidate.Name
	}

	for _, match := range matches {
		if match.Status != catalog.MatchPending {
			continue
		}

		action, err := choose(fmt.Sprintf("Match with %s", names[match.User2ID]), []string{PromptAccept, PromptReject, PromptKeep})
		if err != nil {
			return err
		}

		var status catalog.MatchStatus
		switch action {
		case PromptAccept:
			status = catalog.MatchAccepted
		case PromptReject:
			status = catalog.MatchRejected
		case PromptKeep:
			continue
		default:
			return fmt.Errorf("invalid action: %s", action)
		}

		if err := e.repo.UpdateMatch(e.ctx, match.ID, status); err != nil {
			return fmt.Errorf("updating match %s: %w", match.ID, err)
		}

		if status == catalog.MatchAccepted && e.config.Swipe.MatchReward > 0 {
			coin, err := e.repo.AddEduCoins(e.ctx, e.config.User, e.config.Swipe.MatchReward,
				matchRewardSource, "Matched with "+names[match.User2ID])
			if err != nil {
				return fmt.Errorf("rewarding match %s: %w", match.ID, err)
			}
			e.logger.Info("earned edu coins",
				zap.String("match_id", match.ID),
				zap.Int("amount", coin.Amount),
			)
		}
	}
	return nil
}

func reportMatches(e *env) error {
	matches, err := e.repo.UserMatches(e.ctx, e.config.User)
	if err != nil {
		return fmt.Errorf("getting matches: %w", err)
	}

	for _, match := range matches {
		e.logger.Info("match",
			zap.String("match_id", match.ID),
			zap.String("with", match.User2ID),
			zap.String("status", string(match.Status)),
		)
	}
	e.logger.Info("session matches", zap.Int("count", len(matches)))
	return nil
}
