package cmd

import "testing"

func TestGetConfigFromEnvironment(t *testing.T) {
	t.Setenv("EDUFI_SWIPE_RANDOM_SEED", "7")
	t.Setenv("EDUFI_SWIPE_MATCH_REWARD", "25")
	t.Setenv("EDUFI_MAX_LOG_LENGTH", "64")

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Swipe.RandomSeed != 7 {
		t.Fatalf("expected random seed 7, got %d", config.Swipe.RandomSeed)
	}
	if config.Swipe.MatchReward != 25 {
		t.Fatalf("expected match reward 25, got %d", config.Swipe.MatchReward)
	}
	if config.MaxLogLength != 64 {
		t.Fatalf("expected max log length 64, got %d", config.MaxLogLength)
	}
}

func TestGetConfigDefaults(t *testing.T) {
	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.User != defaultUser || config.Swipe.RandomSeed != 0 || config.Swipe.MatchReward != defaultMatchReward {
		t.Fatalf("unexpected defaults: %+v %+v", config, config.Swipe)
	}
}
