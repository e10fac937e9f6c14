package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/logger"
)

// env is what every command needs to run.
type env struct {
	ctx    context.Context
	logger *zap.Logger
	config *Config
	repo   catalog.Repository
}

// setup builds the logger, the config and the repository for command. It
// terminates the process when any of them cannot be built.
func setup(command string) *env {
	ctx := context.Background()

	l, err := logger.New(logger.Options{
		JSON:   viper.GetBool("json"),
		Debug:  viper.GetBool("debug"),
		Name:   app,
		Output: viper.GetString("log-output"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l = logger.WithCommand(l, command, config.User)

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	repo, err := newRepository(config, l)
	if err != nil {
		l.Fatal("loading the catalog", zap.Error(err), zap.String("seed_file", config.SeedFile))
	}

	return &env{
		ctx:    ctx,
		logger: l,
		config: config,
		repo:   repo,
	}
}

func newRepository(config *Config, l *zap.Logger) (*catalog.Memory, error) {
	seed := catalog.DefaultSeed()
	if config.SeedFile != "" {
		loaded, err := catalog.LoadSeed(config.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	opts := []catalog.Option{catalog.WithLogger(l)}
	if config.Swipe.RandomSeed != 0 {
		opts = append(opts, catalog.WithRand(rand.New(rand.NewPCG(config.Swipe.RandomSeed, 0))))
	}

	return catalog.NewMemory(seed, opts...), nil
}
