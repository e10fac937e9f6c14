package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "edufi"

	defaultUser         = "demo-user-1"
	defaultMaxLogLength = 120
	defaultMatchReward  = 10
)

type Config struct {
	SeedFile     string       `mapstructure:"seed-file"`
	User         string       `mapstructure:"user"`
	MaxLogLength int          `mapstructure:"max-log-length"`
	Swipe        *SwipeConfig `mapstructure:"swipe"`
}

type SwipeConfig struct {
	MinimumScore int `mapstructure:"minimum-score"`
	// RandomSeed makes generated profile dates reproducible when non-zero.
	RandomSeed uint64 `mapstructure:"random-seed"`
	// MatchReward is the EduCoins amount credited for every accepted match.
	MatchReward int `mapstructure:"match-reward"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "edufi browses scholarships, internships and study peers from the EduFi catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A missing .env file is fine: the environment may be set by other means.
	_ = godotenv.Load()

	viper.SetEnvPrefix(app)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("user", defaultUser)
	viper.SetDefault("max-log-length", defaultMaxLogLength)
	viper.SetDefault("swipe.minimum-score", 0)
	viper.SetDefault("swipe.random-seed", 0)
	viper.SetDefault("swipe.match-reward", defaultMatchReward)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is edufi.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-output", "", "file to write logs to (default is stdout)")
	rootCmd.PersistentFlags().String("seed-file", "", "a yaml/json/toml file replacing the built-in catalog")
	rootCmd.PersistentFlags().StringP("user", "u", defaultUser, "id of the acting user")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-output", rootCmd.PersistentFlags().Lookup("log-output"))
	viper.BindPFlag("seed-file", rootCmd.PersistentFlags().Lookup("seed-file"))
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Swipe == nil {
		config.Swipe = &SwipeConfig{}
	}

	return config, nil
}
