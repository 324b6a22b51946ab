package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"

	StartRandom = "random"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

var (
	ErrUnknownStorage        = errors.New("unknown scoreboard storage")
	ErrUnknownStartingPlayer = errors.New("unknown starting player")
	ErrUnknownLogFormat      = errors.New("unknown log format")
	ErrUnknownLogLevel       = errors.New("unknown log level")
	ErrInvalidScoreboardTTL  = errors.New("scoreboard ttl must be positive")
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	LogFile   string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Players   Players `yaml:"players"`
	// StartingPlayer is "random", "X" or "O" and decides who opens each new game.
	StartingPlayer string     `yaml:"starting-player" env:"TICTACTOE_STARTING_PLAYER" env-default:"random"`
	Scoreboard     Scoreboard `yaml:"scoreboard"`
	Redis          Redis      `yaml:"redis"`
}

type Players struct {
	X string `yaml:"x" env:"TICTACTOE_PLAYER_X" env-default:"Player X"`
	O string `yaml:"o" env:"TICTACTOE_PLAYER_O" env-default:"Player O"`
}

type Scoreboard struct {
	Storage string        `yaml:"storage" env:"TICTACTOE_SCOREBOARD_STORAGE" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_SCOREBOARD_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Scoreboard.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Scoreboard.Storage)
	}

	// a key without expiry would outlive a crashed session
	if that.Scoreboard.TTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScoreboardTTL, that.Scoreboard.TTL)
	}

	switch that.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	switch that.StartingPlayer {
	case StartRandom, "X", "O":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStartingPlayer, that.StartingPlayer)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
