// Package config loads frameseek settings from the environment
package config

import (
	"os"
	"strings"
	"time"

	"github.com/cbsinteractive/frameseek/frame"
	"github.com/cbsinteractive/frameseek/player"
	"github.com/cbsinteractive/frameseek/service/exceptions"
	"github.com/cbsinteractive/pkg/video"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prefix of every environment variable read by LoadConfig
const Prefix = "FRAMESEEK"

// Config is the configuration of a video's frame conversion and of the
// playback helpers built on it.
type Config struct {
	// Frame rate of the video as a fraction, e.g. 30000/1001.
	FramerateNumerator   int `envconfig:"FRAMERATE_NUMERATOR" required:"true"`
	FramerateDenominator int `envconfig:"FRAMERATE_DENOMINATOR" default:"1"`

	// Report plain timecode hours on a 12 hour clock.
	ClockHours bool `envconfig:"CLOCK_HOURS"`

	// Poll interval of the frame poller, zero means half a frame.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL"`

	SentryDSN string `envconfig:"SENTRY_DSN"`
	Env       string `envconfig:"ENV" default:"dev"`

	Log Log
}

// Log configures the logger
type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// LoadConfig reads the configuration from FRAMESEEK_* environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	return &cfg, nil
}

// Framerate returns the configured frame rate fraction
func (c *Config) Framerate() video.Framerate {
	return video.Framerate{Numerator: c.FramerateNumerator, Denominator: c.FramerateDenominator}
}

// Converter returns a converter for the configured frame rate. An
// unusable rate is a *frame.ConfigurationError.
func (c *Config) Converter() (*frame.Converter, error) {
	rate, err := frame.RateFromFramerate(c.Framerate())
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	var opts []frame.Option
	if c.ClockHours {
		opts = append(opts, frame.WithClockHours())
	}
	return frame.New(rate, opts...), nil
}

// Reporter returns the exception reporter for the configuration
func (c *Config) Reporter(logger logrus.FieldLogger) (exceptions.Reporter, error) {
	r, err := exceptions.New(c.SentryDSN, c.Env, logger)
	if err != nil {
		return nil, errors.Wrap(err, "creating exception reporter")
	}
	return r, nil
}

// PollerOptions returns the options of a frame poller built from the
// configuration
func (c *Config) PollerOptions() []player.PollerOption {
	return []player.PollerOption{player.WithInterval(c.PollInterval)}
}

// Logger builds a logrus logger writing to stderr
func (l Log) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetLevel(level)

	switch strings.ToLower(l.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", l.Format)
	}
	return logger, nil
}
