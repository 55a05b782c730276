package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/gabrielfcoelh83/cine-insights/internal/config"
	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
	"github.com/gabrielfcoelh83/cine-insights/internal/tmdb"
)

type commandContext struct {
	configFlag    *string
	outputFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, outputFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		outputFlag:    outputFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.outputFlag != nil && strings.TrimSpace(*c.outputFlag) != "" {
			expanded, err := config.ExpandPath(*c.outputFlag)
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Output.Dir = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = *c.logLevelFlag
	}
	format := cfg.Logging.Format
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		format = *c.logFormatFlag
	}
	return logging.New(logging.Options{Level: level, Format: format})
}

func (c *commandContext) newClient(cfg *config.Config) (*tmdb.Client, error) {
	return tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
}
