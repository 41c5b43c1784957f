// Package cli implements the torec command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/provider"
	"github.com/Belphemur/TorecSubtitles/internal/release"
	"github.com/Belphemur/TorecSubtitles/internal/reporting"
	"github.com/Belphemur/TorecSubtitles/internal/video"
)

// subtitleProvider is what the commands need from the provider.
type subtitleProvider interface {
	Initialize(ctx context.Context) error
	Terminate(ctx context.Context) error
	Languages() []language.Tag
	Query(ctx context.Context, title string, year, season, episode int) ([]models.Subtitle, error)
	ListSubtitles(ctx context.Context, v video.Video, languages []language.Tag) ([]models.Subtitle, error)
	Matches(sub *models.Subtitle, v video.Video) video.MatchSet
}

type commandContext struct {
	cfg         *config.Config
	guesser     release.Guesser
	newProvider func(cfg *config.Config) (subtitleProvider, error)

	domainFlag string
}

func newCommandContext(cfg *config.Config) *commandContext {
	return &commandContext{
		cfg:     cfg,
		guesser: release.NewGuesser(),
		newProvider: func(cfg *config.Config) (subtitleProvider, error) {
			return provider.NewTorecProvider(cfg)
		},
	}
}

// withProvider runs fn against an initialised provider and terminates it afterwards.
func (c *commandContext) withProvider(ctx context.Context, fn func(p subtitleProvider) error) error {
	cfg := *c.cfg
	if c.domainFlag != "" {
		cfg.TorecDomain = c.domainFlag
	}

	p, err := c.newProvider(&cfg)
	if err != nil {
		return err
	}
	if err := p.Initialize(ctx); err != nil {
		return err
	}
	defer func() {
		if err := p.Terminate(ctx); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Msg("Failed to terminate provider")
		}
	}()

	return fn(p)
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "torec",
		Short:         "Search Hebrew subtitles on Torec",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.domainFlag, "domain", "", "Override the site root URL")

	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newMatchesCommand(ctx))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	flush, err := reporting.Init(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialise Sentry")
	}

	if err := newRootCommand(newCommandContext(cfg)).Execute(); err != nil {
		reporting.Capture(err)
		flush()
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
	flush()
}
