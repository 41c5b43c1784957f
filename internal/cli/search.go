package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/TorecSubtitles/internal/models"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var year, season, episode int

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search subtitles by movie title or series name",
		Example: `  torec search "Ender's Game" --year 2013
  torec search "Game of Thrones" --season 3 --episode 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (season > 0) != (episode > 0) {
				return errors.New("--season and --episode must be given together")
			}

			return ctx.withProvider(cmd.Context(), func(p subtitleProvider) error {
				subs, err := p.Query(cmd.Context(), args[0], year, season, episode)
				if err != nil {
					return fmt.Errorf("search %q: %w", args[0], err)
				}
				writeSubtitles(cmd, subs)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Release year used to pick between titles")
	cmd.Flags().IntVar(&season, "season", 0, "Season number (series only)")
	cmd.Flags().IntVar(&episode, "episode", 0, "Episode number (series only)")

	return cmd
}

func writeSubtitles(cmd *cobra.Command, subs []models.Subtitle) {
	out := cmd.OutOrStdout()
	if len(subs) == 0 {
		fmt.Fprintln(out, "No subtitles found")
		return
	}

	for _, sub := range subs {
		fmt.Fprintf(out, "Subtitle %d (%s): %s\n", sub.ID, sub.Language, sub.PageLink)

		rows := make([][]string, 0, len(sub.Releases))
		for i, r := range sub.Releases {
			rows = append(rows, []string{strconv.Itoa(i + 1), r.Name, r.DownloadCode})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Release", "Download code"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft},
		))
	}
}
