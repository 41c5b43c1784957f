package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/Belphemur/TorecSubtitles/internal/video"
)

func newMatchesCommand(ctx *commandContext) *cobra.Command {
	var languageFlags []string

	cmd := &cobra.Command{
		Use:   "matches <release filename>",
		Short: "List subtitles for a release file with the attributes they match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := video.FromName(args[0], ctx.guesser)
			if err != nil {
				return err
			}

			var languages []language.Tag
			for _, l := range languageFlags {
				tag, err := language.Parse(l)
				if err != nil {
					return fmt.Errorf("invalid language %q: %w", l, err)
				}
				languages = append(languages, tag)
			}

			return ctx.withProvider(cmd.Context(), func(p subtitleProvider) error {
				if len(languages) == 0 {
					languages = p.Languages()
				}

				subs, err := p.ListSubtitles(cmd.Context(), v, languages)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, describeVideo(v))
				if len(subs) == 0 {
					fmt.Fprintln(out, "No subtitles found")
					return nil
				}

				rows := make([][]string, 0, len(subs))
				for i := range subs {
					sub := &subs[i]
					rows = append(rows, []string{
						strconv.Itoa(sub.ID),
						sub.Language.String(),
						strconv.Itoa(len(sub.Releases)),
						strings.Join(p.Matches(sub, v).Sorted(), ", "),
						sub.PageLink,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Language", "Releases", "Matches", "Page"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&languageFlags, "language", "l", nil, "Subtitle languages (defaults to the provider languages)")

	return cmd
}

func describeVideo(v video.Video) string {
	switch v := v.(type) {
	case *video.Episode:
		return fmt.Sprintf("Episode: %s S%02dE%02d", v.Series, v.Season, v.Episode)
	case *video.Movie:
		if v.Year != 0 {
			return fmt.Sprintf("Movie: %s (%d)", v.Title, v.Year)
		}
		return "Movie: " + v.Title
	}
	return v.GetName()
}
