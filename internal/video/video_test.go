package video

import (
	"testing"

	"github.com/Belphemur/TorecSubtitles/internal/release"

	"github.com/google/go-cmp/cmp"
)

type stubGuesser map[release.Kind]release.Info

func (s stubGuesser) Guess(name string, kind release.Kind) release.Info {
	info := s[kind]
	info.Kind = kind
	return info
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ender's Game", "enders game"},
		{"  Marvel's Agents of S.H.I.E.L.D.  ", "marvels agents of s h i e l d"},
		{"Star Wars: Episode IV - A New Hope", "star wars episode iv a new hope"},
		{"Amélie (2001)", "amelie 2001"},
		{"House   of\tCards", "house of cards"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGuessMatches_Episode(t *testing.T) {
	ep := &Episode{
		Base:    Base{Name: "Game.of.Thrones.S03E10.720p.HDTV.x264-EVOLVE", Resolution: "720p", Source: "HDTV", VideoCodec: "H.264", ReleaseGroup: "EVOLVE"},
		Series:  "Game of Thrones",
		Season:  3,
		Episode: 10,
		Year:    2011,
	}

	guess := release.Info{
		Kind:         release.KindEpisode,
		Title:        "Game.of.Thrones",
		Season:       3,
		Episode:      9,
		Resolution:   "720p",
		Source:       "hdtv",
		VideoCodec:   "H.264",
		ReleaseGroup: "evolve",
	}

	got := GuessMatches(ep, guess)
	want := NewMatchSet(LabelSeries, LabelSeason, LabelResolution, LabelSource, LabelVideoCodec, LabelReleaseGroup)
	if diff := cmp.Diff(want.Sorted(), got.Sorted()); diff != "" {
		t.Errorf("GuessMatches() mismatch (-want +got):\n%s", diff)
	}
}

func TestGuessMatches_OriginalSeriesYear(t *testing.T) {
	ep := &Episode{Base: Base{Name: "x"}, Series: "Show", Season: 1, Episode: 1, OriginalSeries: true}

	if got := GuessMatches(ep, release.Info{Kind: release.KindEpisode}); !got.Has(LabelYear) {
		t.Errorf("expected %q for an original series guessed without year, got %v", LabelYear, got.Sorted())
	}
	if got := GuessMatches(ep, release.Info{Kind: release.KindEpisode, Year: 2015}); got.Has(LabelYear) {
		t.Errorf("did not expect %q when the guessed year differs, got %v", LabelYear, got.Sorted())
	}
}

func TestGuessMatches_Movie(t *testing.T) {
	movie := &Movie{
		Base:  Base{Name: "Enders.Game.2013.720p.BluRay.x264-SPARKS", Resolution: "720p", VideoCodec: "H.264"},
		Title: "Ender's Game",
		Year:  2013,
	}

	guess := release.Info{Kind: release.KindMovie, Title: "Enders Game", Year: 2013, Resolution: "1080p", VideoCodec: "H.264"}

	got := GuessMatches(movie, guess)
	want := NewMatchSet(LabelTitle, LabelYear, LabelVideoCodec)
	if diff := cmp.Diff(want.Sorted(), got.Sorted()); diff != "" {
		t.Errorf("GuessMatches() mismatch (-want +got):\n%s", diff)
	}
}

func TestGuessMatches_EmptyGuess(t *testing.T) {
	movie := &Movie{Base: Base{Name: "x"}, Title: "Man of Steel", Year: 2013}
	if got := GuessMatches(movie, release.Info{Kind: release.KindMovie}); len(got) != 0 {
		t.Errorf("expected no matches for an empty guess, got %v", got.Sorted())
	}
}

func TestMatchSet(t *testing.T) {
	m := NewMatchSet(LabelTitle)
	m.Union(NewMatchSet(LabelTitle, LabelYear))
	m.Add(LabelSeason)

	if diff := cmp.Diff([]string{LabelSeason, LabelTitle, LabelYear}, m.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	if !m.Has(LabelYear) || m.Has(LabelEpisode) {
		t.Errorf("Has() returned unexpected results for %v", m.Sorted())
	}
}

func TestFromName_Episode(t *testing.T) {
	g := stubGuesser{
		release.KindEpisode: {Title: "Game of Thrones", Season: 3, Episode: 10, Resolution: "720p", VideoCodec: "H.264"},
	}

	v, err := FromName("Game.of.Thrones.S03E10.720p.HDTV.x264", g)
	if err != nil {
		t.Fatalf("FromName() error = %v", err)
	}
	ep, ok := v.(*Episode)
	if !ok {
		t.Fatalf("FromName() = %T, want *Episode", v)
	}
	want := &Episode{
		Base:           Base{Name: "Game.of.Thrones.S03E10.720p.HDTV.x264", Resolution: "720p", VideoCodec: "H.264"},
		Series:         "Game of Thrones",
		Season:         3,
		Episode:        10,
		OriginalSeries: true,
	}
	if diff := cmp.Diff(want, ep); diff != "" {
		t.Errorf("FromName() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromName_Movie(t *testing.T) {
	g := stubGuesser{
		release.KindMovie: {Title: "Enders Game", Year: 2013, Resolution: "720p"},
	}

	v, err := FromName("Enders.Game.2013.720p.BluRay", g)
	if err != nil {
		t.Fatalf("FromName() error = %v", err)
	}
	movie, ok := v.(*Movie)
	if !ok {
		t.Fatalf("FromName() = %T, want *Movie", v)
	}
	if movie.Title != "Enders Game" || movie.Year != 2013 || movie.Resolution != "720p" {
		t.Errorf("FromName() = %+v", movie)
	}
	if movie.GetName() != "Enders.Game.2013.720p.BluRay" {
		t.Errorf("GetName() = %q", movie.GetName())
	}
}

func TestFromName_NoTitle(t *testing.T) {
	if _, err := FromName("720p", stubGuesser{}); err == nil {
		t.Error("expected an error when no title can be guessed")
	}
}
