package release

import "testing"

func TestGuess_QualityAttributes(t *testing.T) {
	g := NewGuesser()
	tests := []struct {
		name       string
		release    string
		kind       Kind
		resolution string
		source     string
		videoCodec string
		audioCodec string
	}{
		{"bluray x264", "Enders.Game.2013.720p.BluRay.x264-SPARKS", KindMovie, "720p", "BluRay", "H.264", ""},
		{"web-dl h265 ddp", "Some.Movie.2020.2160p.WEB-DL.DDP5.1.H.265-GRP", KindMovie, "2160p", "WEB-DL", "H.265", "Dolby Digital Plus"},
		{"hdtv episode", "Game.of.Thrones.S03E10.HDTV.x264-EVOLVE", KindEpisode, "", "HDTV", "H.264", ""},
		{"dvdrip xvid ac3", "Old.Film.1999.DVDRip.XviD.AC3-TEAM", KindMovie, "", "DVD", "XviD", "Dolby Digital"},
		{"webrip hevc aac", "Show.S01E02.1080p.WEBRip.HEVC.AAC-GRP", KindEpisode, "1080p", "WEBRip", "H.265", "AAC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := g.Guess(tt.release, tt.kind)
			if info.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", info.Kind, tt.kind)
			}
			if info.Resolution != tt.resolution {
				t.Errorf("Resolution = %q, want %q", info.Resolution, tt.resolution)
			}
			if info.Source != tt.source {
				t.Errorf("Source = %q, want %q", info.Source, tt.source)
			}
			if info.VideoCodec != tt.videoCodec {
				t.Errorf("VideoCodec = %q, want %q", info.VideoCodec, tt.videoCodec)
			}
			if info.AudioCodec != tt.audioCodec {
				t.Errorf("AudioCodec = %q, want %q", info.AudioCodec, tt.audioCodec)
			}
		})
	}
}

func TestGuess_EpisodeNumbering(t *testing.T) {
	g := NewGuesser()
	info := g.Guess("Game.of.Thrones.S03E10.HDTV.x264-EVOLVE", KindEpisode)
	if info.Season != 3 || info.Episode != 10 {
		t.Errorf("Season/Episode = %d/%d, want 3/10", info.Season, info.Episode)
	}
}

func TestGuess_MovieDropsEpisodeNumbering(t *testing.T) {
	g := NewGuesser()
	info := g.Guess("Game.of.Thrones.S03E10.HDTV.x264-EVOLVE", KindMovie)
	if info.Season != 0 || info.Episode != 0 {
		t.Errorf("Season/Episode = %d/%d, want 0/0 for a movie guess", info.Season, info.Episode)
	}
}

func TestGuess_Year(t *testing.T) {
	g := NewGuesser()
	info := g.Guess("Enders.Game.2013.720p.BluRay.x264-SPARKS", KindMovie)
	if info.Year != 2013 {
		t.Errorf("Year = %d, want 2013", info.Year)
	}
}

func TestParseSeasonEpisode(t *testing.T) {
	tests := []struct {
		input   string
		season  int
		episode int
		ok      bool
	}{
		{"Show.S01E02.720p", 1, 2, true},
		{"Show s1e12", 1, 12, true},
		{"Show.3x07.HDTV", 3, 7, true},
		{"Show.S02.E05", 2, 5, true},
		{"Movie.2013.720p", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			season, episode, ok := parseSeasonEpisode(tt.input)
			if season != tt.season || episode != tt.episode || ok != tt.ok {
				t.Errorf("parseSeasonEpisode(%q) = %d, %d, %v; want %d, %d, %v",
					tt.input, season, episode, ok, tt.season, tt.episode, tt.ok)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Enders.Game.2013.720p.BluRay.x264-SPARKS", "Enders Game"},
		{"Game.of.Thrones.S03E10.HDTV.x264-EVOLVE", "Game of Thrones"},
		{"The_Movie.1080p", "The Movie"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := fallbackTitle(tt.input); got != tt.want {
				t.Errorf("fallbackTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizers(t *testing.T) {
	resolutions := map[string]string{"4K": "2160p", "1080i": "1080p", "720P": "720p", "480p": "480p"}
	for in, want := range resolutions {
		if got := normalizeResolution(in); got != want {
			t.Errorf("normalizeResolution(%q) = %q, want %q", in, got, want)
		}
	}

	codecs := map[string]string{"x264": "H.264", "H.264": "H.264", "x265": "H.265", "HEVC": "H.265", "xvid": "XviD", "DivX": "DivX", "av1": "AV1"}
	for in, want := range codecs {
		if got := normalizeCodec(in); got != want {
			t.Errorf("normalizeCodec(%q) = %q, want %q", in, got, want)
		}
	}

	sources := map[string]string{"Blu-Ray": "BluRay", "BRRip": "BluRay", "WEBDL": "WEB-DL", "webrip": "WEBRip", "WEB": "WEB", "HDTV": "HDTV", "DVD": "DVD", "HDRip": "HDRip"}
	for in, want := range sources {
		if got := normalizeSource(in); got != want {
			t.Errorf("normalizeSource(%q) = %q, want %q", in, got, want)
		}
	}

	audio := map[string]string{"DD5.1": "Dolby Digital", "EAC3": "Dolby Digital Plus", "DTS-HD": "DTS", "TrueHD": "Dolby TrueHD", "aac": "AAC"}
	for in, want := range audio {
		if got := normalizeAudioCodec(in); got != want {
			t.Errorf("normalizeAudioCodec(%q) = %q, want %q", in, got, want)
		}
	}
}
