package release

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Belphemur/TorecSubtitles/internal/config"

	ptn "github.com/razsteinmetz/go-ptn"
)

// Kind is the declared media type a release string is guessed against.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindEpisode Kind = "episode"
)

// Info holds the attributes inferred from a release string.
// Zero values mean the attribute could not be inferred.
type Info struct {
	Kind         Kind   `json:"kind"`
	Title        string `json:"title,omitempty"`
	Year         int    `json:"year,omitempty"`
	Season       int    `json:"season,omitempty"`
	Episode      int    `json:"episode,omitempty"`
	Resolution   string `json:"resolution,omitempty"`  // 480p, 720p, 1080p, 2160p
	Source       string `json:"source,omitempty"`      // BluRay, WEB-DL, WEBRip, HDTV, ...
	VideoCodec   string `json:"videoCodec,omitempty"`  // H.264, H.265, XviD, DivX, AV1
	AudioCodec   string `json:"audioCodec,omitempty"`  // AAC, Dolby Digital, DTS, ...
	ReleaseGroup string `json:"releaseGroup,omitempty"`
}

// Guesser infers structured attributes from a release string.
type Guesser interface {
	Guess(name string, kind Kind) Info
}

var (
	seasonEpisodeRe = regexp.MustCompile(`(?i)\bs(\d{1,2})[ ._-]?e(\d{1,3})\b`)
	crossEpisodeRe  = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})\b`)
	yearRe          = regexp.MustCompile(`(?:^|[^\d])((?:19|20)\d{2})(?:[^\d]|$)`)
	resolutionRe    = regexp.MustCompile(`(?i)\b(2160p|1080[pi]|720p|480p|4k|uhd)\b`)
	sourceRe        = regexp.MustCompile(`(?i)\b(blu-?ray|bdrip|brrip|web-?dl|web\.dl|webrip|web|hdtv|dvdrip|hdrip|dvd)\b`)
	codecRe         = regexp.MustCompile(`(?i)\b(x\.?26[45]|h\.?26[45]|hevc|avc|xvid|divx|av1)\b`)
	audioRe         = regexp.MustCompile(`(?i)\b(aac|ac3|e-?ac-?3|ddp(?:5\.?1)?|dd(?:5\.?1)?|dts(?:-hd)?|truehd|flac|mp3)\b`)
	groupRe         = regexp.MustCompile(`-([A-Za-z0-9]+)$`)
	extensionRe     = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|m4v|wmv|ts|srt|sub|ass)$`)
	separatorsRe    = regexp.MustCompile(`[._]+`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

// PTNGuesser parses release strings with go-ptn and normalises the quality
// attributes with explicit patterns so they compare against video fields.
type PTNGuesser struct{}

// NewGuesser returns the default release guesser.
func NewGuesser() Guesser {
	return &PTNGuesser{}
}

// Guess implements Guesser.
func (g *PTNGuesser) Guess(name string, kind Kind) Info {
	logger := config.GetLogger()

	base := extensionRe.ReplaceAllString(filepath.Base(strings.TrimSpace(name)), "")
	base = strings.ReplaceAll(base, "_", ".")
	info := Info{Kind: kind}

	parsed, err := ptn.Parse(base)
	if err == nil {
		info.Title = cleanTitle(parsed.Title)
		info.Year = parsed.Year
		info.Season = parsed.Season
		info.Episode = parsed.Episode
		info.ReleaseGroup = strings.TrimSpace(parsed.Group)
	} else {
		logger.Debug().Err(err).Str("release", name).Msg("go-ptn could not parse release, using patterns only")
	}

	if info.Season == 0 || info.Episode == 0 {
		if season, episode, ok := parseSeasonEpisode(base); ok {
			info.Season, info.Episode = season, episode
		}
	}
	if info.Year == 0 {
		if m := yearRe.FindStringSubmatch(base); len(m) > 1 {
			info.Year, _ = strconv.Atoi(m[1])
		}
	}
	if info.ReleaseGroup == "" {
		if m := groupRe.FindStringSubmatch(base); len(m) > 1 {
			info.ReleaseGroup = m[1]
		}
	}
	if info.Title == "" {
		info.Title = fallbackTitle(base)
	}

	if m := resolutionRe.FindString(base); m != "" {
		info.Resolution = normalizeResolution(m)
	}
	if m := sourceRe.FindString(base); m != "" {
		info.Source = normalizeSource(m)
	}
	if m := codecRe.FindString(base); m != "" {
		info.VideoCodec = normalizeCodec(m)
	}
	if m := audioRe.FindString(base); m != "" {
		info.AudioCodec = normalizeAudioCodec(m)
	}

	// guessing as a movie never yields episode numbering
	if kind == KindMovie {
		info.Season = 0
		info.Episode = 0
	}

	logger.Debug().
		Str("release", name).
		Str("kind", string(kind)).
		Str("title", info.Title).
		Int("year", info.Year).
		Int("season", info.Season).
		Int("episode", info.Episode).
		Str("resolution", info.Resolution).
		Str("videoCodec", info.VideoCodec).
		Msg("Guessed release attributes")

	return info
}

func parseSeasonEpisode(name string) (int, int, bool) {
	for _, re := range []*regexp.Regexp{seasonEpisodeRe, crossEpisodeRe} {
		if m := re.FindStringSubmatch(name); len(m) > 2 {
			season, err1 := strconv.Atoi(m[1])
			episode, err2 := strconv.Atoi(m[2])
			if err1 == nil && err2 == nil {
				return season, episode, true
			}
		}
	}
	return 0, 0, false
}

// cleanTitle turns separators into single spaces.
func cleanTitle(title string) string {
	title = separatorsRe.ReplaceAllString(title, " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(title, " "))
}

// fallbackTitle keeps everything before the first recognised technical token.
func fallbackTitle(name string) string {
	cut := len(name)
	for _, re := range []*regexp.Regexp{seasonEpisodeRe, crossEpisodeRe, yearRe, resolutionRe, sourceRe, codecRe} {
		if loc := re.FindStringIndex(name); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}
	title := separatorsRe.ReplaceAllString(name[:cut], " ")
	title = strings.Trim(title, " -")
	return spacesRe.ReplaceAllString(title, " ")
}

func normalizeResolution(match string) string {
	upper := strings.ToUpper(match)
	switch {
	case strings.Contains(upper, "2160") || upper == "4K" || upper == "UHD":
		return "2160p"
	case strings.Contains(upper, "1080"):
		return "1080p"
	case strings.Contains(upper, "720"):
		return "720p"
	case strings.Contains(upper, "480"):
		return "480p"
	default:
		return match
	}
}

func normalizeSource(match string) string {
	upper := strings.ToUpper(match)
	switch {
	case strings.Contains(upper, "BLURAY") || strings.Contains(upper, "BLU-RAY") || strings.Contains(upper, "BDRIP") || strings.Contains(upper, "BRRIP"):
		return "BluRay"
	case strings.Contains(upper, "WEB-DL") || strings.Contains(upper, "WEBDL") || strings.Contains(upper, "WEB.DL"):
		return "WEB-DL"
	case strings.Contains(upper, "WEBRIP"):
		return "WEBRip"
	case upper == "WEB":
		return "WEB"
	case strings.Contains(upper, "HDTV"):
		return "HDTV"
	case strings.Contains(upper, "DVDRIP") || upper == "DVD":
		return "DVD"
	case strings.Contains(upper, "HDRIP"):
		return "HDRip"
	default:
		return match
	}
}

func normalizeCodec(match string) string {
	upper := strings.ToUpper(match)
	switch {
	case strings.Contains(upper, "265") || strings.Contains(upper, "HEVC"):
		return "H.265"
	case strings.Contains(upper, "264") || strings.Contains(upper, "AVC"):
		return "H.264"
	case upper == "XVID":
		return "XviD"
	case upper == "DIVX":
		return "DivX"
	case upper == "AV1":
		return "AV1"
	default:
		return match
	}
}

func normalizeAudioCodec(match string) string {
	upper := strings.ToUpper(match)
	switch {
	case strings.HasPrefix(upper, "DDP") || strings.Contains(upper, "EAC3") || strings.Contains(upper, "E-AC-3") || strings.Contains(upper, "EAC-3"):
		return "Dolby Digital Plus"
	case upper == "AC3" || strings.HasPrefix(upper, "DD"):
		return "Dolby Digital"
	case strings.HasPrefix(upper, "DTS"):
		return "DTS"
	case upper == "TRUEHD":
		return "Dolby TrueHD"
	case upper == "AAC":
		return "AAC"
	case upper == "FLAC":
		return "FLAC"
	case upper == "MP3":
		return "MP3"
	default:
		return match
	}
}
