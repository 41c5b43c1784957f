package grpc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/TorecSubtitles/internal/models"
	"github.com/Belphemur/TorecSubtitles/internal/video"
)

// listRequest is the decoded ListSubtitles request.
type listRequest struct {
	Name      string
	Languages []language.Tag
}

// convertListRequestFromStruct decodes a request. Languages are optional.
func convertListRequestFromStruct(req *structpb.Struct) (listRequest, error) {
	fields := req.GetFields()

	name := strings.TrimSpace(fields["name"].GetStringValue())
	if name == "" {
		return listRequest{}, errors.New("name is required")
	}

	out := listRequest{Name: name}
	for _, v := range fields["languages"].GetListValue().GetValues() {
		tag, err := language.Parse(v.GetStringValue())
		if err != nil {
			return listRequest{}, fmt.Errorf("invalid language %q: %w", v.GetStringValue(), err)
		}
		out.Languages = append(out.Languages, tag)
	}
	return out, nil
}

// convertVideoToMap converts a video to its JSON-like representation
func convertVideoToMap(v video.Video) map[string]any {
	m := map[string]any{"name": v.GetName()}

	var base video.Base
	switch v := v.(type) {
	case *video.Episode:
		base = v.Base
		m["type"] = "episode"
		m["series"] = v.Series
		m["season"] = v.Season
		m["episode"] = v.Episode
		if v.Year != 0 {
			m["year"] = v.Year
		}
	case *video.Movie:
		base = v.Base
		m["type"] = "movie"
		m["title"] = v.Title
		if v.Year != 0 {
			m["year"] = v.Year
		}
	}

	setIfNotEmpty(m, "source", base.Source)
	setIfNotEmpty(m, "release_group", base.ReleaseGroup)
	setIfNotEmpty(m, "resolution", base.Resolution)
	setIfNotEmpty(m, "video_codec", base.VideoCodec)
	setIfNotEmpty(m, "audio_codec", base.AudioCodec)
	return m
}

// convertSubtitleToMap converts a subtitle and its match labels
func convertSubtitleToMap(sub models.Subtitle, matches video.MatchSet) map[string]any {
	releases := make([]any, len(sub.Releases))
	for i, r := range sub.Releases {
		releases[i] = map[string]any{
			"name":          r.Name,
			"download_code": r.DownloadCode,
		}
	}

	m := map[string]any{
		"id":               sub.ID,
		"language":         sub.Language.String(),
		"hearing_impaired": sub.HearingImpaired,
		"page_link":        sub.PageLink,
		"title":            sub.Title,
		"releases":         releases,
		"matches":          stringsToList(matches.Sorted()),
	}
	if sub.Series != "" {
		m["series"] = sub.Series
		m["season"] = sub.Season
		m["episode"] = sub.Episode
	}
	return m
}

// convertListResponseToStruct builds the ListSubtitles response.
func convertListResponseToStruct(v video.Video, subs []models.Subtitle, matches []video.MatchSet) (*structpb.Struct, error) {
	items := make([]any, len(subs))
	for i, sub := range subs {
		items[i] = convertSubtitleToMap(sub, matches[i])
	}
	return structpb.NewStruct(map[string]any{
		"video":     convertVideoToMap(v),
		"subtitles": items,
	})
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// structpb only accepts []any for lists.
func stringsToList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
