package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/TorecSubtitles/internal/config"
	"github.com/Belphemur/TorecSubtitles/internal/models"
)

// ParseSuggestions decodes the autocomplete endpoint payload.
func ParseSuggestions(body io.Reader) ([]models.Suggestion, error) {
	logger := config.GetLogger()

	var resp models.SuggestionResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		logger.Error().Err(err).Msg("Failed to decode autocomplete response")
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	logger.Debug().Int("suggestions", len(resp.Suggestions)).Msg("Decoded autocomplete response")
	return resp.Suggestions, nil
}
