package models

import (
	"maps"
	"slices"
)

// EpisodeIndex maps season -> episode -> episode page URL.
type EpisodeIndex map[int]map[int]string

// Set records the page for an episode.
func (idx EpisodeIndex) Set(season, episode int, url string) {
	episodes, ok := idx[season]
	if !ok {
		episodes = make(map[int]string)
		idx[season] = episodes
	}
	episodes[episode] = url
}

// SetRange maps every episode from first to last, inclusive, to url.
func (idx EpisodeIndex) SetRange(season, first, last int, url string) {
	for ep := first; ep <= last; ep++ {
		idx.Set(season, ep, url)
	}
}

// Lookup returns the page for an episode.
func (idx EpisodeIndex) Lookup(season, episode int) (string, bool) {
	episodes, ok := idx[season]
	if !ok {
		return "", false
	}
	url, ok := episodes[episode]
	return url, ok
}

// Seasons returns the indexed seasons in ascending order.
func (idx EpisodeIndex) Seasons() []int {
	return slices.Sorted(maps.Keys(idx))
}
