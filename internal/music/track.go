package music

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

var urlPattern = regexp.MustCompile(`^https?://(?:www\.)?.+`)

// NormalizeQuery strips Discord's <> link suppression and falls back to a
// YouTube search for anything that is not an absolute URL.
func NormalizeQuery(query string) string {
	query = strings.Trim(strings.TrimSpace(query), "<>")
	if !urlPattern.MatchString(query) {
		return "ytsearch:" + query
	}
	return query
}

// VolumePercent validates a normalized volume level and scales it to the
// audio node's percentage range. Valid inputs satisfy 0 < v <= 1.
func VolumePercent(v float64) (int, error) {
	if v <= 0 || v > 1 {
		return 0, ErrVolumeOutOfRange
	}
	return int(math.Round(v * 100)), nil
}

type trackUserData struct {
	Requester string `json:"requester"`
}

// StampRequester records the requesting user's ID in the track's opaque
// user-data payload so it travels with the track through the queue.
func StampRequester(track *lavalink.Track, userID string) {
	data, err := json.Marshal(trackUserData{Requester: userID})
	if err != nil {
		return
	}
	track.UserData = data
}

// Requester reads back the user ID stamped by StampRequester, or "".
func Requester(track lavalink.Track) string {
	var data trackUserData
	if err := json.Unmarshal(track.UserData, &data); err != nil {
		return ""
	}
	return data.Requester
}

// LoadKind mirrors the audio node's load-type classification.
type LoadKind int

const (
	LoadKindEmpty LoadKind = iota
	LoadKindTrack
	LoadKindSearch
	LoadKindPlaylist
)

// LoadResult is a resolution outcome: which kind of result the node returned
// and the tracks that came with it.
type LoadResult struct {
	Kind         LoadKind
	Tracks       []lavalink.Track
	PlaylistName string
}

// Enqueue stamps the requester on the result's tracks and appends them to the
// queue. A playlist contributes every track; single and search results
// contribute only the first. Returns the tracks actually enqueued.
func Enqueue(q *Queue, result *LoadResult, requester string) []lavalink.Track {
	if result == nil || len(result.Tracks) == 0 {
		return nil
	}
	tracks := result.Tracks
	if result.Kind != LoadKindPlaylist {
		tracks = tracks[:1]
	}
	for i := range tracks {
		StampRequester(&tracks[i], requester)
	}
	q.Add(tracks...)
	return tracks
}
