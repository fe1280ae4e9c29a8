package music

import (
	"testing"

	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain text becomes a search", "never gonna give you up", "ytsearch:never gonna give you up"},
		{"http url passes through", "http://youtu.be/abc", "http://youtu.be/abc"},
		{"https url passes through", "https://www.youtube.com/watch?v=abc", "https://www.youtube.com/watch?v=abc"},
		{"angle brackets stripped", "<https://youtu.be/abc>", "https://youtu.be/abc"},
		{"whitespace trimmed before bracket strip", "  <https://youtu.be/abc>  ", "https://youtu.be/abc"},
		{"non-url scheme becomes a search", "ftp://example.com/song", "ytsearch:ftp://example.com/song"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.query))
		})
	}
}

func TestVolumePercent(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr bool
	}{
		{"full volume", 1, 100, false},
		{"half volume", 0.5, 50, false},
		{"rounds to nearest percent", 0.005, 1, false},
		{"tiny but positive", 0.001, 0, false},
		{"zero rejected", 0, 0, true},
		{"negative rejected", -0.3, 0, true},
		{"above one rejected", 1.5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VolumePercent(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrVolumeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequesterRoundTrip(t *testing.T) {
	track := namedTrack("a")
	StampRequester(&track, "user-42")

	assert.Equal(t, "user-42", Requester(track))
}

func TestRequesterMissingData(t *testing.T) {
	assert.Equal(t, "", Requester(lavalink.Track{}))
}

func TestEnqueuePlaylistAppendsAllWithRequester(t *testing.T) {
	q := &Queue{}
	result := &LoadResult{
		Kind:         LoadKindPlaylist,
		Tracks:       []lavalink.Track{namedTrack("a"), namedTrack("b"), namedTrack("c")},
		PlaylistName: "mix",
	}

	added := Enqueue(q, result, "user-1")

	require.Len(t, added, 3)
	assert.Equal(t, 3, q.Len())
	for {
		track, ok := q.Next()
		if !ok {
			break
		}
		assert.Equal(t, "user-1", Requester(track))
	}
}

func TestEnqueueSearchAppendsOnlyFirst(t *testing.T) {
	q := &Queue{}
	result := &LoadResult{
		Kind:   LoadKindSearch,
		Tracks: []lavalink.Track{namedTrack("first"), namedTrack("second")},
	}

	added := Enqueue(q, result, "user-1")

	require.Len(t, added, 1)
	assert.Equal(t, 1, q.Len())
	track, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "first", track.Info.Title)
	assert.Equal(t, "user-1", Requester(track))
}

func TestEnqueueEmptyResult(t *testing.T) {
	q := &Queue{}

	assert.Nil(t, Enqueue(q, &LoadResult{Kind: LoadKindEmpty}, "user-1"))
	assert.Nil(t, Enqueue(q, nil, "user-1"))
	assert.Zero(t, q.Len())
}
