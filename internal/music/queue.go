package music

import (
	"sync"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

// LoopMode controls what happens when a track finishes.
type LoopMode int

const (
	LoopNone LoopMode = iota
	LoopTrack
)

// Queue is the client-side playback queue for one guild. Lavalink keeps no
// queue of its own; tracks are popped here only by the manager's track-end
// advance.
type Queue struct {
	mu     sync.Mutex
	tracks []lavalink.Track
	loop   LoopMode
}

// Add appends tracks in order.
func (q *Queue) Add(tracks ...lavalink.Track) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = append(q.tracks, tracks...)
}

// Next pops the head of the queue.
func (q *Queue) Next() (lavalink.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tracks) == 0 {
		return lavalink.Track{}, false
	}
	track := q.tracks[0]
	q.tracks = q.tracks[1:]
	return track, true
}

func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tracks)
}

func (q *Queue) Loop() LoopMode {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loop
}

// Advance decides what plays after finished ends: the same track again under
// loop-track, otherwise the queue head. ok=false means the queue is done.
func (q *Queue) Advance(finished lavalink.Track) (lavalink.Track, bool) {
	if q.Loop() == LoopTrack {
		return finished, true
	}
	return q.Next()
}

// ToggleLoop flips between no loop and loop-current-track, returning the new
// mode.
func (q *Queue) ToggleLoop() LoopMode {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.loop == LoopNone {
		q.loop = LoopTrack
	} else {
		q.loop = LoopNone
	}
	return q.loop
}
