package mpd

import (
	"strconv"
	"time"
)

// State is the player's transport state.
type State uint8

const (
	StateStop State = iota
	StatePlay
	StatePause
)

// String returns the protocol name of the state.
func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	default:
		return "stop"
	}
}

// Status is a snapshot of the player, parsed from a status reply.
// Elapsed and Total are valid only when their Has flag is set; a
// stopped player reports neither.
type Status struct {
	State   State
	Volume  int
	Repeat  bool
	Random  bool
	Single  bool
	Consume bool

	Elapsed    time.Duration
	HasElapsed bool
	Total      time.Duration
	HasTotal   bool

	QueueLen int
	SongID   int
	HasSong  bool
}

// Song is the currently playing song, parsed from a currentsong reply.
// Exists is false when the queue is empty or playback is stopped.
type Song struct {
	Exists      bool
	File        string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Date        string
}

func parseStatus(attrs map[string]string) Status {
	st := Status{}
	switch attrs["state"] {
	case "play":
		st.State = StatePlay
	case "pause":
		st.State = StatePause
	default:
		st.State = StateStop
	}
	st.Volume, _ = strconv.Atoi(attrs["volume"])
	st.Repeat = attrs["repeat"] == "1"
	st.Random = attrs["random"] == "1"
	st.Single = attrs["single"] == "1"
	st.Consume = attrs["consume"] == "1"
	st.QueueLen, _ = strconv.Atoi(attrs["playlistlength"])

	if v, ok := attrs["elapsed"]; ok {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			st.Elapsed = time.Duration(secs * float64(time.Second))
			st.HasElapsed = true
		}
	}
	if v, ok := attrs["duration"]; ok {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			st.Total = time.Duration(secs * float64(time.Second))
			st.HasTotal = true
		}
	}
	if v, ok := attrs["songid"]; ok {
		if id, err := strconv.Atoi(v); err == nil {
			st.SongID = id
			st.HasSong = true
		}
	}
	return st
}

func parseSong(attrs map[string]string) Song {
	file, ok := attrs["file"]
	if !ok {
		return Song{}
	}
	return Song{
		Exists:      true,
		File:        file,
		Title:       attrs["Title"],
		Artist:      attrs["Artist"],
		Album:       attrs["Album"],
		AlbumArtist: attrs["AlbumArtist"],
		Date:        attrs["Date"],
	}
}
