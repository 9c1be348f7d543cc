package mpd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnmatchedBrace reports a stray '{' or '}' in a format string.
var ErrUnmatchedBrace = errors.New("unmatched '{' or '}'")

// UnknownPlaceholderError reports a placeholder name the formatter does
// not know.
type UnknownPlaceholderError struct {
	Name string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder %q", e.Name)
}

type placeholderKind uint8

const (
	phLiteral placeholderKind = iota
	phArtist
	phAlbumArtist
	phAlbum
	phTitle
	phFilename
	phDate
	phVolume
	phElapsed
	phTotal
	phSongPos
	phQueueLen
	phStateIcon
	phConsumeIcon
	phRandomIcon
	phRepeatIcon
	phSingleIcon
)

var placeholderNames = map[string]placeholderKind{
	"artist":       phArtist,
	"albumArtist":  phAlbumArtist,
	"album":        phAlbum,
	"title":        phTitle,
	"filename":     phFilename,
	"date":         phDate,
	"volume":       phVolume,
	"elapsedTime":  phElapsed,
	"totalTime":    phTotal,
	"songPosition": phSongPos,
	"queueLength":  phQueueLen,
	"stateIcon":    phStateIcon,
	"consumeIcon":  phConsumeIcon,
	"randomIcon":   phRandomIcon,
	"repeatIcon":   phRepeatIcon,
	"singleIcon":   phSingleIcon,
}

var placeholderStrings = map[placeholderKind]string{
	phArtist:      "artist",
	phAlbumArtist: "albumArtist",
	phAlbum:       "album",
	phTitle:       "title",
	phFilename:    "filename",
	phDate:        "date",
	phVolume:      "volume",
	phElapsed:     "elapsedTime",
	phTotal:       "totalTime",
	phSongPos:     "songPosition",
	phQueueLen:    "queueLength",
	phStateIcon:   "stateIcon",
	phConsumeIcon: "consumeIcon",
	phRandomIcon:  "randomIcon",
	phRepeatIcon:  "repeatIcon",
	phSingleIcon:  "singleIcon",
}

type token struct {
	kind placeholderKind
	text string // literal text when kind == phLiteral
}

// Format is a parsed format string: literal text interleaved with
// placeholders like {artist} or {stateIcon}. Doubled braces escape
// themselves.
type Format struct {
	tokens []token
}

// ParseFormat parses a format string. Unknown placeholder names and
// unbalanced braces are errors.
func ParseFormat(s string) (*Format, error) {
	var tokens []token
	var raw strings.Builder
	for i := 0; i < len(s); {
		switch s[i] {
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				raw.WriteByte('}')
				i += 2
				continue
			}
			return nil, ErrUnmatchedBrace
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				raw.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexAny(s[i+1:], "{}")
			if end < 0 || s[i+1+end] != '}' {
				return nil, ErrUnmatchedBrace
			}
			name := s[i+1 : i+1+end]
			kind, ok := placeholderNames[name]
			if !ok {
				return nil, &UnknownPlaceholderError{Name: name}
			}
			if raw.Len() > 0 {
				tokens = append(tokens, token{kind: phLiteral, text: raw.String()})
				raw.Reset()
			}
			tokens = append(tokens, token{kind: kind})
			i += end + 2
		default:
			raw.WriteByte(s[i])
			i++
		}
	}
	if raw.Len() > 0 {
		tokens = append(tokens, token{kind: phLiteral, text: raw.String()})
	}
	return &Format{tokens: tokens}, nil
}

// MustParseFormat is ParseFormat for known-good literals; it panics on
// error.
func MustParseFormat(s string) *Format {
	f, err := ParseFormat(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String renders the format back to its source form, re-escaping
// braces. ParseFormat(f.String()) reproduces f.
func (f *Format) String() string {
	var b strings.Builder
	for _, t := range f.tokens {
		if t.kind == phLiteral {
			escaped := strings.ReplaceAll(t.text, "{", "{{")
			escaped = strings.ReplaceAll(escaped, "}", "}}")
			b.WriteString(escaped)
			continue
		}
		b.WriteByte('{')
		b.WriteString(placeholderStrings[t.kind])
		b.WriteByte('}')
	}
	return b.String()
}

// Constant reports whether the format contains no placeholders and so
// can never change between polls.
func (f *Format) Constant() bool {
	for _, t := range f.tokens {
		if t.kind != phLiteral {
			return false
		}
	}
	return true
}

// Render evaluates the format against a player snapshot. Missing values
// (no current song, unset tags, unknown durations) render as the
// missing placeholder string.
func (f *Format) Render(song Song, st Status, icons IconSet, missing string) string {
	var b strings.Builder
	for _, t := range f.tokens {
		switch t.kind {
		case phLiteral:
			b.WriteString(t.text)
		case phArtist:
			writeOr(&b, song.Exists, song.Artist, missing)
		case phAlbumArtist:
			writeOr(&b, song.Exists, song.AlbumArtist, missing)
		case phAlbum:
			writeOr(&b, song.Exists, song.Album, missing)
		case phTitle:
			writeOr(&b, song.Exists, song.Title, missing)
		case phFilename:
			writeOr(&b, song.Exists, song.File, missing)
		case phDate:
			writeOr(&b, song.Exists, song.Date, missing)
		case phVolume:
			b.WriteString(strconv.Itoa(st.Volume))
		case phElapsed:
			writeDuration(&b, st.Elapsed, st.HasElapsed, missing)
		case phTotal:
			writeDuration(&b, st.Total, st.HasTotal, missing)
		case phSongPos:
			if st.HasSong {
				b.WriteString(strconv.Itoa(st.SongID))
			} else {
				b.WriteString(missing)
			}
		case phQueueLen:
			b.WriteString(strconv.Itoa(st.QueueLen))
		case phStateIcon:
			if r := icons.State.Icon(st.State); r != 0 {
				b.WriteRune(r)
			}
		case phConsumeIcon:
			icons.Consume.write(&b, st.Consume)
		case phRandomIcon:
			icons.Random.write(&b, st.Random)
		case phRepeatIcon:
			icons.Repeat.write(&b, st.Repeat)
		case phSingleIcon:
			icons.Single.write(&b, st.Single)
		}
	}
	return b.String()
}

func writeOr(b *strings.Builder, exists bool, value, missing string) {
	if exists && value != "" {
		b.WriteString(value)
	} else {
		b.WriteString(missing)
	}
}

func writeDuration(b *strings.Builder, d time.Duration, known bool, missing string) {
	if !known {
		b.WriteString(missing)
		return
	}
	secs := int(d / time.Second)
	fmt.Fprintf(b, "%02d:%02d", secs/60, secs%60)
}
