// Package mpd turns a Music Player Daemon server into a marquee content
// source. It speaks the MPD line protocol directly: a text handshake,
// newline-terminated commands, and key: value replies terminated by OK
// or an ACK error line.
//
// Content is produced by format strings with placeholders such as
// {artist} and {title}; see ParseFormat. A Registry deduplicates client
// connections so several fragments watching the same server share one
// socket.
package mpd
