// Package source supplies the content a marquee scrolls. A Source hands
// the engine a freshly prepared string on demand; everything about how
// that string is obtained (a literal, a file, stdin, a subprocess, a Lua
// script, a music-player status line) stays behind the interface, so the
// windowing core never depends on a specific source.
//
// Sources are polled synchronously by the tick driver. A source that
// watches an external resource is responsible for its own
// synchronization; Poll only ever returns a snapshot.
package source
