// Package render writes scroll frames to a terminal, either in place on
// one line or as a full-screen tcell application.
package render
