// Package app wires sources, windows and renderers into the running
// program: it builds fragments from configuration, drives the tick
// loop for each output mode, and persists resume state for one-shot
// invocations.
package app
