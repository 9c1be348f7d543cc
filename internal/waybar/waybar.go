package waybar

import (
	"encoding/json"
	"fmt"
	"io"
)

// Frame is one update for a waybar custom module. Tooltip is omitted
// when empty so waybar falls back to no tooltip at all.
type Frame struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Writer streams frames as newline-delimited JSON.
type Writer struct {
	enc *json.Encoder
}

// NewWriter wraps w. Frames pass through unescaped so icon runes and
// angle brackets survive; waybar parses raw JSON, not HTML.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write emits one frame followed by a newline.
func (w *Writer) Write(f Frame) error {
	if err := w.enc.Encode(f); err != nil {
		return fmt.Errorf("encoding waybar frame: %w", err)
	}
	return nil
}
