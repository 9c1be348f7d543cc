package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadState reads a resume file: the logical position, one space, then
// the cycle text the position is valid against.
func loadState(path string) (int, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	posStr, cycle, ok := strings.Cut(text, " ")
	if !ok {
		return 0, "", fmt.Errorf("%w: %s", ErrBadState, path)
	}
	pos, err := strconv.Atoi(posStr)
	if err != nil || pos < 0 {
		return 0, "", fmt.Errorf("%w: %s", ErrBadState, path)
	}
	return pos, cycle, nil
}

// saveState writes a resume file for loadState.
func saveState(path string, pos int, cycle string) error {
	data := fmt.Sprintf("%d %s\n", pos, cycle)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return WrapError(err, "writing state file %s", path)
	}
	return nil
}
