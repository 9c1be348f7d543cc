package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen shows frames in a dedicated full-screen terminal session. A
// background goroutine watches for q, Escape or Ctrl-C and closes the
// Quit channel; the caller keeps driving Draw until then.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	quit   chan struct{}
}

// NewScreen allocates a tcell screen without taking over the terminal
// yet.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocating screen: %w", err)
	}
	return &Screen{screen: screen, quit: make(chan struct{})}, nil
}

// Init takes over the terminal and starts the key watcher.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	s.screen.HideCursor()
	go s.watch()
	return nil
}

// Quit is closed when the user asks to leave.
func (s *Screen) Quit() <-chan struct{} {
	return s.quit
}

// Draw replaces the display with one frame, centered vertically.
func (s *Screen) Draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	_, height := s.screen.Size()
	row := height / 2
	col := 0
	for _, r := range frame {
		s.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	s.screen.Show()
}

// Fini restores the terminal. Safe to call after Quit fires.
func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) watch() {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				close(s.quit)
				return
			}
		case *tcell.EventResize:
			s.mu.Lock()
			s.screen.Sync()
			s.mu.Unlock()
		case nil:
			return
		}
	}
}
