package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benjamonnguyen/pomomo-tui/view"
)

type redrawMsg struct{}

// Screen is the render target the timer view writes to. Writes arrive on the
// timer's callback goroutine, so they are stored under a lock and a redraw is
// signalled to the bubbletea loop instead of touching the model directly.
type Screen struct {
	mu           sync.Mutex
	clock        string
	progress     float64
	label        string
	announcement string

	redraw chan struct{}
	done   chan struct{}
	once   sync.Once
}

var _ view.Target = (*Screen)(nil)

func NewScreen() *Screen {
	return &Screen{
		redraw: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (s *Screen) SetClock(text string) {
	s.mu.Lock()
	s.clock = text
	s.mu.Unlock()
	s.signal()
}

func (s *Screen) SetProgress(fraction float64) {
	s.mu.Lock()
	s.progress = fraction
	s.mu.Unlock()
	s.signal()
}

func (s *Screen) SetButtonLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
	s.signal()
}

func (s *Screen) Announce(msg string) {
	s.mu.Lock()
	s.announcement = msg
	s.mu.Unlock()
	s.signal()
}

type screenState struct {
	Clock        string
	Progress     float64
	Label        string
	Announcement string
}

func (s *Screen) state() screenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return screenState{
		Clock:        s.clock,
		Progress:     s.progress,
		Label:        s.label,
		Announcement: s.announcement,
	}
}

// signal never blocks; a pending redraw already covers this write.
func (s *Screen) signal() {
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// Close releases a pending waitForRedraw.
func (s *Screen) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Screen) waitForRedraw() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.redraw:
			return redrawMsg{}
		case <-s.done:
			return nil
		}
	}
}
