package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState identifies which screen the browse TUI is showing.
type ViewState int

const (
	// ViewStateLoading means a load cycle is outstanding; the dataset is
	// not rendered while this state is active.
	ViewStateLoading ViewState = iota
	// ViewStateList is the paginated catalog table.
	ViewStateList
	// ViewStateRegions is the region filter menu.
	ViewStateRegions
	// ViewStateDetail shows a single animal.
	ViewStateDetail
	// ViewStateError is the load-failure screen.
	ViewStateError
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// Default display dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// LoadingState wraps the spinner shown while a load cycle is outstanding.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading indicator with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &LoadingState{spinner: s, message: "Loading animals..."}
}

// Init returns the command that starts the spinner ticking.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and message.
func (l *LoadingState) View() string {
	return "\n " + l.spinner.View() + " " + l.message + "\n"
}
