// Package tui implements the interactive catalog browser: a Bubble Tea
// program that loads the animal dataset asynchronously, lets the user pick a
// region filter, and pages through the filtered view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
)

// AnimalLoader fetches the full dataset. The browse model calls it once at
// startup and again on every manual reload; overlapping calls are allowed
// and the last response to arrive wins.
type AnimalLoader func(ctx context.Context) ([]catalog.Animal, error)

// datasetMsg carries the outcome of one load cycle back into Update.
type datasetMsg struct {
	animals []catalog.Animal
	err     error
}

// Table column widths.
const (
	colNameWidth   = 16
	colTypeWidth   = 8
	colAgeWidth    = 12
	colSexWidth    = 8
	colRegionWidth = 18
	colComunaWidth = 16
	colStatusWidth = 10
	tableChrome    = 8
)

// BrowseModel is the Bubble Tea model for the catalog browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	ctx    context.Context
	loader AnimalLoader

	// view owns dataset, filter, and page state; the model only translates
	// key presses into view transitions and re-renders the snapshot.
	view *catalog.View

	state   ViewState
	loading *LoadingState
	err     error

	table        table.Model
	regions      []string // menu entries, index 0 is "all"
	regionCursor int
	selected     *catalog.Animal

	width  int
	height int
}

// NewBrowseModel creates the browse model. The first load cycle starts when
// the program calls Init.
func NewBrowseModel(ctx context.Context, loader AnimalLoader, pageSize int) BrowseModel {
	m := BrowseModel{
		ctx:     ctx,
		loader:  loader,
		view:    catalog.NewView(pageSize),
		state:   ViewStateLoading,
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.view.BeginLoad()
	return m
}

// Init starts the spinner and the first load cycle (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.loadCmd())
}

// loadCmd returns a command that runs one load cycle off the update loop.
func (m BrowseModel) loadCmd() tea.Cmd {
	ctx := m.ctx
	loader := m.loader
	return func() tea.Msg {
		animals, err := loader(ctx)
		return datasetMsg{animals: animals, err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil

	case datasetMsg:
		return m.handleDatasetLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.state == ViewStateLoading {
		return m, m.loading.Update(msg)
	}
	return m, nil
}

// handleDatasetLoaded installs the outcome of a load cycle.
func (m BrowseModel) handleDatasetLoaded(msg datasetMsg) (tea.Model, tea.Cmd) {
	m.view.FinishLoad(msg.animals, msg.err)

	if msg.err != nil {
		m.err = msg.err
		m.state = ViewStateError
		return m, nil
	}

	m.err = nil
	m.state = ViewStateList
	m.rebuildRegions()
	m.rebuildTable()
	return m, nil
}

//nolint:gocognit // Key dispatch per screen is inherently branchy.
func (m BrowseModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Quit works on every screen.
	if key == "q" || key == "ctrl+c" {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(key, msg)
	case ViewStateRegions:
		return m.handleRegionsKey(key)
	case ViewStateDetail, ViewStateError:
		return m.handleOverlayKey(key)
	case ViewStateLoading, ViewStateQuitting:
		return m, nil
	}
	return m, nil
}

func (m BrowseModel) handleListKey(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h", "pgup":
		m.view.PrevPage()
		m.rebuildTable()
	case "right", "l", "pgdown":
		m.view.NextPage()
		m.rebuildTable()
	case "g":
		m.view.GoToPage(1)
		m.rebuildTable()
	case "G":
		m.view.GoToPage(m.view.Snapshot().TotalPages)
		m.rebuildTable()
	case "f":
		m.state = ViewStateRegions
		m.regionCursor = m.currentRegionIndex()
	case "r":
		return m.startReload()
	case "enter":
		records := m.view.Snapshot().Records
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(records) {
			animal := records[cursor]
			m.selected = &animal
			m.state = ViewStateDetail
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) handleRegionsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.regionCursor > 0 {
			m.regionCursor--
		}
	case "down", "j":
		if m.regionCursor < len(m.regions)-1 {
			m.regionCursor++
		}
	case "enter":
		// Filter change and page reset land together inside SelectRegion, so
		// the next render can never pair the new filter with a stale page.
		m.view.SelectRegion(m.regions[m.regionCursor])
		m.state = ViewStateList
		m.rebuildTable()
	case "esc", "f":
		m.state = ViewStateList
	}
	return m, nil
}

func (m BrowseModel) handleOverlayKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "enter":
		if m.state == ViewStateDetail {
			m.selected = nil
			m.state = ViewStateList
		}
	case "r":
		if m.state == ViewStateError {
			return m.startReload()
		}
	}
	return m, nil
}

// startReload begins a fresh load cycle. The previous request, if still in
// flight, is neither cancelled nor deduplicated.
func (m BrowseModel) startReload() (tea.Model, tea.Cmd) {
	m.view.BeginLoad()
	m.state = ViewStateLoading
	m.loading = NewLoadingState()
	return m, tea.Batch(m.loading.Init(), m.loadCmd())
}

// currentRegionIndex returns the menu index of the active filter.
func (m BrowseModel) currentRegionIndex() int {
	for i, r := range m.regions {
		if r == m.view.Region() {
			return i
		}
	}
	return 0
}

// rebuildRegions recomputes the menu entries from the loaded dataset.
func (m *BrowseModel) rebuildRegions() {
	snap := m.view.Snapshot()
	m.regions = append([]string{catalog.RegionAll}, snap.Regions...)

	// The active filter may have vanished from the dataset after a reload;
	// the menu still needs a valid cursor.
	if m.regionCursor >= len(m.regions) {
		m.regionCursor = 0
	}
}

// rebuildTable reconstructs the table from the current snapshot page.
func (m *BrowseModel) rebuildTable() {
	snap := m.view.Snapshot()

	columns := []table.Column{
		{Title: "Name", Width: colNameWidth},
		{Title: "Type", Width: colTypeWidth},
		{Title: "Age", Width: colAgeWidth},
		{Title: "Sex", Width: colSexWidth},
		{Title: "Region", Width: colRegionWidth},
		{Title: "Comuna", Width: colComunaWidth},
		{Title: "Status", Width: colStatusWidth},
	}

	rows := make([]table.Row, len(snap.Records))
	for i, a := range snap.Records {
		rows[i] = table.Row{a.Name, a.Type, a.Age, a.Sex, a.Region, a.Comuna, a.Status}
	}

	height := m.height - tableChrome
	if height < 3 {
		height = 3
	}
	if height > len(rows)+1 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true)
	s.Selected = SelectedStyle
	t.SetStyles(s)

	m.table = t
}

// Snapshot exposes the underlying view snapshot, mainly for tests.
func (m BrowseModel) Snapshot() catalog.Snapshot {
	return m.view.Snapshot()
}

// State returns the current screen, mainly for tests.
func (m BrowseModel) State() ViewState {
	return m.state
}
