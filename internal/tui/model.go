package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"country-explorer/internal/explorer"
	"country-explorer/internal/model"
	"country-explorer/internal/service"
	"country-explorer/internal/view"
)

// headerLines is the height taken by everything above and below the viewport.
const headerLines = 6

type sessionOpenedMsg struct{ snapshot *service.Snapshot }

type detailsLoadedMsg struct{ details *view.Details }

type errMsg struct{ err error }

// Model is the Bubble Tea model of the browser. All explorer state lives in the
// service session; the model only keeps the latest snapshot and UI focus.
type Model struct {
	ctx      context.Context
	explorer service.ExplorerService
	details  service.DetailsService
	styles   Styles

	snapshot *service.Snapshot
	detail   *view.Details
	cursor   int

	search    textinput.Model
	searching bool
	viewport  viewport.Model

	status string
	err    error
	width  int
	height int
}

func New(ctx context.Context, explorerService service.ExplorerService, detailsService service.DetailsService) Model {
	search := textinput.New()
	search.Placeholder = "Search by name"
	search.Prompt = "/ "

	return Model{
		ctx:      ctx,
		explorer: explorerService,
		details:  detailsService,
		styles:   DefaultStyles(),
		search:   search,
		viewport: viewport.New(80, 20),
		status:   "Loading countries...",
	}
}

// SessionID returns the explorer session backing the model, empty until the list has loaded.
func (m Model) SessionID() string {
	if m.snapshot == nil {
		return ""
	}
	return m.snapshot.SessionID
}

func (m Model) Init() tea.Cmd {
	return m.open
}

func (m Model) open() tea.Msg {
	snapshot, err := m.explorer.Open(m.ctx)
	if err != nil {
		return errMsg{err: err}
	}
	return sessionOpenedMsg{snapshot: snapshot}
}

func (m Model) loadDetails() tea.Msg {
	details, err := m.details.Load(m.ctx, m.SessionID())
	if err != nil {
		return errMsg{err: err}
	}
	return detailsLoadedMsg{details: details}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerLines, 1)
		m.refresh()
		return m, nil

	case sessionOpenedMsg:
		m.snapshot = msg.snapshot
		m.status = fmt.Sprintf("%d countries", msg.snapshot.Total)
		m.refresh()
		return m, nil

	case detailsLoadedMsg:
		m.detail = msg.details
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.snapshot == nil {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.snapshot.Screen == explorer.ScreenDetails {
			return m.updateDetails(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "r":
		regions := append([]string{""}, explorer.Regions()...)
		m.dispatch(explorer.RegionChanged{Region: next(regions, m.snapshot.Criteria.Region)})
	case "s":
		if len(m.snapshot.SubregionOptions) == 0 {
			m.status = "Select a region first"
			return m, nil
		}
		options := append([]string{""}, m.snapshot.SubregionOptions...)
		m.dispatch(explorer.SubregionChanged{Subregion: next(options, m.snapshot.Criteria.Subregion)})
	case "p":
		m.dispatch(explorer.PopulationChanged{Bracket: next(model.Brackets, m.snapshot.Criteria.Population)})
	case "o":
		m.dispatch(explorer.SortChanged{Key: next(model.SortKeys, m.snapshot.SortBy)})
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgdown", " ":
		m.moveCursor(m.viewport.Height)
	case "pgup":
		m.moveCursor(-m.viewport.Height)
	case "enter":
		if m.cursor >= len(m.snapshot.Items) {
			return m, nil
		}
		m.detail = nil
		if !m.dispatch(explorer.CountrySelected{Name: m.snapshot.Items[m.cursor].Name}) {
			return m, nil
		}
		return m, m.loadDetails
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.dispatch(explorer.SearchChanged{Term: m.search.Value()})
	}
	return m, cmd
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b", "backspace":
		m.dispatch(explorer.BackRequested{})
		m.detail = nil
		m.err = nil
	}
	return m, nil
}

// dispatch runs ev on the session and reports whether it was accepted.
// Control changes bring the cursor back to the top, like the page they re-render.
func (m *Model) dispatch(ev explorer.Event) bool {
	snapshot, err := m.explorer.Dispatch(m.ctx, m.SessionID(), ev)
	if err != nil {
		m.err = err
		return false
	}
	m.err = nil
	if !isNavigation(ev) {
		m.cursor = 0
	}
	m.snapshot = snapshot
	m.status = fmt.Sprintf("%d countries", snapshot.Total)
	m.refresh()
	return true
}

func isNavigation(ev explorer.Event) bool {
	switch ev.(type) {
	case explorer.ScrolledToBottom, explorer.BackRequested, explorer.CountrySelected:
		return true
	}
	return false
}

// moveCursor moves by delta rows. Moving down onto the last rendered row asks for the next page.
func (m *Model) moveCursor(delta int) {
	items := len(m.snapshot.Items)
	if items == 0 {
		return
	}
	target := m.cursor + delta
	if delta > 0 && target >= items-1 {
		m.dispatch(explorer.ScrolledToBottom{})
		items = len(m.snapshot.Items)
	}
	m.cursor = min(max(target, 0), items-1)
	m.refresh()
}

func (m *Model) refresh() {
	if m.snapshot == nil {
		return
	}
	rows := make([]string, 0, len(m.snapshot.Items))
	for i, item := range m.snapshot.Items {
		row := formatRow(item)
		if i == m.cursor {
			rows = append(rows, m.styles.Selected.Render("> "+row))
		} else {
			rows = append(rows, m.styles.Row.Render("  "+row))
		}
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func formatRow(item view.Item) string {
	flag := item.Flag
	if flag == "" {
		flag = "  "
	}
	location := item.Region
	if item.Subregion != "" {
		location += " / " + item.Subregion
	}
	return fmt.Sprintf("%s %-28s %-20s %-34s %15s %18s",
		flag, truncate(item.Name, 28), truncate(item.Capital, 20), truncate(location, 34), item.Population, item.Area)
}

func truncate(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l-3]) + "..."
	}
	return s
}

// next returns the option after current, wrapping around.
func next[T comparable](options []T, current T) T {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

func (m Model) View() string {
	if m.snapshot == nil {
		if m.err != nil {
			return m.styles.Error.Render("Failed to load countries: "+m.err.Error()) + "\n" + m.styles.Help.Render("q quit")
		}
		return m.status
	}
	if m.snapshot.Screen == explorer.ScreenDetails {
		return m.detailsView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var sb strings.Builder
	c := m.snapshot.Criteria

	sb.WriteString(m.styles.Title.Render("Country Explorer"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Control.Render(fmt.Sprintf("Region: %s | Subregion: %s | Population: %s | Sort: %s",
		orAny(c.Region), subregionLabel(c.Subregion, m.snapshot.SubregionOptions), c.Population.Label(), m.snapshot.SortBy.Label())))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusLine(fmt.Sprintf("%s, showing %d", m.status, len(m.snapshot.Items))))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("r region  s subregion  p population  o sort  / search  enter details  q quit"))
	return sb.String()
}

func (m Model) detailsView() string {
	var sb strings.Builder
	if m.detail == nil {
		if m.err != nil {
			sb.WriteString(m.statusLine(""))
		} else {
			sb.WriteString("Loading details...")
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("esc back  q quit"))
		return sb.String()
	}

	sb.WriteString(m.styles.Title.Render(m.detail.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Control.Render(m.detail.FlagURL))
	sb.WriteString("\n\n")
	for _, field := range m.detail.Fields() {
		sb.WriteString(m.styles.Label.Render(field[0] + ":"))
		sb.WriteString(field[1])
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("esc back  q quit"))
	return sb.String()
}

func (m Model) statusLine(text string) string {
	if m.err != nil {
		return m.styles.Error.Render("Error: " + m.err.Error())
	}
	return m.styles.Status.Render(text)
}

func orAny(s string) string {
	if s == "" {
		return "Any"
	}
	return s
}

func subregionLabel(subregion string, options []string) string {
	if len(options) == 0 {
		return "-"
	}
	return orAny(subregion)
}
