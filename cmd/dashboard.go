package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch interactive document browser (alias: dash)",
	Long: `Launch a full-screen interactive browser for your corpus.

The dashboard provides:
- Document list with live search, status filter and sort cycling
- On-demand AI summaries in a preview pane
- Quick delete with confirmation

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    s/Enter     Summarize selected document
    d           Delete document
    r           Refresh listing from the backend

  Views:
    /           Search mode
    f           Cycle status filter
    o           Cycle sort order
    Esc         Clear search / Exit mode
    ?           Show help

  General:
    q           Quit dashboard
    Ctrl+C      Force quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	listResp, err := listService.Execute(ctx, services.ListRequest{
		SortBy:  "date",
		Reverse: true,
	})
	if err != nil {
		requireAuthHint(err)
		return fmt.Errorf("failed to load documents: %w", err)
	}

	m := newDashboardModel(listResp.Documents)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}

	return nil
}

// Dashboard view modes
type dashMode int

const (
	dashModeList dashMode = iota
	dashModeSearch
	dashModeHelp
	dashModeConfirmDelete
)

// Dashboard model
type dashboardModel struct {
	docs          []domain.Document // All documents
	filtered      []domain.Document // Filtered/searched documents
	cursor        int
	offset        int // Scroll offset for the list
	mode          dashMode
	searchInput   textinput.Model
	help          help.Model
	keys          dashKeyMap
	width         int
	height        int
	ready         bool
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	deleteTarget  *domain.Document
	preview       dashPreview
	statusFilter  string
	sortBy        string
	sortReverse   bool
}

type dashPreview struct {
	docID    string
	content  string
	loading  bool
	spin     spinner.Model
	viewport viewport.Model
}

// dashStatusCycle drives the 'f' key: empty means no status filter.
var dashStatusCycle = []string{"", "uploaded", "processing", "ready", "failed"}

// Key bindings
type dashKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Summarize key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func (k dashKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Summarize, k.Delete, k.Search, k.Help, k.Quit}
}

func (k dashKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Summarize, k.Delete, k.Refresh},
		{k.Search, k.Filter, k.Sort},
		{k.Help, k.Escape, k.Quit},
	}
}

var dashKeys = dashKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Summarize: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "summarize"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter status"),
	),
	Sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "cycle sort"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

func newDashboardModel(docs []domain.Document) dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Search documents..."
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return dashboardModel{
		docs:        docs,
		filtered:    docs,
		mode:        dashModeList,
		searchInput: ti,
		help:        help.New(),
		keys:        dashKeys,
		sortBy:      "date",
		sortReverse: true,
		preview: dashPreview{
			spin:     sp,
			viewport: vp,
		},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

// Messages

type dashStatusMsg struct {
	message string
	style   lipgloss.Style
}

type dashReloadMsg struct{}

type dashReloadedMsg struct {
	docs []domain.Document
	err  error
}

type dashSummaryMsg struct {
	docID   string
	content string
	err     error
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		previewWidth := (msg.Width / 2) - 4
		previewHeight := msg.Height - 12
		if previewHeight < 10 {
			previewHeight = 10
		}
		m.preview.viewport.Width = previewWidth
		m.preview.viewport.Height = previewHeight
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case dashModeSearch:
			return m.updateSearch(msg)
		case dashModeHelp:
			return m.updateHelp(msg)
		case dashModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}

	case dashStatusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, nil

	case dashReloadMsg:
		return m, reloadDocuments()

	case dashReloadedMsg:
		if msg.err != nil {
			m.message = "Reload failed: " + msg.err.Error()
			m.messageStyle = ui.StyleError
			m.messageExpiry = time.Now().Add(3 * time.Second)
			return m, nil
		}
		m.docs = msg.docs
		m.applySearch()
		return m, nil

	case spinner.TickMsg:
		if !m.preview.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.preview.spin, cmd = m.preview.spin.Update(msg)
		return m, cmd

	case dashSummaryMsg:
		m.preview.loading = false
		if msg.err != nil {
			m.preview.content = "Summary failed: " + msg.err.Error()
		} else {
			m.preview.content = msg.content
		}
		m.preview.docID = msg.docID
		m.preview.viewport.SetContent(m.preview.content)
		m.preview.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.preview.viewport, cmd = m.preview.viewport.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.filtered) - 1
		m.adjustViewport()

	case msg.Type == tea.KeyPgUp:
		m.preview.viewport.ViewUp()

	case msg.Type == tea.KeyPgDown:
		m.preview.viewport.ViewDown()

	case key.Matches(msg, m.keys.Summarize):
		if len(m.filtered) > 0 {
			doc := m.filtered[m.cursor]
			m.preview.loading = true
			m.preview.docID = doc.ID
			return m, tea.Batch(loadSummary(doc), m.preview.spin.Tick)
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.filtered) > 0 {
			m.deleteTarget = &m.filtered[m.cursor]
			m.mode = dashModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Refresh):
		listService.Invalidate()
		return m, reloadDocuments()

	case key.Matches(msg, m.keys.Filter):
		next := 0
		for i, s := range dashStatusCycle {
			if s == m.statusFilter {
				next = (i + 1) % len(dashStatusCycle)
				break
			}
		}
		m.statusFilter = dashStatusCycle[next]
		m.applySearch()

	case key.Matches(msg, m.keys.Sort):
		switch m.sortBy {
		case "date":
			m.sortBy, m.sortReverse = "name", false
		case "name":
			m.sortBy, m.sortReverse = "size", true
		default:
			m.sortBy, m.sortReverse = "date", true
		}
		m.applySearch()

	case key.Matches(msg, m.keys.Search):
		m.mode = dashModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = dashModeHelp
	}

	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = dashModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch()
		m.cursor = 0
		m.offset = 0
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = dashModeList
		m.searchInput.Blur()
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch()
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = dashModeList
	}
	return m, nil
}

func (m dashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		doc := m.deleteTarget
		m.deleteTarget = nil
		m.mode = dashModeList
		return m, deleteDocument(doc)

	case key.Matches(msg, m.keys.Cancel):
		m.deleteTarget = nil
		m.mode = dashModeList
	}
	return m, nil
}

// Commands

func reloadDocuments() tea.Cmd {
	return func() tea.Msg {
		resp, err := listService.Execute(getContext(), services.ListRequest{
			SortBy:  "date",
			Reverse: true,
			NoCache: true,
		})
		if err != nil {
			return dashReloadedMsg{err: err}
		}
		return dashReloadedMsg{docs: resp.Documents}
	}
}

func loadSummary(doc domain.Document) tea.Cmd {
	return func() tea.Msg {
		content, err := apiClient.Summarize(getContext(), doc.ID)
		return dashSummaryMsg{docID: doc.ID, content: content, err: err}
	}
}

func deleteDocument(doc *domain.Document) tea.Cmd {
	return func() tea.Msg {
		if doc == nil {
			return nil
		}

		if err := apiClient.DeleteDocument(getContext(), doc.ID); err != nil {
			return dashStatusMsg{
				message: fmt.Sprintf("Failed to delete: %v", err),
				style:   ui.StyleError,
			}
		}

		listService.Invalidate()

		return tea.Sequence(
			func() tea.Msg {
				return dashStatusMsg{
					message: "Deleted: " + doc.Filename,
					style:   ui.StyleSuccess,
				}
			},
			func() tea.Msg {
				return dashReloadMsg{}
			},
		)()
	}
}

// Views

func (m dashboardModel) View() string {
	if !m.ready {
		return "\n  Loading dashboard..."
	}

	switch m.mode {
	case dashModeHelp:
		return m.viewHelp()
	case dashModeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m dashboardModel) viewList() string {
	// Split screen: list on left, summary preview on right
	listWidth := int(float64(m.width) * 0.5)
	previewWidth := m.width - listWidth - 2

	if listWidth < 30 {
		listWidth = 30
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	listContent := m.renderDocList(listWidth)

	if previewWidth < 40 {
		// Screen too narrow for the preview pane
		s.WriteString(listContent)
	} else {
		previewContent := m.renderPreview(previewWidth)

		listLines := strings.Split(listContent, "\n")
		previewLines := strings.Split(previewContent, "\n")

		maxLines := len(listLines)
		if len(previewLines) > maxLines {
			maxLines = len(previewLines)
		}

		for i := 0; i < maxLines; i++ {
			var listLine, previewLine string
			if i < len(listLines) {
				listLine = listLines[i]
			}
			if i < len(previewLines) {
				previewLine = previewLines[i]
			}
			s.WriteString(padRight(listLine, listWidth))
			s.WriteString("  ")
			s.WriteString(previewLine)
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m dashboardModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	title := titleStyle.Render("📄 Docan Dashboard")

	info := fmt.Sprintf("%d documents · sort: %s", len(m.filtered), m.sortBy)
	if m.statusFilter != "" {
		info += " · status: " + m.statusFilter
	}
	stats := statsStyle.Render(info)

	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		stats,
	)
}

func (m dashboardModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == dashModeSearch {
		borderColor = ui.ColorPrimary
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 4)

	prompt := ui.StyleMuted.Render("🔍 ")
	if m.mode == dashModeSearch {
		prompt = ui.StylePrimary.Render("🔍 ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != dashModeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}

	return searchStyle.Render(content)
}

func (m dashboardModel) renderDocList(width int) string {
	var s strings.Builder

	if len(m.filtered) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(2, 2).
			Width(width)

		if m.searchInput.Value() != "" {
			s.WriteString(emptyStyle.Render("No documents match your search."))
		} else {
			s.WriteString(emptyStyle.Render("No documents. Upload one with 'docan upload'."))
		}
		return s.String()
	}

	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	start := m.offset
	end := m.offset + listHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderDocItem(m.filtered[i], i == m.cursor, width))
	}

	return s.String()
}

func (m dashboardModel) renderDocItem(doc domain.Document, selected bool, width int) string {
	var cursor string
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)

	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		nameStyle = ui.StylePrimary.Copy().Bold(true)
	} else {
		cursor = "  "
	}

	maxNameLen := width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}

	line := fmt.Sprintf("%s%-*s %8s %s",
		cursor,
		maxNameLen,
		nameStyle.Render(ui.Truncate(doc.Filename, maxNameLen)),
		ui.StyleMuted.Render(domain.FormatSize(doc.SizeBytes)),
		ui.FormatStatus(string(doc.Status)),
	)

	return padRight(line, width) + "\n"
}

func (m dashboardModel) renderPreview(width int) string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(width - 2).
		Height(m.height - 12)

	emptyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Italic(true).
		Padding(1)

	if m.preview.loading {
		return borderStyle.Render(emptyStyle.Render(m.preview.spin.View() + " Summarizing..."))
	}
	if m.preview.content == "" {
		return borderStyle.Render(emptyStyle.Render("Press 's' to summarize the selected document"))
	}

	var s strings.Builder
	s.WriteString(ui.StyleHeader.Render("Summary"))
	s.WriteString("\n\n")
	s.WriteString(m.preview.viewport.View())
	return borderStyle.Render(s.String())
}

func (m dashboardModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	helpHint := ui.StyleMuted.Render("[↑↓/jk] Navigate  [s] Summarize  [d] Delete  [r] Refresh  [/] Search  [f] Filter  [o] Sort  [?] Help  [q] Quit")

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, helpHint))
}

func (m dashboardModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorAccent).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorSuccess).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault)

	s.WriteString(titleStyle.Render("Docan Dashboard - Keyboard Shortcuts"))
	s.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Navigation",
			keys: []struct{ key, desc string }{
				{"↑ / k", "Move cursor up"},
				{"↓ / j", "Move cursor down"},
				{"g", "Jump to top"},
				{"G", "Jump to bottom"},
				{"PgUp/PgDn", "Scroll summary pane"},
			},
		},
		{
			title: "Actions",
			keys: []struct{ key, desc string }{
				{"Enter / s", "Summarize selected document"},
				{"d", "Delete document (with confirmation)"},
				{"r", "Refresh listing from the backend"},
			},
		},
		{
			title: "Views & Search",
			keys: []struct{ key, desc string }{
				{"/", "Start search (type to filter)"},
				{"f", "Cycle the status filter"},
				{"o", "Cycle sort (date, name, size)"},
				{"Esc", "Exit search / Cancel"},
				{"?", "Show this help"},
			},
		},
		{
			title: "General",
			keys: []struct{ key, desc string }{
				{"q", "Quit dashboard"},
				{"Ctrl+C", "Force quit"},
			},
		},
	}

	for _, section := range sections {
		s.WriteString(sectionStyle.Render(section.title))
		s.WriteString("\n")
		for _, binding := range section.keys {
			s.WriteString("  ")
			s.WriteString(keyStyle.Render(binding.key))
			s.WriteString(descStyle.Render(binding.desc))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return to dashboard"))
	s.WriteString("\n")

	return s.String()
}

func (m dashboardModel) viewConfirmDelete() string {
	if m.deleteTarget == nil {
		return ""
	}

	var s strings.Builder

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60).
		Align(lipgloss.Center)

	content := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		ui.StyleWarning.Render("Delete Document?"),
		ui.StylePrimary.Render(m.deleteTarget.Filename),
		ui.StyleMuted.Render(domain.FormatSize(m.deleteTarget.SizeBytes)),
		lipgloss.NewStyle().Foreground(ui.ColorDefault).MarginTop(1).
			Render("Press 'y' to confirm, 'n' or ESC to cancel"),
	)

	box := boxStyle.Render(content)

	verticalPadding := (m.height - lipgloss.Height(box)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}
	for i := 0; i < verticalPadding; i++ {
		s.WriteString("\n")
	}

	s.WriteString(lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, box))

	return s.String()
}

// Helpers

func padRight(s string, width int) string {
	// Strip ANSI codes to get real length
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

func (m *dashboardModel) adjustViewport() {
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m *dashboardModel) applySearch() {
	query := strings.TrimSpace(m.searchInput.Value())
	m.filtered = services.FilterSort(m.docs, services.ListRequest{
		Query:   query,
		Status:  m.statusFilter,
		SortBy:  m.sortBy,
		Reverse: m.sortReverse,
	})

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}
