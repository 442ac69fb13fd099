// Package inventoryui provides the Bubble Tea inventory browser.
package inventoryui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/charinv/internal/charset"
	"github.com/verte-zerg/charinv/internal/report"
)

const (
	tabOverview = iota
	tabReport
	tabTop
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea inventory browser.
type Model struct {
	summary     report.Summary
	generatedAt time.Time

	tabs      []string
	activeTab int
	viewports []viewport.Model
	topTable  table.Model

	width  int
	height int
}

// NewModel constructs a browser for a finished scan.
func NewModel(summary report.Summary, generatedAt time.Time) *Model {
	m := &Model{
		summary:     summary,
		generatedAt: generatedAt,
		tabs:        []string{"Overview", "Report", "Top Characters"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.viewports[tabOverview].SetContent(renderOverview(summary))
	m.viewports[tabReport].SetContent(report.Render(summary.Inventory, generatedAt))
	m.topTable = buildTopTable(summary.Inventory, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabTop {
				m.topTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabTop {
				m.topTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if m.activeTab == tabTop {
				m.topTable, cmd = m.topTable.Update(msg)
				return m, cmd
			}
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var body string
	if m.activeTab == tabTop {
		body = m.topTable.View()
	} else {
		body = m.viewports[m.activeTab].View()
	}
	footer := footerStyle.Render("←/→ switch tab • ↑/↓ scroll • g/G top/bottom • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), body, footer)
}

func (m *Model) bodyHeight() int {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	h := m.height - tabsHeight - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := m.bodyHeight()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = h
	}
	m.topTable.SetWidth(m.width)
	m.topTable.SetHeight(maxInt(1, h-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := (m.activeTab + delta + count) % count
	m.activeTab = next
	if m.activeTab == tabTop {
		m.topTable.Focus()
	} else {
		m.topTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderOverview(summary report.Summary) string {
	var buf bytes.Buffer
	if err := report.RenderSummary(&buf, summary); err != nil {
		return fmt.Sprintf("Failed to render summary: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildTopTable(inv *charset.Inventory, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Char", Width: 6},
		{Title: "Code", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Count", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(topRows(inv)),
		table.WithHeight(maxInt(1, height)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func topRows(inv *charset.Inventory) []table.Row {
	top := report.TopCharsByFrequency(inv, inv.Len())
	rows := make([]table.Row, 0, len(top))
	for i, cc := range top {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			report.DisplayChar(cc.Char),
			fmt.Sprintf("U+%04X", cc.Char),
			report.SectionTitle(charset.Classify(cc.Char)),
			fmt.Sprintf("%d", cc.Count),
		})
	}
	return rows
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
