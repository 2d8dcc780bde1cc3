package ui

import (
	"github.com/Mshel/cascadia/internal/game"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScoreboardModel is a read-only viewer for the final standings.
type ScoreboardModel struct {
	Result game.Result

	table        table.Model
	ScreenWidth  int
	ScreenHeight int
}

func NewScoreboardModel(res game.Result) ScoreboardModel {
	headers := append([]string{"#"}, scoreColumns(res)...)
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: max(columnWidth(i), len(h))}
	}

	rows := scoreRows(res)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("4"))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(len(tableRows)+1),
		table.WithStyles(styles),
	)

	return ScoreboardModel{Result: res, table: t}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("FINAL SCORES")
	winners := winnerStyle.Render("Winner: " + m.Result.WinnerNames())
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press q, ESC or ENTER to quit.")

	content := lipgloss.JoinVertical(lipgloss.Center, title, m.table.View(), winners, instruction)
	box := lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content)
	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return box
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, box)
}
