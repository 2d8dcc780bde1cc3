package ui

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/Mshel/cascadia/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	scoreboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	scoreboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Align(lipgloss.Right)

	scoreboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

const (
	rankWidth  = 3
	nameWidth  = 15
	scoreWidth = 10
)

// scoreColumns lists the header of every scoreboard column after the rank.
func scoreColumns(res game.Result) []string {
	cols := []string{"Player", "Biomes"}
	cols = append(cols, res.Scorers...)
	return append(cols, "Majority", "Nature", "Total")
}

// scoreRows returns the standings ordered by total, best first.
func scoreRows(res game.Result) [][]string {
	standings := slices.Clone(res.Standings)
	slices.SortStableFunc(standings, func(a, b game.Standing) int {
		return cmp.Compare(b.Total, a.Total)
	})

	rows := make([][]string, 0, len(standings))
	for i, st := range standings {
		row := []string{strconv.Itoa(i + 1), st.Player.Name, strconv.Itoa(st.Biomes)}
		for _, pts := range st.Wildlife {
			row = append(row, strconv.Itoa(pts))
		}
		row = append(row,
			strconv.Itoa(st.Majority),
			strconv.Itoa(st.NatureTokens),
			strconv.Itoa(st.Total),
		)
		rows = append(rows, row)
	}
	return rows
}

func columnWidth(i int) int {
	switch i {
	case 0:
		return rankWidth
	case 1:
		return nameWidth
	default:
		return scoreWidth
	}
}

// RenderScoreboard draws the final standings as a static table.
func RenderScoreboard(res game.Result) string {
	var tableContent strings.Builder

	headers := append([]string{"#"}, scoreColumns(res)...)
	widths := make([]int, len(headers))
	cells := make([]string, len(headers))
	for i, h := range headers {
		widths[i] = max(columnWidth(i), lipgloss.Width(h)+2)
		cells[i] = scoreboardHeaderStyle.Width(widths[i]).Render(h)
	}
	tableContent.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")

	for _, row := range scoreRows(res) {
		cells := make([]string, len(row))
		for i, v := range row {
			style := scoreboardRowStyle.Width(widths[i])
			if i == 1 {
				style = style.Align(lipgloss.Left)
			}
			cells[i] = style.Render(v)
		}
		tableContent.WriteString(scoreboardBorderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)) + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("FINAL SCORES")
	winners := winnerStyle.Render("Winner: " + res.WinnerNames())

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		winners,
	)
	return lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content)
}
