// Package cli implements a command-line UI for the game.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/tronGo/internal/ai/territory"
	. "github.com/janpfeifer/tronGo/internal/state"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

// CharsPerCell is the width of each grid cell when rendered.
const CharsPerCell = 2

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// terminalWidth returns the width of the terminal, or 0 if the output is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((width-blockWidth)/2, 0)
	var sb strings.Builder
	for ii, line := range lines {
		if ii > 0 {
			sb.WriteByte('\n')
		}
		if len(line) > 0 {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// UI prints rounds to a terminal.
type UI struct {
	color, clearScreen, rawMode bool
	out                         io.Writer

	// Names of the players, displayed in the status.
	Names [NumPlayers]string

	styles uiStyles
}

type uiStyles struct {
	empty, title, draw lipgloss.Style
	trail, head, label [NumPlayers]lipgloss.Style
}

// New creates a UI writing to stdout. If color is false, no ANSI sequences are used.
// If clearScreen is true, the screen is cleared before printing each round.
func New(color bool, clearScreen bool) *UI {
	ui := &UI{
		color:       color,
		clearScreen: clearScreen,
		out:         os.Stdout,
		Names:       [NumPlayers]string{"GREEN", "RED"},
	}
	ui.styles = newStyles(color)
	return ui
}

// WithWriter makes the UI print to w instead of stdout.
func (ui *UI) WithWriter(w io.Writer) *UI {
	ui.out = w
	return ui
}

// WithRawMode makes the UI end lines with "\r\n", needed while the terminal is in raw mode (see KeyReader).
func (ui *UI) WithRawMode(raw bool) *UI {
	ui.rawMode = raw
	return ui
}

// println writes the text followed by a new line.
func (ui *UI) println(text string) {
	text += "\n"
	if ui.rawMode {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	_, _ = io.WriteString(ui.out, text)
}

func newStyles(color bool) (s uiStyles) {
	s.empty = lipgloss.NewStyle()
	s.title = lipgloss.NewStyle()
	s.draw = lipgloss.NewStyle()
	for ii := range NumPlayers {
		s.trail[ii] = lipgloss.NewStyle()
		s.head[ii] = lipgloss.NewStyle()
		s.label[ii] = lipgloss.NewStyle()
	}
	if !color {
		return
	}
	playerColors := [NumPlayers]lipgloss.Color{"10", "9"} // Bright green, bright red.
	s.empty = s.empty.Foreground(lipgloss.Color("237"))
	s.title = s.title.Bold(true).Foreground(lipgloss.Color("13"))
	s.draw = s.draw.Bold(true).Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")).Padding(0, 2)
	for ii, c := range playerColors {
		s.trail[ii] = s.trail[ii].Background(c)
		s.head[ii] = s.head[ii].Background(lipgloss.Color("15")).Foreground(c).Bold(true)
		s.label[ii] = s.label[ii].Bold(true).Foreground(c)
	}
	return
}

// RenderGrid returns the grid as text, one line per row, with the heads highlighted.
func (ui *UI) RenderGrid(round *Round) string {
	grid := round.Grid()
	var sb strings.Builder
	for y := range grid.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range grid.Cols() {
			pos := Pos{x, y}
			sb.WriteString(ui.renderCell(round, pos, grid.At(pos)))
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(sb.String())
}

func (ui *UI) renderCell(round *Round, pos Pos, cell Cell) string {
	for player, head := range round.Heads {
		if head == pos {
			symbol := "@@"
			if round.Dead[player] {
				symbol = "XX"
			}
			return ui.styles.head[player].Render(symbol)
		}
	}
	owner := cell.Owner()
	if owner == PlayerInvalid {
		if ui.color {
			return ui.styles.empty.Render(" ·")
		}
		return " ."
	}
	if ui.color {
		return ui.styles.trail[owner].Render(strings.Repeat(" ", CharsPerCell))
	}
	return strings.Repeat(cell.String(), CharsPerCell)
}

// RenderStatus returns the players' names, scores and the free space each can still reach.
func (ui *UI) RenderStatus(round *Round, scores [NumPlayers]int) string {
	var lines []string
	for player := range NumPlayers {
		space := territory.Reachable(round.Grid(), round.Heads[player])
		lines = append(lines, fmt.Sprintf("%s  score: %d  space: %d",
			ui.styles.label[player].Render(fmt.Sprintf("%-12s", ui.Names[player])), scores[player], space))
	}
	return strings.Join(lines, "\n")
}

// Print the round: title, grid and status.
func (ui *UI) Print(title string, round *Round, scores [NumPlayers]int) {
	if ui.clearScreen {
		fmt.Fprint(ui.out, "\033[H\033[2J")
	}
	header := ui.styles.title.Render(fmt.Sprintf("%s - move #%d", title, round.MoveNumber))
	block := lipgloss.JoinVertical(lipgloss.Left, header, ui.RenderGrid(round), ui.RenderStatus(round, scores))
	ui.println(centerBlock(block, terminalWidth()))
}

// WinnerMessage returns the message for the end of the round.
func (ui *UI) WinnerMessage(round *Round) string {
	winner := round.Winner()
	if winner == PlayerInvalid {
		return ui.styles.draw.Render(fmt.Sprintf("*** DRAW: %s! ***", round.FinishReason()))
	}
	return ui.styles.label[winner].Render(fmt.Sprintf("*** %s WINS! (%s) ***", strings.ToUpper(ui.Names[winner]), round.FinishReason()))
}

// PrintWinner of the round.
func (ui *UI) PrintWinner(round *Round) {
	ui.println("\n" + centerBlock(ui.WinnerMessage(round), terminalWidth()) + "\n")
}

// PrintFinalScore prints the score at the end of a series of rounds.
func (ui *UI) PrintFinalScore(scores [NumPlayers]int, played int) {
	var msg string
	switch {
	case scores[0] > scores[1]:
		msg = ui.styles.label[0].Render(fmt.Sprintf("%s wins the tournament", ui.Names[0]))
	case scores[1] > scores[0]:
		msg = ui.styles.label[1].Render(fmt.Sprintf("%s wins the tournament", ui.Names[1]))
	default:
		msg = ui.styles.draw.Render("The tournament is a draw")
	}
	ui.println(centerBlock(fmt.Sprintf("%s: %d - %d after %d rounds", msg, scores[0], scores[1], played), terminalWidth()))
}
