package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Theme selects the glyphs used for board cells.
type Theme struct {
	Name  string
	Head  rune
	Body  rune
	Food  rune
	Empty rune
	Wide  bool // glyphs occupy two terminal columns
}

// Built-in themes.
var (
	ASCIITheme = Theme{Name: "ascii", Head: '@', Body: 'o', Food: '*', Empty: '.'}
	EmojiTheme = Theme{Name: "emoji", Head: '🐍', Body: '🟩', Food: '🍎', Empty: '⬜', Wide: true}
)

// ThemeByName returns the named theme, defaulting to ASCII.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, EmojiTheme.Name) {
		return EmojiTheme
	}
	return ASCIITheme
}

const (
	hudHeight     = 1
	overlayHeight = 5

	// minBoardCols fits the HUD with its status label and the game over
	// overlay on the smallest grids.
	minBoardCols = 32
)

// BoardSize returns the screen columns and rows needed to draw a grid with
// its HUD line and border. Every cell takes two columns; narrow grids are
// padded to minBoardCols and drawn centered, short grids leave room below
// the HUD for the game over overlay.
func BoardSize(width, height int) (cols, rows int) {
	return max(2*width+2, minBoardCols), max(height+2, overlayHeight) + hudHeight
}

// boardOffset returns the column where the grid border starts.
func boardOffset(width int) int {
	cols, _ := BoardSize(width, 0)
	return (cols - (2*width + 2)) / 2
}

// hudText formats the status line. The status label comes first so it is
// never the part that gets clipped.
func hudText(snap snake.Snapshot, ticks int) string {
	hud := fmt.Sprintf("Length: %d  Tick: %d", len(snap.Snake), ticks)
	if label := statusLabel(snap.Status); label != "" {
		hud = label + "  " + hud
	}
	return " " + hud
}

// DrawBoard draws the HUD, border, snake and food for snap into dst.
// dst should be at least BoardSize(snap.Width, snap.Height).
func DrawBoard(dst *core.Screen, snap snake.Snapshot, theme Theme, ticks int) {
	dst.Clear()

	dst.DrawTextColored(0, 0, hudText(snap, ticks), ColorForStatus(snap.Status))

	ox := boardOffset(snap.Width)
	dst.DrawBox(ox, hudHeight, 2*snap.Width+2, snap.Height+2, false)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			drawCell(dst, ox, x, y, theme.Empty, core.ColorEmpty, theme)
		}
	}

	if snap.HasFood {
		drawCell(dst, ox, snap.Food.X, snap.Food.Y, theme.Food, core.ColorFood, theme)
	}

	// Tail first so the head is drawn last.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if i == 0 {
			drawCell(dst, ox, seg.X, seg.Y, theme.Head, core.ColorHead, theme)
		} else {
			drawCell(dst, ox, seg.X, seg.Y, theme.Body, core.ColorBody, theme)
		}
	}

	switch snap.Status {
	case snake.StatusWon:
		drawOverlay(dst, "You won!", "Press R to restart")
	case snake.StatusLost:
		drawOverlay(dst, "Game Over", "Press R to restart")
	}
}

// drawCell maps a grid cell to its two screen columns inside the border,
// which starts at column ox.
func drawCell(dst *core.Screen, ox, x, y int, r rune, c core.Color, theme Theme) {
	col := ox + 1 + 2*x
	row := hudHeight + 1 + y
	if theme.Wide {
		dst.SetWide(col, row, r, c)
		return
	}
	dst.SetColored(col, row, r, c)
	dst.Set(col+1, row, ' ')
}

// drawOverlay draws a message box centered below the HUD.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := overlayHeight
	boxX := (w - boxW) / 2
	boxY := hudHeight + max(h-hudHeight-boxH, 0)/2

	dst.DrawBox(boxX, boxY, boxW, boxH, true)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

func statusLabel(s snake.Status) string {
	switch s {
	case snake.StatusWon:
		return "WON"
	case snake.StatusLost:
		return "LOST"
	default:
		return ""
	}
}

// ColorForStatus returns the HUD color for a status.
func ColorForStatus(s snake.Status) core.Color {
	switch s {
	case snake.StatusWon:
		return core.ColorWon
	case snake.StatusLost:
		return core.ColorLost
	default:
		return core.ColorHUD
	}
}

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorWon:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	core.ColorLost:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
