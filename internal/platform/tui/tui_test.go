package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type countingRecorder struct {
	saved []storage.GameRecord
}

func (c *countingRecorder) SaveGame(rec storage.GameRecord) (int64, error) {
	c.saved = append(c.saved, rec)
	return int64(len(c.saved)), nil
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		dir  snake.Direction
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.DirUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.DirDown, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.DirLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.DirRight, true},
		{"wasd", runeKey('a'), snake.DirLeft, true},
		{"vim", runeKey('j'), snake.DirDown, true},
		{"unbound", runeKey('x'), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := keys.Direction(tt.msg)
			if ok != tt.ok || (ok && dir != tt.dir) {
				t.Errorf("Direction() = %v, %v; expected %v, %v", dir, ok, tt.dir, tt.ok)
			}
		})
	}
}

func TestKeyMapMenuAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('s'), MenuActionDown},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MenuAction(tt.msg); got != tt.expected {
			t.Errorf("MenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestBoardSize(t *testing.T) {
	tests := []struct {
		width, height int
		cols, rows    int
	}{
		{5, 4, minBoardCols, 7},
		{15, 15, minBoardCols, 18},
		{20, 5, 42, 8},
		{2, 1, minBoardCols, 6},
	}

	for _, tt := range tests {
		cols, rows := BoardSize(tt.width, tt.height)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("BoardSize(%d, %d) = %d, %d; expected %d, %d",
				tt.width, tt.height, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("EMOJI"); got != EmojiTheme {
		t.Errorf("ThemeByName(EMOJI) = %v", got.Name)
	}
	if got := ThemeByName("nope"); got != ASCIITheme {
		t.Errorf("ThemeByName(nope) = %v, expected ascii", got.Name)
	}
}

func newSnapshot(t *testing.T, w, h int) snake.Snapshot {
	t.Helper()
	s, err := session.New(session.Options{Width: w, Height: h, Seed: 1})
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	return s.Snapshot()
}

func TestDrawBoardASCII(t *testing.T) {
	snap := newSnapshot(t, 5, 5)
	cols, rows := BoardSize(5, 5)
	scr := core.NewScreen(cols, rows)

	DrawBoard(scr, snap, ASCIITheme, 0)

	if hud := scr.Row(0); !strings.HasPrefix(hud, " Length: 1  Tick: 0") {
		t.Errorf("HUD = %q", hud)
	}
	// The grid is centered in the padded board.
	top := scr.Row(1)
	if strings.TrimSpace(top) != "+----------+" || strings.Index(top, "+") != 10 {
		t.Errorf("top border = %q", top)
	}
	if bottom := strings.TrimSpace(scr.Row(rows - 1)); bottom != "+----------+" {
		t.Errorf("bottom border = %q", bottom)
	}

	// Snake at (4,2), food at (2,2).
	expected := "|. . * . @ |"
	if got := strings.TrimSpace(scr.Row(4)); got != expected {
		t.Errorf("row y=2 = %q, expected %q", got, expected)
	}
	if got := strings.TrimSpace(scr.Row(2)); got != "|. . . . . |" {
		t.Errorf("row y=0 = %q", got)
	}
}

func TestDrawBoardEmoji(t *testing.T) {
	snap := newSnapshot(t, 5, 5)
	cols, rows := BoardSize(5, 5)
	scr := core.NewScreen(cols, rows)

	DrawBoard(scr, snap, EmojiTheme, 0)

	expected := "|⬜⬜🍎⬜🐍|"
	if got := strings.TrimSpace(scr.Row(4)); got != expected {
		t.Errorf("row y=2 = %q, expected %q", got, expected)
	}
}

func TestDrawBoardGameOverOverlay(t *testing.T) {
	snap := newSnapshot(t, 10, 8)
	snap.Status = snake.StatusLost
	cols, rows := BoardSize(10, 8)
	scr := core.NewScreen(cols, rows)

	DrawBoard(scr, snap, ASCIITheme, 12)

	out := scr.String()
	for _, want := range []string{"Game Over", "Press R to restart", "LOST", "Tick: 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
}

func TestDrawBoardStatusFitsSmallGrids(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		status        snake.Status
		label, title  string
	}{
		{"won 10x10", 10, 10, snake.StatusWon, "WON", "You won!"},
		{"won 5x5", 5, 5, snake.StatusWon, "WON", "You won!"},
		{"lost 5x5", 5, 5, snake.StatusLost, "LOST", "Game Over"},
		{"lost 2x1", 2, 1, snake.StatusLost, "LOST", "Game Over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newSnapshot(t, tt.width, tt.height)
			snap.Status = tt.status
			cols, rows := BoardSize(tt.width, tt.height)
			scr := core.NewScreen(cols, rows)

			DrawBoard(scr, snap, ASCIITheme, 123)

			hud := scr.Row(0)
			if !strings.Contains(hud, tt.label) || !strings.Contains(hud, "Tick: 123") {
				t.Errorf("HUD = %q, expected %s and tick count", hud, tt.label)
			}
			out := scr.String()
			for _, want := range []string{tt.title, "Press R to restart"} {
				if !strings.Contains(out, want) {
					t.Errorf("board missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func newTestModel(t *testing.T, rec session.Recorder) Model {
	t.Helper()
	m, err := NewModel(Options{
		Width:    5,
		Height:   5,
		Seed:     7,
		Interval: time.Millisecond,
		Theme:    ASCIITheme,
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg{Model: m.id})
	if m.Session().Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.Session().Ticks())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m, cmd = update(t, m, TickMsg{Model: m.id + 1000})
	if m.Session().Ticks() != 1 || cmd != nil {
		t.Error("tick from another model should be ignored")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}

	m, cmd := update(t, m, TickMsg{Model: m.id})
	if m.Session().Ticks() != 0 {
		t.Error("paused model should not tick")
	}
	if cmd == nil {
		t.Error("tick loop should keep running while paused")
	}

	m, _ = update(t, m, runeKey('w'))
	if m.Session().Snapshot().NextDirection != snake.DirLeft {
		t.Error("direction keys should be ignored while paused")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.Paused() {
		t.Error("expected resumed")
	}
}

func TestModelRecordsAndRestarts(t *testing.T) {
	rec := &countingRecorder{}
	m := newTestModel(t, rec)

	// Restart is ignored while playing.
	first := m.Session()
	m, _ = update(t, m, runeKey('r'))
	if m.Session() != first {
		t.Fatal("restart should only apply after game over")
	}

	// Head up from (4,2) leaves the grid on the third tick.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{Model: m.id})
	}
	if !m.Session().Done() {
		t.Fatal("expected game over")
	}
	if len(rec.saved) != 1 || rec.saved[0].Outcome != session.OutcomeLost {
		t.Fatalf("saved = %+v, expected one lost game", rec.saved)
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("view should show game over")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.Session() == first || m.Session().Done() || m.Session().Ticks() != 0 {
		t.Error("restart should start a fresh game")
	}

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if len(rec.saved) != 1 {
		t.Errorf("fresh game without ticks should not be recorded, saved %d", len(rec.saved))
	}
}

func TestModelBackOnlyWhenAllowed(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored without AllowBack")
	}

	m.opts.AllowBack = true
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected back to menu")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 4})

	m, _ = update(t, m, TickMsg{Model: m.id})
	if m.Session().Ticks() != 0 {
		t.Error("model should not tick while the window is too small")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("expected resize hint")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, TickMsg{Model: m.id})
	if m.Session().Ticks() != 1 {
		t.Error("model should resume after resize")
	}
}

func TestGridMenuSelect(t *testing.T) {
	menu := NewGridMenuModel(DefaultPresets(12, 9), 80, 24)

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu = next.(GridMenuModel)
	next, _ = menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(GridMenuModel)

	sel := menu.Selected()
	if sel == nil || sel.Name != "Small" || sel.Width != 10 {
		t.Fatalf("Selected() = %+v, expected Small", sel)
	}
	if !strings.Contains(menu.View(), "12x9") {
		t.Error("menu should list the configured grid")
	}
}

func TestGridMenuCursorClamped(t *testing.T) {
	menu := NewGridMenuModel(DefaultPresets(15, 15), 80, 24)
	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	menu = next.(GridMenuModel)
	next, _ = menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(GridMenuModel)

	if sel := menu.Selected(); sel == nil || sel.Name != "Configured" {
		t.Errorf("Selected() = %+v, expected Configured", sel)
	}
}

func TestSessionModelFlow(t *testing.T) {
	sm := NewSessionModel(Options{Width: 6, Height: 6, Interval: time.Millisecond, Theme: ASCIITheme, AllowBack: true})

	next, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = next.(SessionModel)
	if !sm.InGame() || cmd == nil {
		t.Fatal("selecting a preset should start a game")
	}

	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = next.(SessionModel)
	if sm.InGame() {
		t.Fatal("esc should return to the menu")
	}

	next, cmd = sm.Update(runeKey('q'))
	sm = next.(SessionModel)
	if cmd == nil || sm.View() != "" {
		t.Error("q in the menu should quit")
	}
}

func TestSessionModelInvalidPresetStaysInMenu(t *testing.T) {
	// A 1x1 configured grid is rejected by the rules engine.
	sm := NewSessionModel(Options{Width: 1, Height: 1, Interval: time.Millisecond, Theme: ASCIITheme})

	next, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = next.(SessionModel)
	if sm.InGame() || cmd != nil {
		t.Fatal("an invalid grid should not start a game")
	}
	if !strings.Contains(sm.View(), "1x1") || !strings.Contains(sm.View(), "Select board size") {
		t.Errorf("menu with error expected, got:\n%s", sm.View())
	}

	// The fresh menu still works: pick Small.
	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyDown})
	sm = next.(SessionModel)
	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm = next.(SessionModel)
	if !sm.InGame() {
		t.Error("a valid preset should start a game after an error")
	}
}

func TestHistoryTable(t *testing.T) {
	records := []storage.GameRecord{
		{ID: 2, Width: 10, Height: 10, Outcome: "won", Length: 100, Ticks: 999, Player: "ann", CreatedAt: time.Now()},
		{ID: 1, Width: 15, Height: 15, Outcome: "lost", Length: 4, Ticks: 30, Player: "bob", CreatedAt: time.Now()},
	}
	out := HistoryTable(records, storage.Summary{Played: 2, Won: 1, Lost: 1, Longest: 100}, 0)

	for _, want := range []string{"Outcome", "10x10", "ann", "bob", "lost", "Played: 2", "Longest: 100"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}
}
