package session

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestEncodeDecodeIntents(t *testing.T) {
	intents := []Intent{
		{Tick: 0, Dir: snake.DirUp},
		{Tick: 3, Dir: snake.DirLeft},
		{Tick: 3, Dir: snake.DirDown},
		{Tick: 12, Dir: snake.DirRight},
	}

	encoded := EncodeIntents(intents)
	if encoded != "0U,3L,3D,12R" {
		t.Errorf("EncodeIntents() = %q", encoded)
	}

	decoded, err := DecodeIntents(encoded)
	if err != nil {
		t.Fatalf("DecodeIntents() failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, intents) {
		t.Errorf("DecodeIntents() = %v, expected %v", decoded, intents)
	}
}

func TestDecodeIntentsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing tick", "U"},
		{"bad tick", "xU"},
		{"negative tick", "-1U"},
		{"bad direction", "3Q"},
		{"out of order", "5U,2L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeIntents(tt.input); err == nil {
				t.Errorf("DecodeIntents(%q) should fail", tt.input)
			}
		})
	}

	if got, err := DecodeIntents("  "); err != nil || got != nil {
		t.Errorf("DecodeIntents(blank) = %v, %v; expected nil, nil", got, err)
	}
}

func TestParseScript(t *testing.T) {
	intents, ticks, err := ParseScript("..u .\nL.")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if ticks != 6 {
		t.Errorf("ticks = %d, expected 6", ticks)
	}
	expected := []Intent{{Tick: 2, Dir: snake.DirUp}, {Tick: 4, Dir: snake.DirLeft}}
	if !reflect.DeepEqual(intents, expected) {
		t.Errorf("intents = %v, expected %v", intents, expected)
	}

	if _, _, err := ParseScript("..x"); err == nil {
		t.Error("unknown script character should fail")
	}
}

func TestScriptReplaysLikeLivePlay(t *testing.T) {
	intents, ticks, err := ParseScript(".U..")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	scripted, err := Replay(Options{Width: 5, Height: 5, Seed: 7}, intents, ticks, nil)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	live := newTestSession(t, 5, 5, 7)
	live.Tick()
	live.ChangeDirection(snake.DirUp)
	live.Tick()
	live.Tick()
	live.Tick()

	if !scripted.Snapshot().Equal(live.Snapshot()) {
		t.Errorf("scripted:\n%s\nlive:\n%s", scripted.Snapshot().DebugString(), live.Snapshot().DebugString())
	}
}
