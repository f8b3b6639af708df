package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Intent is an accepted direction change and the number of completed ticks
// at the moment it was submitted.
type Intent struct {
	Tick int
	Dir  snake.Direction
}

// EncodeIntents serializes an intent log as "3U,9L".
func EncodeIntents(intents []Intent) string {
	parts := make([]string, len(intents))
	for i, in := range intents {
		parts[i] = strconv.Itoa(in.Tick) + string(in.Dir.Letter())
	}
	return strings.Join(parts, ",")
}

// DecodeIntents parses the EncodeIntents format. Ticks must not decrease.
func DecodeIntents(s string) ([]Intent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	intents := make([]Intent, 0, len(parts))
	last := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) < 2 {
			return nil, fmt.Errorf("session: malformed intent %q", part)
		}
		tick, err := strconv.Atoi(part[:len(part)-1])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("session: malformed intent tick %q", part)
		}
		dir, err := snake.ParseDirection(part[len(part)-1:])
		if err != nil {
			return nil, fmt.Errorf("session: malformed intent %q: %w", part, err)
		}
		if tick < last {
			return nil, fmt.Errorf("session: intent %q out of order", part)
		}
		last = tick
		intents = append(intents, Intent{Tick: tick, Dir: dir})
	}
	return intents, nil
}

// ParseScript turns a move script into an intent log and a tick count.
// Each character is one tick: '.' just ticks, a direction letter (U, D, L, R)
// submits that intent first. Whitespace is ignored.
func ParseScript(script string) ([]Intent, int, error) {
	var intents []Intent
	ticks := 0
	for i, ch := range script {
		switch ch {
		case ' ', '\t', '\n', '\r':
			continue
		case '.':
		default:
			dir, err := snake.ParseDirection(string(ch))
			if err != nil {
				return nil, 0, fmt.Errorf("session: script position %d: %w", i, err)
			}
			intents = append(intents, Intent{Tick: ticks, Dir: dir})
		}
		ticks++
	}
	return intents, ticks, nil
}
