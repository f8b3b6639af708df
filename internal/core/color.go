package core

// Color names the role of a screen cell. Renderers map each role to a
// terminal color, so the buffer itself stays palette-free.
type Color uint8

// Cell roles.
const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorFood
	ColorEmpty
	ColorHUD
	ColorWon
	ColorLost
)
