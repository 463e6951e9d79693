// Package draw renders vector shapes to a terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Grey maps a brightness (0 = black, 255 = white) onto the 24-step grey ramp
// of the xterm 256-colour palette.
func Grey(level uint8) int {
	return 232 + int(level)*23/255
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
