package puzzle

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	// GridSize is the number of rows and columns of the board.
	GridSize = 3
	// TileCount is the number of tiles, and riddles, on the board.
	TileCount = GridSize * GridSize
)

// Tile is the render-ready view of one board cell.
type Tile struct {
	Index  int
	Row    int
	Col    int
	Solved bool
	Open   bool
	// Final marks the open tile when it is the last one left.
	Final bool
}

// Grid maps tile indices onto a square layout.
type Grid struct {
	Size int
}

// DefaultGrid is the 3x3 board.
var DefaultGrid = Grid{Size: GridSize}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Position returns the row and column of index.
func (g Grid) Position(index int) (row, col int) {
	return index / g.Size, index % g.Size
}

// BackgroundPosition returns the CSS background-position that shows the
// slice of a shared image belonging to index, assuming a background-size of
// BackgroundSize.
func (g Grid) BackgroundPosition(index int) string {
	row, col := g.Position(index)
	if g.Size <= 1 {
		return "0% 0%"
	}
	step := 100.0 / float64(g.Size-1)
	return fmt.Sprintf("%s%% %s%%", trimFloat(float64(col)*step), trimFloat(float64(row)*step))
}

// BackgroundSize returns the CSS background-size for the tiles of the grid.
func (g Grid) BackgroundSize() string {
	return fmt.Sprintf("%d%% %d%%", g.Size*100, g.Size*100)
}

// SliceLines cuts art into Size x Size blocks and returns the block at index.
// Lines are padded so every block has the same width and height.
func (g Grid) SliceLines(art []string, index int) []string {
	row, col := g.Position(index)
	width := lo.Max(lo.Map(art, func(line string, _ int) int { return len([]rune(line)) }))
	blockW := ceilDiv(width, g.Size)
	blockH := ceilDiv(len(art), g.Size)
	if blockW == 0 || blockH == 0 {
		return nil
	}

	return lo.Times(blockH, func(i int) string {
		y := row*blockH + i
		var line []rune
		if y < len(art) {
			line = []rune(art[y])
		}
		start := min(col*blockW, len(line))
		end := min(start+blockW, len(line))
		seg := string(line[start:end])
		return seg + strings.Repeat(" ", blockW-(end-start))
	})
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
