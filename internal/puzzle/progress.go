package puzzle

import "fmt"

// Progress is the solved/total pair shown above the board.
type Progress struct {
	Solved int
	Total  int
}

// Fraction returns Solved/Total in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Solved) / float64(p.Total)
	return max(0, min(1, f))
}

// Percent returns the fraction as a whole percentage.
func (p Progress) Percent() int {
	return int(p.Fraction()*100 + 0.5)
}

// Label returns "solved / total".
func (p Progress) Label() string {
	return fmt.Sprintf("%d / %d", p.Solved, p.Total)
}
