package keypad

// Matrix dimensions.
const (
	Rows    = 4
	Columns = 3
	Keys    = Rows * Columns
)

// Level is the electrical level of a matrix line.
type Level bool

// Levels
const (
	Low  Level = false
	High Level = true
)

// Active indicates the line is pulled low, which reads as pressed.
func (l Level) Active() bool {
	return l == Low
}

// Snapshot holds one reading of every matrix line in row-major order.
// The zero value reads every key as pressed; use IdleSnapshot for a
// released matrix.
type Snapshot [Keys]Level

// IdleSnapshot returns a Snapshot with all lines high.
func IdleSnapshot() Snapshot {
	var s Snapshot
	for i := range s {
		s[i] = High
	}
	return s
}

// Layout assigns a label to each matrix position, row-major.
type Layout [Keys]rune

// DefaultLayout is the standard 12-key telephone pad.
var DefaultLayout = Layout{
	'1', '2', '3',
	'4', '5', '6',
	'7', '8', '9',
	'*', '0', '#',
}

// IndexOf finds the position of a key label.
func (l Layout) IndexOf(key rune) (int, bool) {
	for i, k := range l {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// At returns the label at row and column.
func (l Layout) At(row, col int) rune {
	return l[row*Columns+col]
}
