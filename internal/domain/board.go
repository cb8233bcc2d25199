package domain

// Cell represents a board cell state.
type Cell uint8

const (
    Empty Cell = iota
    Human
    Computer
)

// Board is a fixed 3x3 board stored row-major, addressed by index 0..8
// (row = i/3, column = i%3).
type Board [9]Cell

// winLines are the 8 index triples that win the game if uniformly marked.
var winLines = [8][3]int{
    // rows
    {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
    // cols
    {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
    // diags
    {0, 4, 8}, {2, 4, 6},
}

// IsEmpty reports whether the cell at index i holds no mark.
func (b *Board) IsEmpty(i int) bool { return b[i] == Empty }

// Place writes mark into cell i. Callers must only place on cells known
// to be empty.
func (b *Board) Place(i int, mark Cell) { b[i] = mark }

// Remove clears cell i back to Empty. Strategy lookahead uses it to undo
// a hypothetical placement; nothing else should.
func (b *Board) Remove(i int) { b[i] = Empty }

// IsWinner reports whether any of the 8 win lines is fully occupied by
// mark. All lines are scanned on every call; at O(8) there is nothing
// worth caching.
func (b *Board) IsWinner(mark Cell) bool {
    for _, ln := range winLines {
        if b[ln[0]] == mark && b[ln[1]] == mark && b[ln[2]] == mark {
            return true
        }
    }
    return false
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// Reset sets all 9 cells back to Empty.
func (b *Board) Reset() { *b = Board{} }
