package domain

import (
    "errors"
    "fmt"
)

// Strategy selects the computer's next move. Every strategy runs the same
// two-phase safety check first (take an immediate win, else block the
// human's immediate win); they differ only in how they pick a cell once
// neither side threatens a line.
//
// A strategy is a pure function of the board: probes are always undone,
// and the final move is placed by the Game controller, not here.
type Strategy uint8

const (
    // Exhaustive scans cells in natural order 0..8 and falls back to
    // center, then corners, then the first empty cell.
    Exhaustive Strategy = iota
    // Priority scans and falls back along one fixed priority list,
    // center first, then corners, then edges.
    Priority
    // Heuristic weights cells by static position value and takes the
    // best empty one.
    Heuristic
)

var strategyNames = [...]string{"exhaustive", "priority", "heuristic"}

func (s Strategy) String() string {
    if int(s) < len(strategyNames) {
        return strategyNames[s]
    }
    return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ErrUnknownStrategy is returned by ParseStrategy for names outside the
// three canonical ones.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ParseStrategy maps a canonical name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
    for i, n := range strategyNames {
        if n == name {
            return Strategy(i), nil
        }
    }
    return Exhaustive, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists the canonical strategy names in declaration order.
// The slice is a copy; mutating it cannot corrupt the name table.
func Strategies() []string {
    out := make([]string, len(strategyNames))
    copy(out, strategyNames[:])
    return out
}

const center = 4

var (
    naturalOrder  = [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
    priorityOrder = [9]int{4, 0, 2, 6, 8, 1, 3, 5, 7}
    corners       = [4]int{0, 2, 6, 8}

    // Static position weights: center 4, corners 3, edges 2.
    cellWeight = [9]int{3, 2, 3, 2, 4, 2, 3, 2, 3}
)

// Move returns the index the strategy plays on b. It reports false only
// when the board has no empty cell, a state the controller classifies as
// a draw before ever asking for a move.
func (s Strategy) Move(b *Board) (int, bool) {
    order := naturalOrder[:]
    if s == Priority {
        order = priorityOrder[:]
    }
    if i, ok := completingMove(b, Computer, order); ok {
        return i, true
    }
    if i, ok := completingMove(b, Human, order); ok {
        return i, true
    }
    switch s {
    case Priority:
        return firstEmpty(b, priorityOrder[:])
    case Heuristic:
        return bestWeighted(b)
    default:
        if b.IsEmpty(center) {
            return center, true
        }
        if i, ok := firstEmpty(b, corners[:]); ok {
            return i, true
        }
        return firstEmpty(b, naturalOrder[:])
    }
}

// completingMove probes each empty cell in order with mark and returns
// the first one that completes a line. Every probe is undone before
// returning, so the board comes back exactly as it went in.
func completingMove(b *Board, mark Cell, order []int) (int, bool) {
    for _, i := range order {
        if !b.IsEmpty(i) {
            continue
        }
        b.Place(i, mark)
        wins := b.IsWinner(mark)
        b.Remove(i)
        if wins {
            return i, true
        }
    }
    return -1, false
}

func firstEmpty(b *Board, order []int) (int, bool) {
    for _, i := range order {
        if b.IsEmpty(i) {
            return i, true
        }
    }
    return -1, false
}

// bestWeighted returns the empty cell with the highest static weight.
// Ties go to the lowest index.
func bestWeighted(b *Board) (int, bool) {
    best, bestScore := -1, 0
    for i := range b {
        if b.IsEmpty(i) && cellWeight[i] > bestScore {
            best, bestScore = i, cellWeight[i]
        }
    }
    return best, best >= 0
}
