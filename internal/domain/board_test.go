package domain

import "testing"

func TestWinLinesForBothMarks(t *testing.T) {
    lines := [8][3]int{
        // rows
        {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
        // cols
        {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
        // diags
        {0, 4, 8}, {2, 4, 6},
    }
    for _, mark := range []Cell{Human, Computer} {
        for _, ln := range lines {
            var b Board
            for _, i := range ln {
                b.Place(i, mark)
            }
            if !b.IsWinner(mark) {
                t.Fatalf("expected %v to win on line %v", mark, ln)
            }
            other := Human
            if mark == Human {
                other = Computer
            }
            if b.IsWinner(other) {
                t.Fatalf("did not expect %v to win on line %v", other, ln)
            }
        }
    }
}

func TestPartialLineIsNotAWin(t *testing.T) {
    var b Board
    b.Place(0, Human)
    b.Place(1, Human)
    if b.IsWinner(Human) {
        t.Fatalf("two marks on a line should not win")
    }
    b.Place(2, Computer)
    if b.IsWinner(Human) || b.IsWinner(Computer) {
        t.Fatalf("mixed line should not win for either mark")
    }
}

func TestIsEmptyAndPlaceRemove(t *testing.T) {
    var b Board
    for i := 0; i < 9; i++ {
        if !b.IsEmpty(i) {
            t.Fatalf("fresh board cell %d should be empty", i)
        }
    }
    b.Place(4, Computer)
    if b.IsEmpty(4) {
        t.Fatalf("cell 4 should be occupied after Place")
    }
    b.Remove(4)
    if !b.IsEmpty(4) {
        t.Fatalf("cell 4 should be empty after Remove")
    }
}

func TestIsFullAndReset(t *testing.T) {
    var b Board
    if b.IsFull() {
        t.Fatalf("empty board should not be full")
    }
    for i := 0; i < 9; i++ {
        b.Place(i, Human)
    }
    if !b.IsFull() {
        t.Fatalf("board with 9 marks should be full")
    }
    b.Reset()
    if b.IsFull() {
        t.Fatalf("reset board should not be full")
    }
    for i := 0; i < 9; i++ {
        if !b.IsEmpty(i) {
            t.Fatalf("reset board cell %d should be empty", i)
        }
    }
}

func TestProbeRoundTripRestoresBoard(t *testing.T) {
    boards := []Board{
        {},
        {Human, Empty, Computer, Empty, Computer, Empty, Human, Empty, Empty},
        {Computer, Computer, Empty, Human, Human, Empty, Empty, Empty, Empty},
    }
    for _, before := range boards {
        for i := 0; i < 9; i++ {
            if !before.IsEmpty(i) {
                continue
            }
            for _, mark := range []Cell{Human, Computer} {
                b := before
                b.Place(i, mark)
                _ = b.IsWinner(mark)
                b.Remove(i)
                if b != before {
                    t.Fatalf("probe at %d with %v left board %v, want %v", i, mark, b, before)
                }
            }
        }
    }
}
