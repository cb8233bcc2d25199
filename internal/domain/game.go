package domain

// Status classifies a game. It is recomputed from the board after every
// mutation, never carried forward.
type Status uint8

const (
    InProgress Status = iota
    HumanWon
    ComputerWon
    Draw
)

func (s Status) String() string {
    switch s {
    case HumanWon:
        return "human won"
    case ComputerWon:
        return "computer won"
    case Draw:
        return "draw"
    default:
        return "in progress"
    }
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool { return s != InProgress }

// Game sequences one human-vs-computer match. The human moves, and if the
// game stays open the controller owes exactly one computer reply; further
// human input is rejected until that reply has been applied, so a shell
// that forgets to lock its own buttons cannot force a double move.
type Game struct {
    Board    Board
    Status   Status
    Strategy Strategy
    pending  bool
}

// New returns an empty in-progress game using the given strategy.
func New(s Strategy) Game {
    return Game{Strategy: s}
}

// ApplyHumanMove places the human mark at index i and, when the game
// stays in progress, marks a computer reply as owed. Moves on occupied
// cells, out-of-range indices, finished games, or while a reply is owed
// are silently ignored.
func (g *Game) ApplyHumanMove(i int) {
    if g.Status.Terminal() || g.pending || i < 0 || i > 8 || !g.Board.IsEmpty(i) {
        return
    }
    g.Board.Place(i, Human)
    g.Status = g.EvaluateStatus()
    if g.Status == InProgress {
        g.pending = true
    }
}

// ApplyComputerMove asks the active strategy for a move and places it.
// A strategy only reports no move on a full board, which is classified
// Draw before a move is ever requested, so that branch is a guard rather
// than a reachable path.
func (g *Game) ApplyComputerMove() {
    g.pending = false
    if g.Status.Terminal() {
        return
    }
    i, ok := g.Strategy.Move(&g.Board)
    if !ok {
        return
    }
    g.Board.Place(i, Computer)
    g.Status = g.EvaluateStatus()
}

// AwaitingComputer reports whether a computer reply is owed for the last
// human move.
func (g *Game) AwaitingComputer() bool { return g.pending }

// EvaluateStatus derives the status from the current board. The human
// win is checked before the computer win; only one can hold a line under
// alternating play, but the order is fixed for determinism.
func (g *Game) EvaluateStatus() Status {
    switch {
    case g.Board.IsWinner(Human):
        return HumanWon
    case g.Board.IsWinner(Computer):
        return ComputerWon
    case g.Board.IsFull():
        return Draw
    default:
        return InProgress
    }
}

// SetStrategy replaces the active strategy. It takes effect on the next
// computer move.
func (g *Game) SetStrategy(s Strategy) { g.Strategy = s }

// Rematch clears the board for another game against the same strategy.
func (g *Game) Rematch() {
    g.Board.Reset()
    g.Status = InProgress
    g.pending = false
}

// NewGame is Rematch under another name: the shell treats New Game as an
// invitation to pick a different strategy first, but the reset itself is
// identical.
func (g *Game) NewGame() { g.Rematch() }
