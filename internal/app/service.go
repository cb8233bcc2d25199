package app

import (
    "context"
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/tictactoe-ai/internal/domain"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// defaultComputerDelay is how long the shell waits before the computer
// replies. Cosmetic only; correctness never depends on it.
const defaultComputerDelay = 300 * time.Millisecond

// GameState is the in-memory state tracked per game session.
type GameState struct {
    ID      string
    Game    domain.Game
    Created time.Time
    Updated time.Time
}

type subscriber struct {
    ch        chan []byte
    closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages game sessions and subscribers. Each session owns one
// independent Game; nothing is shared between sessions.
type Service struct {
    mu     sync.Mutex
    games  map[string]*GameState
    subs   map[string]map[*subscriber]struct{}
    render func(GameState) []byte
    delay  time.Duration
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService() *Service { return NewServiceWithRenderer(func(gs GameState) []byte { return nil }) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
    if renderer == nil {
        renderer = func(gs GameState) []byte { return nil }
    }
    return &Service{
        games:  make(map[string]*GameState),
        subs:   make(map[string]map[*subscriber]struct{}),
        render: renderer,
        delay:  defaultComputerDelay,
    }
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if renderer == nil {
        s.render = func(gs GameState) []byte { return nil }
        return
    }
    s.render = renderer
}

// SetComputerDelay changes the pause before a computer reply. A zero or
// negative delay makes the reply inline, which tests rely on.
func (s *Service) SetComputerDelay(d time.Duration) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.delay = d
}

// CreateGame creates and registers a new game against the given strategy.
func (s *Service) CreateGame(strategy domain.Strategy) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    now := time.Now()
    gs := &GameState{ID: id, Game: domain.New(strategy), Created: now, Updated: now}
    s.games[id] = gs
    cp := *gs
    return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    cp := *gs
    return &cp, true
}

// HumanMove applies the human move at index and, when the game stays
// open, schedules exactly one computer reply. Illegal moves are absorbed
// by the game itself; the returned state is the one before the reply.
func (s *Service) HumanMove(id string, index int) (*GameState, error) {
    cp, err := s.update(id, func(g *domain.Game) { g.ApplyHumanMove(index) })
    if err != nil {
        return nil, err
    }
    if cp.Game.AwaitingComputer() {
        s.mu.Lock()
        delay := s.delay
        s.mu.Unlock()
        if delay > 0 {
            time.AfterFunc(delay, func() { s.computerReply(id) })
        } else {
            s.computerReply(id)
        }
    }
    return cp, nil
}

// SetStrategy switches the opponent for the next computer move.
func (s *Service) SetStrategy(id string, strategy domain.Strategy) (*GameState, error) {
    return s.update(id, func(g *domain.Game) { g.SetStrategy(strategy) })
}

// Rematch resets the board and keeps the active strategy.
func (s *Service) Rematch(id string) (*GameState, error) {
    return s.update(id, func(g *domain.Game) { g.Rematch() })
}

// NewGame resets the board; the shell changes strategy separately if the
// player wants a different opponent.
func (s *Service) NewGame(id string) (*GameState, error) {
    return s.update(id, func(g *domain.Game) { g.NewGame() })
}

// update applies fn to the game under the lock, stamps it, and broadcasts
// the rendered state to subscribers.
func (s *Service) update(id string, fn func(*domain.Game)) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, ErrNotFound
    }
    fn(&gs.Game)
    gs.Updated = time.Now()
    cp := *gs
    s.broadcastLocked(id, s.render(cp))
    return &cp, nil
}

// computerReply applies the owed computer move and broadcasts it. A
// rematch or reset between scheduling and firing clears the owed flag,
// which makes the reply a no-op.
func (s *Service) computerReply(id string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok || !gs.Game.AwaitingComputer() {
        return
    }
    gs.Game.ApplyComputerMove()
    gs.Updated = time.Now()
    cp := *gs
    s.broadcastLocked(id, s.render(cp))
}

// broadcastLocked delivers payload to the game's subscribers, dropping
// any that cannot keep up. Callers hold s.mu; closing a subscriber
// channel also happens only under s.mu, so a send can never race a
// close. Every send is non-blocking, so the lock is never held across
// a block.
func (s *Service) broadcastLocked(id string, payload []byte) {
    set := s.subs[id]
    for sub := range set {
        select {
        case sub.ch <- payload:
        default:
            // drop slow subscriber
            sub.close()
            delete(set, sub)
        }
    }
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.games[id]; !ok {
        // create lazily to allow subscriptions before CreateGame in some flows
        now := time.Now()
        s.games[id] = &GameState{ID: id, Game: domain.New(domain.Exhaustive), Created: now, Updated: now}
    }
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    sub := &subscriber{ch: make(chan []byte, 1)}
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            // close under the lock: broadcastLocked may hold a
            // reference to this subscriber
            s.mu.Lock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
            }
            sub.close()
            s.mu.Unlock()
        })
    }
    go func() {
        <-ctx.Done()
        unsub()
    }()
    return sub.ch, unsub
}
