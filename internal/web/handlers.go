package web

import (
    "errors"
    "fmt"
    "html/template"
    "io"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/jaminalder/tictactoe-ai/internal/app"
    "github.com/jaminalder/tictactoe-ai/internal/domain"
)

type handlers struct {
    svc *app.Service
    tpl *templates
}

// boardView is the template data for the board fragment.
type boardView struct {
    ID       string
    Board    domain.Board
    Strategy string
    Status   string
    Locked   bool
    Terminal bool
    Error    string
}

func (h *handlers) boardData(gs app.GameState, errMsg string) boardView {
    g := gs.Game
    return boardView{
        ID:       gs.ID,
        Board:    g.Board,
        Strategy: g.Strategy.String(),
        Status:   statusLine(g),
        Locked:   g.Status.Terminal() || g.AwaitingComputer(),
        Terminal: g.Status.Terminal(),
        Error:    errMsg,
    }
}

func statusLine(g domain.Game) string {
    switch g.Status {
    case domain.HumanWon:
        return "You win!"
    case domain.ComputerWon:
        return fmt.Sprintf("Computer (%s) wins.", g.Strategy)
    case domain.Draw:
        return "It's a tie."
    default:
        if g.AwaitingComputer() {
            return fmt.Sprintf("Computer (%s) is thinking...", g.Strategy)
        }
        return "Your turn."
    }
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) []byte {
    return renderTemplate(h.tpl.board, "", h.boardData(gs, errMsg))
}

// renderBoardState is the broadcast renderer handed to the service.
func (h *handlers) renderBoardState(gs app.GameState) []byte {
    return h.renderBoard(gs, "")
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.index, "", nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    _ = r.ParseForm()
    strategy, err := domain.ParseStrategy(r.Form.Get("strategy"))
    if err != nil {
        strategy = domain.Exhaustive
    }
    gs, err := h.svc.CreateGame(strategy)
    if err != nil {
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    gs, ok := h.svc.Get(id)
    if !ok {
        http.NotFound(w, r)
        return
    }
    data := struct {
        ID        string
        BoardHTML template.HTML
    }{ID: gs.ID, BoardHTML: template.HTML(h.renderBoard(*gs, ""))}

    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.game, "", data))
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    _ = r.ParseForm()
    cell, convErr := strconv.Atoi(r.Form.Get("cell"))
    if convErr != nil {
        cell = -1 // absorbed by the game as an illegal move
    }
    gs, err := h.svc.HumanMove(id, cell)
    if err != nil {
        if errors.Is(err, app.ErrNotFound) {
            http.NotFound(w, r)
            return
        }
        http.Error(w, "move failed", http.StatusInternalServerError)
        return
    }
    h.writeBoard(w, *gs, "")
}

func (h *handlers) strategy(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    _ = r.ParseForm()
    strategy, err := domain.ParseStrategy(r.Form.Get("strategy"))
    if err != nil {
        gs, ok := h.svc.Get(id)
        if !ok {
            http.NotFound(w, r)
            return
        }
        h.writeBoard(w, *gs, "Unknown strategy")
        return
    }
    gs, err := h.svc.SetStrategy(id, strategy)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    h.writeBoard(w, *gs, "")
}

func (h *handlers) rematch(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    gs, err := h.svc.Rematch(id)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    h.writeBoard(w, *gs, "")
}

func (h *handlers) newGame(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    gs, err := h.svc.NewGame(id)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    h.writeBoard(w, *gs, "")
}

func (h *handlers) writeBoard(w http.ResponseWriter, gs app.GameState, errMsg string) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    _, _ = w.Write(h.renderBoard(gs, errMsg))
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    w.Header().Set("Content-Type", "text/event-stream")
    w.Header().Set("Cache-Control", "no-cache")
    w.Header().Set("X-Accel-Buffering", "no")
    // In tests or non-EventSource requests, just acknowledge headers and return
    if r.Header.Get("Accept") != "text/event-stream" {
        w.WriteHeader(http.StatusOK)
        return
    }
    flusher, ok := w.(http.Flusher)
    if !ok {
        w.WriteHeader(http.StatusOK)
        return
    }
    ctx := r.Context()
    ch, _ := h.svc.Subscribe(ctx, id)
    // heartbeat ticker
    ticker := time.NewTicker(heartbeatInterval)
    defer ticker.Stop()
    // Initial flush of headers
    flusher.Flush()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            _, _ = io.WriteString(w, ": ping\n\n")
            flusher.Flush()
        case b, ok := <-ch:
            if !ok {
                return
            }
            // Emit board event
            _, _ = fmt.Fprintf(w, "event: board\n")
            _, _ = fmt.Fprintf(w, "data: %s\n\n", b)
            flusher.Flush()
        }
    }
}
