package web

import (
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/jaminalder/tictactoe-ai/internal/app"
)

// NewServer wires routes and returns an http.Handler. The service's
// broadcast renderer is pointed at the board fragment so SSE pushes
// carry ready-to-swap HTML.
func NewServer(s *app.Service) http.Handler {
    r := chi.NewRouter()
    h := &handlers{svc: s, tpl: loadTemplates()}
    s.SetRenderer(h.renderBoardState)
    r.Get("/", h.index)
    r.Post("/game", h.create)
    r.Route("/game/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Post("/move", h.move)
        r.Post("/strategy", h.strategy)
        r.Post("/rematch", h.rematch)
        r.Post("/new", h.newGame)
        r.Get("/events", h.events)
    })
    return r
}
