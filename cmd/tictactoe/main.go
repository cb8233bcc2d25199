package main

import (
    "flag"
    "log"
    "net/http"
    "time"

    "github.com/jaminalder/tictactoe-ai/internal/app"
    "github.com/jaminalder/tictactoe-ai/internal/web"
)

var addr = flag.String("addr", ":8080", "http service address")

func main() {
    flag.Parse()
    svc := app.NewService()
    srv := &http.Server{
        Addr:              *addr,
        Handler:           web.NewServer(svc),
        ReadHeaderTimeout: 5 * time.Second,
    }
    log.Printf("tictactoe listening on %s", *addr)
    if err := srv.ListenAndServe(); err != nil {
        log.Fatal(err)
    }
}
