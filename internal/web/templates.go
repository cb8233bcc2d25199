package web

import (
    "bytes"
    "html/template"

    "github.com/jaminalder/tictactoe-ai/internal/domain"
)

type templates struct {
    base  *template.Template
    game  *template.Template
    board *template.Template
    index *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "iter": func(n int) []int { a := make([]int, n); for i := range a { a[i] = i }; return a },
        "cellSymbol": func(c domain.Cell) string {
            switch c { case domain.Human: return "X"; case domain.Computer: return "O"; default: return "" }
        },
        "strategies": domain.Strategies,
        "add": func(a, b int) int { return a + b },
        "mul": func(a, b int) int { return a * b },
    }
}

func loadTemplates() *templates {
    // Minimal inline templates; can be replaced by file loading later.
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-Tac-Toe</h1>
<form action="/game" method="post">
  <p>Choose AI:</p>
  {{range $name := strategies}}
  <label><input type="radio" name="strategy" value="{{$name}}"{{if eq $name "exhaustive"}} checked{{end}}> {{$name}}</label>
  {{end}}
  <button type="submit">Play</button>
</form>`))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div id="board" hx-sse="swap:board">{{.BoardHTML}}</div>
</div>
<div class="switch">
  <p>Choose AI:</p>
  {{range $name := strategies}}
  <form hx-post="/game/{{$.ID}}/strategy" hx-target="#board" hx-swap="outerHTML" method="post">
    <input type="hidden" name="strategy" value="{{$name}}">
    <button type="submit">{{$name}}</button>
  </form>
  {{end}}
</div>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
    return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
    var buf bytes.Buffer
    if name == "" {
        _ = t.Execute(&buf, data)
    } else {
        _ = t.ExecuteTemplate(&buf, name, data)
    }
    return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  <p class="status">{{.Status}}</p>
  {{/* 3x3 grid */}}
  {{range $r := iter 3}}
  <div class="row">
    {{range $c := iter 3}}
      {{$i := add (mul $r 3) $c}}
      <form hx-post="/game/{{$.ID}}/move" hx-target="#board" hx-swap="outerHTML" method="post">
        <input type="hidden" name="cell" value="{{$i}}">
        <button type="submit"{{if $.Locked}} disabled{{end}}>{{cellSymbol (index $.Board $i)}}</button>
      </form>
    {{end}}
  </div>
  {{end}}
  <p class="strategy">Computer: {{.Strategy}}</p>
  {{if .Terminal}}
  <div class="prompt">
    <form hx-post="/game/{{.ID}}/rematch" hx-target="#board" hx-swap="outerHTML" method="post"><button>Rematch</button></form>
    <form hx-post="/game/{{.ID}}/new" hx-target="#board" hx-swap="outerHTML" method="post"><button>New Game</button></form>
  </div>
  {{end}}
</div>
`
