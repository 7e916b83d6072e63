package web

import (
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head><title>luxbot</title></head>
<body>
{{if .}}
<table id="turn">
<tr><th>Turn</th><td class="turn">{{.Turn}}</td></tr>
<tr><th>Phase</th><td class="phase">{{if .Day}}day{{else}}night{{end}}</td></tr>
<tr><th>Workers</th><td class="workers">{{.Workers}}</td></tr>
<tr><th>Carts</th><td class="carts">{{.Carts}}</td></tr>
<tr><th>City tiles</th><td class="city-tiles">{{.CityTiles}}</td></tr>
<tr><th>Research</th><td class="research">{{.ResearchPoints}}</td></tr>
<tr><th>Eligible resources</th><td class="eligible">{{.EligibleResources}}</td></tr>
</table>
<ul id="actions">
{{range .Actions}}<li>{{.}}</li>
{{end}}</ul>
{{else}}
<p id="waiting">Waiting for the first turn.</p>
{{end}}
</body>
</html>
`))

// Server serves the status page and the websocket feed.
type Server struct {
	hub    *Hub
	bot    BotController
	logger zerolog.Logger
}

// NewServer creates a new Server.
func NewServer(hub *Hub, bot BotController, logger zerolog.Logger) *Server {
	return &Server{
		hub:    hub,
		bot:    bot,
		logger: logger.With().Str("component", "web").Logger(),
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleStatus)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe(host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	s.logger.Info().Str("addr", addr).Msg("status server listening")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	report := s.bot.LastReport()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statusPage.Execute(w, report); err != nil {
		s.logger.Error().Err(err).Msg("failed to render status page")
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state, err := s.bot.State()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(state)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &Client{hub: s.hub, conn: conn, send: make(chan []byte, 16)}
	s.hub.register <- client

	go client.writePump()
	go client.readPump()
}
