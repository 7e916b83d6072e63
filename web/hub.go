package web

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"luxbot/game"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// BotController defines the interface that the web package uses to interact with the bot.
// This is used to avoid circular dependencies between the web and main packages.
type BotController interface {
	// State returns a JSON-encoded representation of the latest turn.
	State() ([]byte, error)
	// LastReport returns the latest turn report, or nil before the first turn.
	LastReport() *game.TurnReport
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts turn reports to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	// bot is a reference to the bot, used to fetch state.
	bot    BotController
	logger zerolog.Logger
}

// NewHub creates a new Hub.
func NewHub(bot BotController, logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		bot:        bot,
		logger:     logger.With().Str("component", "hub").Logger(),
	}
}

// Run starts the hub's event loop. New clients receive the current state
// right away.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			if state, err := h.bot.State(); err == nil {
				client.send <- state
			}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastFullState fetches the current state from the bot and broadcasts it to all clients.
// This method is called by the bot after every turn.
func (h *Hub) BroadcastFullState() {
	if h == nil {
		return
	}
	state, err := h.bot.State()
	if err != nil {
		h.logger.Error().Err(err).Msg("error getting bot state for broadcast")
		return
	}
	h.broadcast <- state
}

// readPump drains the connection so control frames are processed, and
// unregisters the client when it goes away.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards hub messages to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
