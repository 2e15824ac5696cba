package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/JeffAllen714/Demonbane/internal/engine"
	"github.com/JeffAllen714/Demonbane/pkg/api"
	"github.com/JeffAllen714/Demonbane/pkg/logger"
	"github.com/JeffAllen714/Demonbane/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и движком. Сам движок однопоточный:
// все команды всех клиентов сериализуются внутри engine.Service.
type Client struct {
	Game      *engine.Service
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
}

func NewClient(game *engine.Service, conn *websocket.Conn) *Client {
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      make(chan api.ServerResponse, 16),
		SessionID: utils.GenerateID(),
	}
}

// readPump читает команды клиента и проталкивает ответы движка в Send.
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	logger.Log.WithField("session", c.SessionID).Info("Client connected")

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("Unexpected websocket close")
			}
			return
		}

		resp := c.Game.ProcessCommand(cmd)

		select {
		case c.Send <- resp:
		default:
			// Клиент не вычитывает - рвем соединение, чтобы
			// не держать буфер бесконечно.
			logger.Log.WithField("session", c.SessionID).Warn("Send buffer full, dropping client")
			return
		}
	}
}

// writePump отправляет ответы и пинги.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case resp, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// readPump закрыл канал.
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(resp); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
