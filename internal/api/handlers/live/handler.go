package live

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/m04kA/parlourease/internal/api/handlers"
	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/realtime"
)

const (
	writeWait    = 7 * time.Second
	pongWait     = 70 * time.Second
	pingPeriod   = 25 * time.Second
	maxReadBytes = 1 << 16
)

const (
	msgUnknownCollection = "unknown collection"
	msgUnavailable       = "live updates are unavailable"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	source   SnapshotSource
	location *time.Location
	logger   Logger
}

func NewHandler(source SnapshotSource, location *time.Location, logger Logger) *Handler {
	return &Handler{
		source:   source,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/live/{collection}
// Переключает соединение на WebSocket и транслирует полные снимки коллекции
// Подписка освобождается при любом завершении соединения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]
	if !domain.IsKnownCollection(collection) {
		h.logger.Warn("GET /live/{collection} - Unknown collection: %s", collection)
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	sub, err := h.source.Subscribe(collection)
	if err != nil {
		if errors.Is(err, realtime.ErrHubClosed) {
			h.logger.Warn("GET /live/{collection} - Hub closed: collection=%s", collection)
		} else {
			h.logger.Error("GET /live/{collection} - Failed to subscribe: collection=%s, error=%v", collection, err)
		}
		handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}
	defer sub.Close()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /live/{collection} - Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("GET /live/{collection} - Client connected: collection=%s, remote=%s", collection, r.RemoteAddr)

	conn.SetReadLimit(maxReadBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// входящие сообщения не обрабатываются, чтение нужно для pong и обнаружения закрытия
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			h.logger.Info("GET /live/{collection} - Client disconnected: collection=%s", collection)
			return
		case <-r.Context().Done():
			return
		case snap, ok := <-sub.C():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(FromSnapshot(snap, h.location)); err != nil {
				h.logger.Warn("GET /live/{collection} - Write failed: collection=%s, error=%v", collection, err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
