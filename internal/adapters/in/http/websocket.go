package http

import (
	"time"

	"logistics/internal/core/domain/events"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeWait = 10 * time.Second

// StreamNotifications handles GET /api/v1/notifications/ws. Every delivery
// event published after the upgrade is written to the socket as JSON until
// the client goes away.
func (s *Server) StreamNotifications(ctx echo.Context) error {
	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		s.logger.Debug("websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	sub, err := s.events.Subscribe(ctx.Request().Context(), events.Topic)
	if err != nil {
		s.logger.Error("failed to subscribe notification stream", "error", err)
		closeSocket(conn, websocket.CloseInternalServerErr, "subscription failed")
		return nil
	}
	defer func() {
		if err := sub.Close(); err != nil {
			s.logger.Warn("failed to close subscription", "error", err)
		}
	}()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return nil
		case evt, ok := <-sub.Events():
			if !ok {
				closeSocket(conn, websocket.CloseGoingAway, "stream closed")
				return nil
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return nil
			}
			if err := conn.WriteJSON(evt); err != nil {
				s.logger.Debug("websocket write failed", "error", err)
				return nil
			}
		}
	}
}

func closeSocket(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
