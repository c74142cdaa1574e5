package controller

import (
	"net/http"

	"gig-marketplace-api/internal/notifier"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
)

type wsRoutesHandler struct {
	hub *notifier.Hub
}

func newWsRoutesHandler(outer *echo.Group, hub *notifier.Hub, auth *authMiddleware) *wsRoutesHandler {
	h := &wsRoutesHandler{hub: hub}
	outer.GET("/ws", h.Connect, auth.Authenticate)

	return h
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The upgrade is already behind cookie authentication.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// /ws
func (h *wsRoutesHandler) Connect(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := notifier.NewClient(h.hub, requesterId(c), conn)
	client.Serve()

	return nil
}
