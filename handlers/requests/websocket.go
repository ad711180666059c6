package requests

import (
    "log"
    "net/http"

    "gamediary/middleware"
    "gamediary/models"
    "gamediary/realtime"
    "gamediary/utils/permissions"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
    ReadBufferSize:  1024,
    WriteBufferSize: 1024,
    CheckOrigin: func(r *http.Request) bool {
        return true
    },
}

// StreamRequests upgrades an administrator's connection to a WebSocket
// fed with request creations and status switches
func StreamRequests(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }
    if !permissions.IsMemberOf(&user, []models.Role{models.RoleAdmin}) {
        response.Error(c, http.StatusForbidden, ErrUnauthorized)
        return
    }

    conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrWebsocketUpgrade)
        return
    }

    realtime.RegisterClient(conn)
    log.Printf("Admin %s connected to the request stream", user.Username)

    go func() {
        defer func() {
            realtime.UnregisterClient(conn)
            conn.Close()
        }()
        for {
            if _, _, err := conn.ReadMessage(); err != nil {
                return
            }
        }
    }()
}
