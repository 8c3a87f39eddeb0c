package live

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"flixhub/internal/session"
	"flixhub/internal/works"
	"flixhub/pkg/models"
	"flixhub/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler opens a session per connection. The connection query string is
// loaded as the initial state, so /ws?special=ghibli&work=<id> restores a
// shared link.
func WSHandler(hub *Hub, svc *works.Service, debounce time.Duration) gin.HandlerFunc {
	log := utils.Named("live")

	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := newClient(ws)
		client.session = session.New(svc, session.Options{
			Debounce: debounce,
			OnResults: func(res works.Result) {
				_ = client.Send(Event{Type: EventResults, Result: &res})
			},
		})
		defer client.session.Close()

		hub.Add(client)
		log.Info().Str("session", client.ID).Msg("client connected")

		_ = client.Send(Event{Type: EventWelcome, Session: client.ID})

		for _, ev := range Dispatch(client.session, Message{Type: "load", Value: models.FlexString(c.Request.URL.RawQuery)}) {
			_ = client.Send(ev)
		}

		for {
			var msg Message
			if err := ws.ReadJSON(&msg); err != nil {
				break
			}
			for _, ev := range Dispatch(client.session, msg) {
				_ = client.Send(ev)
			}
		}

		hub.Remove(client)
		log.Info().Str("session", client.ID).Msg("client disconnected")
	}
}
