package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yigit/lmsdash/internal/app/models"
)

// EventsPath is the change feed endpoint
const EventsPath = "/api/events"

// KeysFor returns the cache keys a change event makes stale
func KeysFor(event models.ChangeEvent) []string {
	switch event.Entity {
	case models.EntityTask:
		return []string{KeyTasks}
	case models.EntityCourse:
		return []string{KeyCourses, CourseKey(event.ID)}
	case models.EntityAssignment:
		if event.CourseID == "" {
			return nil
		}
		return []string{AssignmentsKey(event.CourseID)}
	case models.EntityUser:
		return []string{KeyUser}
	default:
		return nil
	}
}

// Watch subscribes to the change feed and invalidates affected keys until
// ctx is done or the connection drops. A cancelled ctx returns nil.
func (c *Client) Watch(ctx context.Context) error {
	u := *c.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path += EventsPath

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return err
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	c.logger.Debug().Str("url", u.String()).Msg("watching change feed")
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		var event models.ChangeEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			c.logger.Warn().Err(err).Msg("skipping malformed change event")
			continue
		}
		if keys := KeysFor(event); len(keys) > 0 {
			c.Invalidate(keys...)
		}
	}
}
