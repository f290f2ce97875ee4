// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/internal/view"
)

const (
	pingInterval = 15 * time.Second
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
)

// event is a message from the page script.
type event struct {
	Type string `json:"type"` // input, key, submit
	Text string `json:"text,omitempty"`
	Key  string `json:"key,omitempty"`
}

// stateMessage is pushed to the page after every visible state change.
type stateMessage struct {
	Type string `json:"type"`
	Busy bool   `json:"busy"`
	HTML string `json:"html"`
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	log := logger.WithSession(id)
	s.sessions.Add(1)
	defer s.sessions.Add(-1)
	log.Info("live session opened from %s", r.RemoteAddr)
	defer log.Info("live session closed")

	// Closing the tab cancels any search still in flight for it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The page already shows what the server rendered, possibly results from
	// a form post. Treat the fresh empty state as sent so nothing overwrites
	// that until the view itself changes.
	sess := &liveSession{conn: conn, log: log, signal: make(chan struct{}, 1), sentAny: true}
	v := s.newView(id)
	unsubscribe := v.Subscribe(sess.push)
	defer unsubscribe()

	go sess.writeLoop(ctx)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var ev event
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		switch ev.Type {
		case "input":
			v.SetQuery(ev.Text)
		case "key":
			v.StartKey(ctx, ev.Key)
		case "submit":
			v.Start(ctx)
		default:
			log.Trace("ignoring event type %q", ev.Type)
		}
	}
}

// liveSession queues state snapshots from the view and writes them to the
// socket in order from a single goroutine.
type liveSession struct {
	conn *websocket.Conn
	log  logger.Entry

	mu      sync.Mutex
	pending []view.State
	signal  chan struct{}

	last    view.State
	sentAny bool
}

// push is the view subscriber. It runs with the view locked, so it only
// queues.
func (l *liveSession) push(st view.State) {
	l.mu.Lock()
	l.pending = append(l.pending, st)
	l.mu.Unlock()
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *liveSession) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := l.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-l.signal:
			if err := l.flush(); err != nil {
				l.log.Warn("write error: %v", err)
				return
			}
		}
	}
}

func (l *liveSession) flush() error {
	l.mu.Lock()
	states := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, st := range states {
		if l.sentAny && !visibleChange(l.last, st) {
			continue
		}
		html, err := renderResults(st)
		if err != nil {
			return err
		}
		l.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := l.conn.WriteJSON(stateMessage{Type: "state", Busy: st.Busy, HTML: html}); err != nil {
			return err
		}
		l.last = st
		l.sentAny = true
	}
	return nil
}

// visibleChange reports whether next renders differently from prev. Query
// edits alone do not: the input is owned by the browser. Results are
// replaced wholesale, never edited, so comparing the backing array is enough.
func visibleChange(prev, next view.State) bool {
	if prev.Busy != next.Busy || prev.Error != next.Error {
		return true
	}
	if len(prev.Results) != len(next.Results) {
		return true
	}
	return len(next.Results) > 0 && &prev.Results[0] != &next.Results[0]
}
