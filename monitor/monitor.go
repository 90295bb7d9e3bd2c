// Package monitor streams live session state to websocket viewers. Debug
// tooling: the game publishes snapshots fire-and-forget and never waits on a
// viewer.
package monitor

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

// Snapshot is one frame of observable state, gob-encoded on the wire.
type Snapshot struct {
	Cols, Rows int
	Masks      []uint8
	PlayerX    float64
	PlayerY    float64
	CellX      int
	CellY      int
	Level      int
	Coins      int
	Won        bool
}

type Monitor struct {
	router   *way.Router
	upgrader *websocket.Upgrader

	snapshots   chan Snapshot
	subscribe   chan chan Snapshot
	unsubscribe chan chan Snapshot
}

func New() *Monitor {
	m := &Monitor{
		upgrader:    &websocket.Upgrader{},
		snapshots:   make(chan Snapshot, 8),
		subscribe:   make(chan chan Snapshot),
		unsubscribe: make(chan chan Snapshot),
	}
	m.router = way.NewRouter()
	m.router.HandleFunc("GET", "/watch", m.handleWatch)
	return m
}

// Publish hands a snapshot to the fan-out loop. Full buffer means the frame
// is dropped; the tick path must never stall here.
func (m *Monitor) Publish(s Snapshot) {
	select {
	case m.snapshots <- s:
	default:
	}
}

// Loop fans published snapshots out to connected viewers. Run it on its own
// goroutine before serving.
func (m *Monitor) Loop() {
	viewers := make(map[chan Snapshot]struct{})
	for {
		select {
		case v := <-m.subscribe:
			viewers[v] = struct{}{}
			log.WithField("viewers", len(viewers)).Info("monitor viewer connected")
		case v := <-m.unsubscribe:
			delete(viewers, v)
			log.WithField("viewers", len(viewers)).Info("monitor viewer gone")
		case s := <-m.snapshots:
			for v := range viewers {
				select {
				case v <- s:
				default:
					// slow viewer, skip the frame
				}
			}
		}
	}
}

// ListenAndServe blocks serving the watch endpoint.
func (m *Monitor) ListenAndServe(addr string) error {
	log.WithField("addr", addr).Info("monitor listening")
	return http.ListenAndServe(addr, m.router)
}

func (m *Monitor) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("monitor upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	v := make(chan Snapshot, 4)
	m.subscribe <- v
	defer func() { m.unsubscribe <- v }()

	for s := range v {
		wr, err := conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			return
		}
		if err := gob.NewEncoder(wr).Encode(s); err != nil {
			log.Warnf("monitor encode failed: %v", err)
			return
		}
		if err := wr.Close(); err != nil {
			return
		}
	}
}
