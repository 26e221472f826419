package websocket

import (
	"log"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"templedit/service/catalog"
)

const pollInterval = 2 * time.Second

// Lister is the slice of the catalog the watcher needs.
type Lister interface {
	List() []catalog.Info
}

// templatesEvent is pushed on connect and whenever the catalog changes.
type templatesEvent struct {
	Event     string         `json:"event"`
	Templates []catalog.Info `json:"templates"`
}

// Watcher pushes template catalog changes to connected editors so an
// open picker refreshes without reloading.
type Watcher struct {
	catalog Lister

	conns map[string]*Conn
	mu    *sync.RWMutex

	*log.Logger
}

func NewWatcher(catalog Lister) *Watcher {
	return &Watcher{
		catalog: catalog,
		conns:   make(map[string]*Conn),
		mu:      new(sync.RWMutex),
		Logger:  log.New(log.Writer(), "[watch] ", log.LstdFlags),
	}
}

// Serve upgrades the request and streams template list updates until
// the client disconnects or goes idle past the watch timeout. Upgrade
// failures are already answered by the upgrader.
func (w *Watcher) Serve(rw http.ResponseWriter, r *http.Request) {
	conn, err := NewConn(rw, r)
	if err != nil {
		return
	}

	id := uuid.NewString()
	w.mu.Lock()
	w.conns[id] = conn
	w.mu.Unlock()
	w.Printf("watch client %s connected", id)

	defer func() {
		w.mu.Lock()
		delete(w.conns, id)
		w.mu.Unlock()
		conn.Close()
		w.Printf("watch client %s disconnected", id)
	}()

	current := w.catalog.List()
	if err := conn.WriteJSON(templatesEvent{Event: "templates", Templates: current}); err != nil {
		return
	}

	// The reader goroutine unblocks when the deferred Close runs.
	activity := make(chan struct{}, 1)
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
			select {
			case activity <- struct{}{}:
			default:
			}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	lastActive := time.Now()
	for {
		select {
		case <-readErr:
			return
		case <-activity:
			lastActive = time.Now()
		case <-ticker.C:
			if time.Since(lastActive) > watchTimeout {
				w.Printf("watch client %s timed out", id)
				return
			}

			next := w.catalog.List()
			if !changed(current, next) {
				continue
			}
			current = next
			if err := conn.WriteJSON(templatesEvent{Event: "templates", Templates: next}); err != nil {
				return
			}
		}
	}
}

// Clients returns the number of connected watchers.
func (w *Watcher) Clients() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.conns)
}

func changed(a, b []catalog.Info) bool {
	return !slices.EqualFunc(a, b, func(x, y catalog.Info) bool {
		return x.ID == y.ID
	})
}
