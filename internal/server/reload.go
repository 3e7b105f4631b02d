package server

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"galleria/internal/assets"
)

// reloadDebounce is how long the watcher waits after the last filesystem
// event before telling browsers to reload. Batch copies into an asset
// folder fire many events in quick succession.
const reloadDebounce = 200 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// rootDirs resolves the configured root folders to their on-disk paths.
func rootDirs(cfg Config) []string {
	dirs := make([]string, len(assets.Roots))
	for i, root := range assets.Roots {
		dirs[i] = filepath.Join(cfg.AssetsDir, root)
	}
	return dirs
}

// reloadHub watches the asset folders and broadcasts a reload notice to
// every connected browser when anything under them changes.
type reloadHub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
	watcher *fsnotify.Watcher
	closed  chan struct{}
}

func newReloadHub(dirs []string) (*reloadHub, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	h := &reloadHub{
		clients: make(map[string]*websocket.Conn),
		watcher: watcher,
		closed:  make(chan struct{}),
	}

	for _, dir := range dirs {
		h.watchRecursive(dir)
	}

	go h.watchLoop()
	return h, nil
}

// watchRecursive adds dir and every directory below it to the watcher.
// fsnotify watches are not recursive, so each subdirectory needs its own.
func (h *reloadHub) watchRecursive(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if addErr := h.watcher.Add(path); addErr != nil {
				log.Printf("reload: watch %s: %v", path, addErr)
			}
		}
		return nil
	})
}

func (h *reloadHub) watchLoop() {
	var pending <-chan time.Time

	for {
		select {
		case <-h.closed:
			return
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				// Newly created subdirectories need their own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					h.watchRecursive(event.Name)
				}
			}
			pending = time.After(reloadDebounce)
		case <-pending:
			pending = nil
			h.broadcast()
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("reload: watcher error: %v", err)
		}
	}
}

func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// handleWS upgrades the connection and registers the browser for reload
// notices. The read loop exists only to notice the client going away.
func (h *reloadHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("reload: websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, id)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Close stops the watcher and disconnects every client.
func (h *reloadHub) Close() {
	close(h.closed)
	h.watcher.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}
