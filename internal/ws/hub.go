package ws

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	userID  uuid.UUID
	payload []byte
}

// Hub fans messages out to the open connections of a single user. All map
// mutation happens on the Run goroutine; readers take the RW lock. Once Run
// returns, done is closed and the hub refuses new clients.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	deliver    chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *log.Logger

	lifecycle sync.Mutex
	stopped   bool
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		deliver:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stop()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := h.countLocked()
			h.mutex.Unlock()
			h.logf("[WS] connected user_id=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			h.logf("[WS] disconnected user_id=%s total_clients=%d", client.userID, total)

		case msg := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.mutex.Lock()
					h.removeLocked(client)
					h.mutex.Unlock()
				}
			}
			h.logf("[WS] delivered user_id=%s clients=%d", msg.userID, len(targets))
		}
	}
}

// Register hands client to the Run loop. On a stopped hub the client's send
// channel is closed straight away so its write pump shuts the connection.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()
	if h.stopped {
		close(client.send)
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser queues message for every connection of userID. It never blocks;
// when the queue is full the message is dropped.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- envelope{userID: userID, payload: message}:
	default:
		h.logf("[WS] message dropped user_id=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}

func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// stop runs once, on the Run goroutine. Clients still queued for
// registration never joined the map, so their send channels are closed here.
func (h *Hub) stop() {
	close(h.done)

	h.lifecycle.Lock()
	h.stopped = true
	h.lifecycle.Unlock()

	for {
		select {
		case client := <-h.register:
			if client != nil {
				close(client.send)
			}
		default:
			h.closeAll()
			h.logf("[WS] hub stopped")
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
