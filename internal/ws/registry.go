package ws

import "sync"

// Registry maps authenticated identities to their live connection. A plain
// map keyed by identity: registering a second connection for the same user
// replaces the first (last-writer-wins), and only the mapped connection
// receives pushes.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

func (r *Registry) Register(identity string, c *Client) {
	r.mu.Lock()
	r.clients[identity] = c
	r.mu.Unlock()
}

func (r *Registry) Lookup(identity string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[identity]
}

// Deregister removes the mapping; no-op if absent.
func (r *Registry) Deregister(identity string) {
	r.mu.Lock()
	delete(r.clients, identity)
	r.mu.Unlock()
}

// DeregisterClient removes the mapping only while it still points at c, so
// closing a replaced connection cannot evict its successor's mapping.
func (r *Registry) DeregisterClient(identity string, c *Client) {
	r.mu.Lock()
	if r.clients[identity] == c {
		delete(r.clients, identity)
	}
	r.mu.Unlock()
}

// Broadcast pushes payload to every registered live connection, filtered by
// predicate when one is supplied. Failed pushes are dropped; the transport
// close event is what eventually deregisters a dead connection.
func (r *Registry) Broadcast(predicate func(identity string) bool, payload []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for identity, c := range r.clients {
		if predicate != nil && !predicate(identity) {
			continue
		}
		c.trySend(payload)
	}
}
