package chat

// connEntry holds what the server knows about one live connection.
// Identity is attached by the first join and may be overwritten by a
// later join with a different name or role.
type connEntry struct {
	name string
	role string
	room string // empty while the connection is not in a room
}

// Registry maps live connection ids to their display name, role and
// current room. It is owned by the ChatServer goroutine; nothing else
// mutates it, so it carries no locks.
type Registry struct {
	conns map[string]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*connEntry)}
}

func (r *Registry) Register(connId string) {
	r.conns[connId] = &connEntry{}
}

func (r *Registry) SetIdentity(connId, name, role string) {
	if entry, ok := r.conns[connId]; ok {
		entry.name = name
		entry.role = role
	}
}

func (r *Registry) Identity(connId string) (name, role string, ok bool) {
	entry, ok := r.conns[connId]
	if !ok {
		return "", "", false
	}
	return entry.name, entry.role, true
}

// CurrentRoom returns the room the connection occupies, or "" and false.
func (r *Registry) CurrentRoom(connId string) (string, bool) {
	entry, ok := r.conns[connId]
	if !ok || entry.room == "" {
		return "", false
	}
	return entry.room, true
}

func (r *Registry) SetCurrentRoom(connId, roomId string) {
	if entry, ok := r.conns[connId]; ok {
		entry.room = roomId
	}
}

func (r *Registry) ClearCurrentRoom(connId string) {
	if entry, ok := r.conns[connId]; ok {
		entry.room = ""
	}
}

// Unregister removes the entry. Room membership is not touched here; the
// ChatServer removes the connection from its room explicitly on
// disconnect.
func (r *Registry) Unregister(connId string) {
	delete(r.conns, connId)
}

func (r *Registry) Len() int {
	return len(r.conns)
}
