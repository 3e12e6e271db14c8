package chat

import (
	"time"
)

type roomState struct {
	log        []Message
	members    map[string]struct{}
	emptySince time.Time
}

// RoomStore owns the per-room message log and membership set. Rooms are
// created lazily on first join or send and evicted only once empty for
// longer than the idle TTL (see ChatServer's sweep). The store is owned
// by the ChatServer goroutine.
type RoomStore struct {
	rooms map[string]*roomState
	// maxHistory caps each room's log; 0 means unbounded.
	maxHistory int
}

func NewRoomStore(maxHistory int) *RoomStore {
	return &RoomStore{
		rooms:      make(map[string]*roomState),
		maxHistory: maxHistory,
	}
}

// EnsureRoom returns the room's state, creating an empty log and empty
// membership set if absent. Idempotent for existing rooms. The second
// return reports whether the room was created by this call.
func (s *RoomStore) EnsureRoom(roomId string) (*roomState, bool) {
	if room, ok := s.rooms[roomId]; ok {
		return room, false
	}

	room := &roomState{
		members:    make(map[string]struct{}),
		emptySince: Now(),
	}
	s.rooms[roomId] = room
	return room, true
}

// AppendMessage appends to the room's log, creating the room if it was
// never seen, and returns the stored message with its server-assigned
// timestamp.
func (s *RoomStore) AppendMessage(roomId, user, body string) Message {
	room, _ := s.EnsureRoom(roomId)

	msg := Message{
		User:      user,
		Message:   body,
		Timestamp: Now(),
	}
	room.log = append(room.log, msg)

	if s.maxHistory > 0 && len(room.log) > s.maxHistory {
		// drop the oldest entries; copy so the backing array shrinks
		trimmed := make([]Message, s.maxHistory)
		copy(trimmed, room.log[len(room.log)-s.maxHistory:])
		room.log = trimmed
	}

	return msg
}

// History returns a copy of the room's full ordered log. The copy keeps
// the caller safe from later appends while the message sits in a client's
// outbound queue.
func (s *RoomStore) History(roomId string) []Message {
	room, ok := s.rooms[roomId]
	if !ok {
		return []Message{}
	}

	history := make([]Message, len(room.log))
	copy(history, room.log)
	return history
}

func (s *RoomStore) AddMember(roomId, connId string) {
	room, _ := s.EnsureRoom(roomId)
	room.members[connId] = struct{}{}
}

// RemoveMember is a no-op for a connection that is not a member.
func (s *RoomStore) RemoveMember(roomId, connId string) {
	room, ok := s.rooms[roomId]
	if !ok {
		return
	}

	delete(room.members, connId)
	if len(room.members) == 0 {
		room.emptySince = Now()
	}
}

func (s *RoomStore) Members(roomId string) []string {
	room, ok := s.rooms[roomId]
	if !ok {
		return nil
	}

	members := make([]string, 0, len(room.members))
	for connId := range room.members {
		members = append(members, connId)
	}
	return members
}

func (s *RoomStore) IsMember(roomId, connId string) bool {
	room, ok := s.rooms[roomId]
	if !ok {
		return false
	}
	_, ok = room.members[connId]
	return ok
}

func (s *RoomStore) Len() int {
	return len(s.rooms)
}

// EvictIdle removes rooms that have had no members for at least ttl and
// returns their ids. Rooms with members are never evicted.
func (s *RoomStore) EvictIdle(ttl time.Duration, now time.Time) []string {
	var evicted []string
	for roomId, room := range s.rooms {
		if len(room.members) == 0 && now.Sub(room.emptySince) >= ttl {
			delete(s.rooms, roomId)
			evicted = append(evicted, roomId)
		}
	}
	return evicted
}
