package chat

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/zenith-app/zenith-server/internal/stats"
)

const (
	MetricActiveConnections = "ActiveConnections"
	MetricActiveRooms       = "ActiveRooms"
	MetricMessagesTotal     = "MessagesTotal"
)

const idleSweepInterval = 30 * time.Second

// AccessPolicy decides whether a role may enter a room. Admin rooms and
// the admin role come from configuration so the rule is swappable without
// touching the session state machine.
type AccessPolicy struct {
	adminRooms map[string]struct{}
	adminRole  string
}

func NewAccessPolicy(adminRooms []string, adminRole string) AccessPolicy {
	rooms := make(map[string]struct{}, len(adminRooms))
	for _, roomId := range adminRooms {
		rooms[roomId] = struct{}{}
	}
	return AccessPolicy{adminRooms: rooms, adminRole: adminRole}
}

func (p AccessPolicy) Allowed(roomId, role string) bool {
	if _, ok := p.adminRooms[roomId]; !ok {
		return true
	}
	return role == p.adminRole
}

// ChatServer is the session coordinator. A single goroutine owns the
// Registry and RoomStore and handles each inbound event to completion
// before the next, which serializes appends and fan-out per room.
type ChatServer struct {
	log            *log.Logger
	registry       *Registry
	store          *RoomStore
	policy         AccessPolicy
	stats          stats.StatsProvider
	clients        map[string]*Client
	registerChan   chan *Client
	deRegisterChan chan *Client
	eventChan      chan *ClientMessage
	idleRoomTTL    time.Duration
	stop           chan struct{}
	done           chan struct{}
}

func NewChatServer(logger *log.Logger, policy AccessPolicy, maxHistory int, idleRoomTTL time.Duration, statsUpdater stats.StatsProvider) (*ChatServer, error) {
	if idleRoomTTL <= 0 {
		return nil, fmt.Errorf("idle room TTL must be positive")
	}

	cs := &ChatServer{
		log:            logger,
		registry:       NewRegistry(),
		store:          NewRoomStore(maxHistory),
		policy:         policy,
		stats:          statsUpdater,
		clients:        make(map[string]*Client),
		registerChan:   make(chan *Client),
		deRegisterChan: make(chan *Client),
		eventChan:      make(chan *ClientMessage, 256),
		idleRoomTTL:    idleRoomTTL,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	statsUpdater.RegisterMetric(MetricActiveConnections)
	statsUpdater.RegisterMetric(MetricActiveRooms)
	statsUpdater.RegisterMetric(MetricMessagesTotal)

	return cs, nil
}

func (cs *ChatServer) RegisterClient(c *Client) {
	cs.registerChan <- c
}

func (cs *ChatServer) Run() {
	sweep := time.NewTicker(idleSweepInterval)
	defer sweep.Stop()

	for {
		select {
		case c := <-cs.registerChan:
			cs.addClient(c)
		case c := <-cs.deRegisterChan:
			cs.handleDisconnect(c)
		case msg := <-cs.eventChan:
			cs.handleEvent(msg)
		case <-sweep.C:
			cs.evictIdleRooms()
		case <-cs.stop:
			cs.log.Println("stopping chat server")
			for _, c := range cs.clients {
				c.stopClient()
			}
			close(cs.done)
			return
		}
	}
}

func (cs *ChatServer) Shutdown(ctx context.Context) error {
	close(cs.stop)

	select {
	case <-cs.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (cs *ChatServer) addClient(c *Client) {
	cs.log.Printf("registering connection %q", c.id)
	cs.clients[c.id] = c
	cs.registry.Register(c.id)
	cs.stats.Incr(MetricActiveConnections)
}

func (cs *ChatServer) handleEvent(msg *ClientMessage) {
	c := msg.client
	if c == nil {
		return
	}

	switch {
	case msg.Join != nil:
		cs.handleJoin(c, msg.Join)
	case msg.Send != nil:
		cs.handleSend(c, msg.Send)
	case msg.Leave != nil:
		cs.handleLeave(c)
	default:
		c.queueMessage(ErrMalformedRequest("unknown event"))
	}
}

func (cs *ChatServer) handleJoin(c *Client, join *Join) {
	if join.RoomId == "" {
		c.queueMessage(ErrMalformedRequest("join requires a room id"))
		return
	}
	if join.User == "" {
		c.queueMessage(ErrMalformedRequest("join requires a user name"))
		return
	}

	if !cs.policy.Allowed(join.RoomId, join.Role) {
		cs.log.Printf("denied %q (role %q) access to room %q", join.User, join.Role, join.RoomId)
		c.queueMessage(ErrAccessDenied(join.RoomId))
		return
	}

	// a connection occupies one room at a time
	if current, ok := cs.registry.CurrentRoom(c.id); ok && current != join.RoomId {
		cs.leaveRoom(c, current)
	}

	cs.registry.SetIdentity(c.id, join.User, join.Role)
	cs.ensureRoom(join.RoomId)
	cs.store.AddMember(join.RoomId, c.id)
	cs.registry.SetCurrentRoom(c.id, join.RoomId)

	cs.broadcast(join.RoomId, &ServerMessage{
		Notification: fmt.Sprintf("%s joined %s", join.User, join.RoomId),
	}, c.id)
	cs.broadcastUserList(join.RoomId)

	c.queueMessage(&ServerMessage{
		RoomJoined: &RoomJoined{RoomId: join.RoomId, Success: true},
	})

	// history replay goes to the requester only
	history := HistoryReplay(cs.store.History(join.RoomId))
	c.queueMessage(&ServerMessage{ChatHistory: &history})
}

func (cs *ChatServer) handleSend(c *Client, send *Send) {
	roomId, ok := cs.registry.CurrentRoom(c.id)
	if !ok {
		// permissive: a send before join targets the payload room,
		// lazily creating it
		roomId = send.RoomId
	}
	if roomId == "" {
		c.queueMessage(ErrMalformedRequest("send requires a room id"))
		return
	}
	if send.Message == "" {
		c.queueMessage(ErrMalformedRequest("send requires a message"))
		return
	}

	user, _, _ := cs.registry.Identity(c.id)
	if user == "" {
		user = send.User
	}
	if user == "" {
		c.queueMessage(ErrMalformedRequest("send requires a user name"))
		return
	}

	// re-ensure the room in case its state was never initialized
	cs.ensureRoom(roomId)
	stored := cs.store.AppendMessage(roomId, user, send.Message)
	cs.stats.Incr(MetricMessagesTotal)

	// the sender relies on this broadcast for canonical delivery; it is
	// never skipped, so clients must not also append a local echo
	cs.broadcast(roomId, &ServerMessage{ReceiveMessage: &stored}, "")
}

func (cs *ChatServer) handleLeave(c *Client) {
	roomId, ok := cs.registry.CurrentRoom(c.id)
	if !ok {
		// leaving without being in a room is a no-op
		return
	}

	cs.leaveRoom(c, roomId)
}

// handleDisconnect removes the connection from its room and the registry.
// Unlike an explicit leave the departure is ungraceful, but remaining
// members still get the leave notification.
func (cs *ChatServer) handleDisconnect(c *Client) {
	if _, ok := cs.clients[c.id]; !ok {
		return
	}

	cs.log.Printf("removing connection %q", c.id)
	if roomId, ok := cs.registry.CurrentRoom(c.id); ok {
		cs.leaveRoom(c, roomId)
	}

	cs.registry.Unregister(c.id)
	delete(cs.clients, c.id)
	cs.stats.Decr(MetricActiveConnections)
}

func (cs *ChatServer) leaveRoom(c *Client, roomId string) {
	user, _, _ := cs.registry.Identity(c.id)
	cs.store.RemoveMember(roomId, c.id)
	cs.registry.ClearCurrentRoom(c.id)

	cs.broadcast(roomId, &ServerMessage{
		Notification: fmt.Sprintf("%s left %s", user, roomId),
	}, c.id)
	cs.broadcastUserList(roomId)
}

func (cs *ChatServer) ensureRoom(roomId string) {
	if _, created := cs.store.EnsureRoom(roomId); created {
		cs.log.Printf("created room %q", roomId)
		cs.stats.Incr(MetricActiveRooms)
	}
}

func (cs *ChatServer) evictIdleRooms() {
	for _, roomId := range cs.store.EvictIdle(cs.idleRoomTTL, Now()) {
		cs.log.Printf("evicted idle room %q", roomId)
		cs.stats.Decr(MetricActiveRooms)
	}
}

// broadcast fans a message out to every current member of the room,
// skipping skipId when non-empty.
func (cs *ChatServer) broadcast(roomId string, msg *ServerMessage, skipId string) {
	for _, connId := range cs.store.Members(roomId) {
		if connId == skipId {
			continue
		}

		if c, ok := cs.clients[connId]; ok {
			c.queueMessage(msg)
		}
	}
}

func (cs *ChatServer) broadcastUserList(roomId string) {
	members := cs.store.Members(roomId)
	if len(members) == 0 {
		return
	}

	names := make(UserList, 0, len(members))
	for _, connId := range members {
		if name, _, ok := cs.registry.Identity(connId); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	cs.broadcast(roomId, &ServerMessage{UserList: &names}, "")
}
