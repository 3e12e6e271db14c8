package chat

import (
	"fmt"
	"time"
)

// Machine-readable kinds carried on error events alongside the
// human-readable notification text.
const (
	KindAccessDenied     = "access_denied"
	KindMalformedRequest = "malformed_request"
)

// Message is a single chat message as stored and broadcast. The timestamp
// is server-assigned at receipt time.
type Message struct {
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ClientMessage struct {
	Join   *Join  `json:"join,omitempty"`
	Send   *Send  `json:"send,omitempty"`
	Leave  *Leave `json:"leave,omitempty"`
	client *Client
}

type Join struct {
	RoomId string `json:"roomId"`
	User   string `json:"user"`
	Role   string `json:"role"`
}

type Send struct {
	RoomId  string `json:"roomId"`
	User    string `json:"user"`
	Message string `json:"message"`
}

type Leave struct {
	RoomId string `json:"roomId"`
	User   string `json:"user"`
}

// HistoryReplay is the one-time delivery of a room's existing log to a
// newly joined connection. It is a pointer field on ServerMessage so an
// empty room still yields an explicit empty replay.
type HistoryReplay []Message

// UserList is a snapshot of the display names currently in a room.
type UserList []string

type ServerMessage struct {
	ChatHistory    *HistoryReplay `json:"chatHistory,omitempty"`
	ReceiveMessage *Message       `json:"receiveMessage,omitempty"`
	Notification   string         `json:"notification,omitempty"`
	RoomJoined     *RoomJoined    `json:"roomJoined,omitempty"`
	UserList       *UserList      `json:"userList,omitempty"`
	Error          *EventError    `json:"error,omitempty"`
}

// RoomJoined acknowledges a join request to the requester only.
type RoomJoined struct {
	RoomId  string `json:"roomCode"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type EventError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func ErrAccessDenied(roomId string) *ServerMessage {
	msg := fmt.Sprintf("access to room %s is restricted", roomId)
	return &ServerMessage{
		Notification: msg,
		Error: &EventError{
			Kind:    KindAccessDenied,
			Message: msg,
		},
	}
}

func ErrMalformedRequest(reason string) *ServerMessage {
	return &ServerMessage{
		Error: &EventError{
			Kind:    KindMalformedRequest,
			Message: reason,
		},
	}
}

func Now() time.Time {
	return time.Now().UTC().Round(time.Millisecond)
}
