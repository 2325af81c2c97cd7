package model

import (
	"context"
	"time"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// LoadStatus is the fetch state of a user bucket or the directory.
type LoadStatus string

const (
	StatusIdle      LoadStatus = "idle"
	StatusLoading   LoadStatus = "loading"
	StatusSucceeded LoadStatus = "succeeded"
	StatusFailed    LoadStatus = "failed"
)

// Attachment is a file sent along with a message.
type Attachment struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	MimeType string `json:"type" yaml:"type"`
}

// Message is a single entry of a room thread. Messages are append-only.
type Message struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"files,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Room is a chat room owned by exactly one user bucket.
type Room struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Messages  []Message `json:"messages"`
}

// Clone returns a deep copy of the room.
func (r Room) Clone() Room {
	out := r
	out.Messages = make([]Message, len(r.Messages))
	for i, m := range r.Messages {
		out.Messages[i] = m
		if m.Attachments != nil {
			out.Messages[i].Attachments = append([]Attachment(nil), m.Attachments...)
		}
	}
	return out
}

// UserBucket holds the rooms of a single user along with fetch state.
// RequestSeq is bumped on every fetch start; completions carrying an older
// sequence are stale.
type UserBucket struct {
	Rooms      []Room     `json:"list"`
	LoadStatus LoadStatus `json:"status"`
	Error      string     `json:"error,omitempty"`
	SearchTerm string     `json:"searchTerm"`
	RequestSeq uint64     `json:"-"`
}

// NewUserBucket returns an empty bucket in idle state.
func NewUserBucket() UserBucket {
	return UserBucket{Rooms: []Room{}, LoadStatus: StatusIdle}
}

// Clone returns a deep copy of the bucket.
func (b UserBucket) Clone() UserBucket {
	out := b
	out.Rooms = make([]Room, len(b.Rooms))
	for i, r := range b.Rooms {
		out.Rooms[i] = r.Clone()
	}
	return out
}

// FindRoom returns the index of the room with id, or -1.
func (b UserBucket) FindRoom(id string) int {
	for i, r := range b.Rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// NewRoom holds caller-supplied fields of a room to create.
type NewRoom struct {
	Title     string
	CreatedAt time.Time
}

// RoomBackend is the remote seam for room persistence. The default
// implementation is an in-process simulation with artificial latency.
type RoomBackend interface {
	ListRooms(ctx context.Context, userID string) ([]Room, error)
	CreateRoom(ctx context.Context, userID string, room NewRoom) (Room, error)
	DeleteRoom(ctx context.Context, userID string, roomID string) error
}
