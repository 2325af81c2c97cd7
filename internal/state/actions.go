package state

import "github.com/varundevpro/kuvaka-tech-assignment/internal/model"

// Action is a state transition request. Every action is offered to every slice reducer.
type Action interface {
	Type() string
}

// LoginSucceeded marks the session authenticated for UserID.
type LoginSucceeded struct {
	UserID      string
	DisplayName string
}

func (LoginSucceeded) Type() string { return "session/loginSucceeded" }

// LoggedOut clears the session.
type LoggedOut struct{}

func (LoggedOut) Type() string { return "session/loggedOut" }

// FetchStarted moves a bucket into loading. Seq must come from Store.NextRequestSeq.
type FetchStarted struct {
	UserID string
	Seq    uint64
}

func (FetchStarted) Type() string { return "rooms/fetchStarted" }

// FetchSucceeded replaces the bucket's rooms if Seq is still current.
type FetchSucceeded struct {
	UserID string
	Seq    uint64
	Rooms  []model.Room
}

func (FetchSucceeded) Type() string { return "rooms/fetchSucceeded" }

// FetchFailed records a fetch error if Seq is still current.
type FetchFailed struct {
	UserID string
	Seq    uint64
	Error  string
}

func (FetchFailed) Type() string { return "rooms/fetchFailed" }

// RoomCreated appends a room returned by the backend.
type RoomCreated struct {
	UserID string
	Room   model.Room
}

func (RoomCreated) Type() string { return "rooms/roomCreated" }

// RoomDeleted removes a room by id.
type RoomDeleted struct {
	UserID string
	RoomID string
}

func (RoomDeleted) Type() string { return "rooms/roomDeleted" }

// MessageAppended appends a message to a room thread.
type MessageAppended struct {
	UserID  string
	RoomID  string
	Message model.Message
}

func (MessageAppended) Type() string { return "rooms/messageAppended" }

// SearchTermSet stores the room list filter of a user.
type SearchTermSet struct {
	UserID string
	Term   string
}

func (SearchTermSet) Type() string { return "rooms/searchTermSet" }

// DirectoryLoading marks the directory fetch in flight.
type DirectoryLoading struct{}

func (DirectoryLoading) Type() string { return "directory/loading" }

// DirectoryLoaded stores fetched directory entries.
type DirectoryLoaded struct {
	Entries []model.DirectoryEntry
}

func (DirectoryLoaded) Type() string { return "directory/loaded" }

// DirectoryFailed records a directory fetch error.
type DirectoryFailed struct {
	Error string
}

func (DirectoryFailed) Type() string { return "directory/failed" }

// DirectoryReset returns the directory slice to idle so it can be fetched again.
type DirectoryReset struct{}

func (DirectoryReset) Type() string { return "directory/reset" }

// Hydrated merges persisted slices into the state at startup.
type Hydrated struct {
	Session model.Session
	Rooms   map[string]model.UserBucket
}

func (Hydrated) Type() string { return "persist/hydrated" }

// UserOf returns the bucket owner an action targets. Actions that are not
// scoped to a single bucket report false.
func UserOf(a Action) (string, bool) {
	switch a := a.(type) {
	case FetchStarted:
		return a.UserID, true
	case FetchSucceeded:
		return a.UserID, true
	case FetchFailed:
		return a.UserID, true
	case RoomCreated:
		return a.UserID, true
	case RoomDeleted:
		return a.UserID, true
	case MessageAppended:
		return a.UserID, true
	case SearchTermSet:
		return a.UserID, true
	}
	return "", false
}
