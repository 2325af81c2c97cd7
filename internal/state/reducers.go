package state

import "github.com/varundevpro/kuvaka-tech-assignment/internal/model"

const defaultFetchError = "Failed to fetch chat rooms"

// reduceSession is the single update entry point of the session slice.
func reduceSession(s *model.Session, a Action) bool {
	switch a := a.(type) {
	case LoginSucceeded:
		*s = model.Session{Authenticated: true, UserID: a.UserID, DisplayName: a.DisplayName}
		return true
	case LoggedOut:
		if !s.Authenticated && s.UserID == "" {
			return false
		}
		*s = model.Session{}
		return true
	case Hydrated:
		*s = a.Session
		return true
	}
	return false
}

// reduceRooms is the single update entry point of the room registry slice.
// Buckets are created lazily on first access.
func reduceRooms(rooms map[string]model.UserBucket, a Action) bool {
	switch a := a.(type) {
	case FetchStarted:
		b := bucket(rooms, a.UserID)
		// a start that lost the race to a newer fetch must not reopen loading
		if a.Seq < b.RequestSeq {
			return false
		}
		b.RequestSeq = a.Seq
		b.LoadStatus = model.StatusLoading
		rooms[a.UserID] = b
		return true

	case FetchSucceeded:
		b := bucket(rooms, a.UserID)
		if a.Seq != b.RequestSeq {
			return false
		}
		b.LoadStatus = model.StatusSucceeded
		b.Error = ""
		b.Rooms = cloneRooms(a.Rooms)
		rooms[a.UserID] = b
		return true

	case FetchFailed:
		b := bucket(rooms, a.UserID)
		if a.Seq != b.RequestSeq {
			return false
		}
		b.LoadStatus = model.StatusFailed
		b.Error = a.Error
		if b.Error == "" {
			b.Error = defaultFetchError
		}
		rooms[a.UserID] = b
		return true

	case RoomCreated:
		b := bucket(rooms, a.UserID)
		if b.FindRoom(a.Room.ID) >= 0 {
			return false
		}
		room := a.Room.Clone()
		if room.Messages == nil {
			room.Messages = []model.Message{}
		}
		b.Rooms = append(b.Rooms, room)
		rooms[a.UserID] = b
		return true

	case RoomDeleted:
		b, ok := rooms[a.UserID]
		if !ok {
			return false
		}
		i := b.FindRoom(a.RoomID)
		if i < 0 {
			return false
		}
		kept := make([]model.Room, 0, len(b.Rooms)-1)
		kept = append(kept, b.Rooms[:i]...)
		kept = append(kept, b.Rooms[i+1:]...)
		b.Rooms = kept
		rooms[a.UserID] = b
		return true

	case MessageAppended:
		b, ok := rooms[a.UserID]
		if !ok {
			return false
		}
		i := b.FindRoom(a.RoomID)
		if i < 0 {
			return false
		}
		for _, m := range b.Rooms[i].Messages {
			if m.ID == a.Message.ID {
				return false
			}
		}
		b.Rooms[i].Messages = append(b.Rooms[i].Messages, a.Message)
		rooms[a.UserID] = b
		return true

	case SearchTermSet:
		b := bucket(rooms, a.UserID)
		b.SearchTerm = a.Term
		rooms[a.UserID] = b
		return true

	case Hydrated:
		for id := range rooms {
			delete(rooms, id)
		}
		for id, b := range a.Rooms {
			rooms[id] = b.Clone()
		}
		return true
	}
	return false
}

// reduceDirectory is the single update entry point of the directory slice.
func reduceDirectory(d *DirectoryState, a Action) bool {
	switch a := a.(type) {
	case DirectoryLoading:
		d.Status = model.StatusLoading
		return true
	case DirectoryLoaded:
		d.Status = model.StatusSucceeded
		d.Entries = append([]model.DirectoryEntry(nil), a.Entries...)
		d.Error = ""
		return true
	case DirectoryFailed:
		d.Status = model.StatusFailed
		d.Error = a.Error
		return true
	case DirectoryReset:
		*d = DirectoryState{Status: model.StatusIdle}
		return true
	}
	return false
}

func bucket(rooms map[string]model.UserBucket, userID string) model.UserBucket {
	b, ok := rooms[userID]
	if !ok {
		return model.NewUserBucket()
	}
	return b
}

func cloneRooms(in []model.Room) []model.Room {
	out := make([]model.Room, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
