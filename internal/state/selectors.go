package state

import (
	"sort"
	"strings"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// FilterRooms keeps rooms whose title contains term, case-insensitively.
// An empty term keeps everything. The input order is preserved.
func FilterRooms(rooms []model.Room, term string) []model.Room {
	needle := strings.ToLower(term)
	out := make([]model.Room, 0, len(rooms))
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst orders rooms by creation time, newest first.
func SortNewestFirst(rooms []model.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
}

// VisibleRooms applies the bucket's search term and display ordering.
func VisibleRooms(b model.UserBucket) []model.Room {
	rooms := FilterRooms(b.Rooms, b.SearchTerm)
	SortNewestFirst(rooms)
	return rooms
}
