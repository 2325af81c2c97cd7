package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

const (
	// DefaultKey is the snapshot key the whole persisted tree is stored under.
	DefaultKey = "root"
	// CurrentVersion is the record format written by this build.
	CurrentVersion = 1
)

var (
	// ErrFutureVersion is returned for records written by a newer build.
	ErrFutureVersion = errors.New("record version is newer than supported")
	// ErrNoMigration is returned when no migration path reaches CurrentVersion.
	ErrNoMigration = errors.New("no migration path for record version")
)

// Record is the persisted subset of the state tree. The directory is never persisted.
type Record struct {
	Version int                         `json:"version"`
	Session model.Session               `json:"auth"`
	Rooms   map[string]model.UserBucket `json:"chatRooms"`
}

// Migration upgrades a raw record from version v to v+1.
type Migration func(raw map[string]any) (map[string]any, error)

// Migrations maps a source version to the step that upgrades it by one.
type Migrations map[int]Migration

// DefaultMigrations returns the migration table of the current record format.
func DefaultMigrations() Migrations {
	return Migrations{
		0: migrateV0,
	}
}

// migrateV0 upgrades unversioned records, which kept rooms under "rooms"
// and each bucket's rooms under "rooms" instead of "list".
func migrateV0(raw map[string]any) (map[string]any, error) {
	if legacy, ok := raw["rooms"]; ok {
		if _, exists := raw["chatRooms"]; !exists {
			raw["chatRooms"] = legacy
		}
		delete(raw, "rooms")
	}

	buckets, _ := raw["chatRooms"].(map[string]any)
	for id, v := range buckets {
		b, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("bucket %q has unexpected type %T", id, v)
		}
		if list, ok := b["rooms"]; ok {
			b["list"] = list
			delete(b, "rooms")
		}
	}

	raw["version"] = 1
	return raw, nil
}

// Encode serializes state slices into a record of CurrentVersion.
func Encode(session model.Session, rooms map[string]model.UserBucket) ([]byte, error) {
	rec := Record{
		Version: CurrentVersion,
		Session: session,
		Rooms:   rooms,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// Decode parses data, running migrations from its version up to CurrentVersion.
func Decode(data []byte, migrations Migrations) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	version := 0
	if v, ok := raw["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return Record{}, fmt.Errorf("%w: %d", ErrFutureVersion, version)
	}

	for version < CurrentVersion {
		m, ok := migrations[version]
		if !ok {
			return Record{}, fmt.Errorf("%w: %d", ErrNoMigration, version)
		}

		next, err := m(raw)
		if err != nil {
			return Record{}, fmt.Errorf("failed to migrate record from version %d: %w", version, err)
		}
		raw = next
		version++
	}

	upgraded, err := json.Marshal(raw)
	if err != nil {
		return Record{}, fmt.Errorf("failed to marshal migrated record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(upgraded, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal migrated record: %w", err)
	}
	rec.Version = CurrentVersion

	return rec, nil
}

// sanitize resets buckets that were mid-flight or failed when persisted.
func sanitize(rooms map[string]model.UserBucket) map[string]model.UserBucket {
	out := make(map[string]model.UserBucket, len(rooms))
	for id, b := range rooms {
		if b.Rooms == nil {
			b.Rooms = []model.Room{}
		}
		if b.LoadStatus != model.StatusSucceeded {
			b.LoadStatus = model.StatusIdle
			b.Error = ""
		}
		b.RequestSeq = 0
		out[id] = b
	}
	return out
}
