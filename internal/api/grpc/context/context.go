package context

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// userIDKey is the metadata key used to store and retrieve user ID in gRPC context.
const (
	userIDKey string = "user_id"
)

// Manager represents a gRPC context manager for user ID operations.
// It provides methods to set and retrieve user IDs from gRPC metadata.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext sets the user ID in the incoming metadata of ctx and
// returns the new context. A user ID sent by the client is overwritten.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{userIDKey: userID})
	} else {
		md = md.Copy()
		md.Set(userIDKey, userID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetUserIDFromContext retrieves the user ID from gRPC context metadata.
//
// Returns the user ID and a boolean indicating if a non-empty user ID was found.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	userIDs := md.Get(userIDKey)
	if len(userIDs) == 0 || userIDs[0] == "" {
		return "", false
	}

	return userIDs[0], true
}
