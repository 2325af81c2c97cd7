package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/chatapi"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/state"
)

// DirectoryService defines the dialing-code directory operations.
type DirectoryService interface {
	List(ctx context.Context, term string) ([]model.DirectoryEntry, state.DirectoryState, error)
	Reset()
	Default() (model.DirectoryEntry, bool)
}

// Directory handles gRPC endpoints for the dialing-code directory.
type Directory struct {
	directoryService DirectoryService
	logger           *logger.Logger
}

var _ chatapi.DirectoryServer = (*Directory)(nil)

func NewDirectory(directoryService DirectoryService, logger *logger.Logger) *Directory {
	return &Directory{directoryService: directoryService, logger: logger}
}

// List returns directory entries matching req.Term.
func (h *Directory) List(ctx context.Context, req *chatapi.ListDirectoryRequest) (*chatapi.ListDirectoryResponse, error) {
	entries, cur, err := h.directoryService.List(ctx, req.Term)
	if err != nil {
		h.logger.Error("Directory handler: list failed", "error", err.Error())
		return nil, status.Error(codes.Unavailable, cur.Error)
	}
	if cur.Status == model.StatusFailed {
		return nil, status.Error(codes.Unavailable, cur.Error)
	}

	resp := &chatapi.ListDirectoryResponse{
		Entries: entries,
		Status:  cur.Status,
		Error:   cur.Error,
	}
	if def, ok := h.directoryService.Default(); ok {
		resp.Default = &def
	}

	return resp, nil
}

// Reset drops the cached directory so the next List fetches it again.
func (h *Directory) Reset(_ context.Context, _ *chatapi.ResetDirectoryRequest) (*chatapi.ResetDirectoryResponse, error) {
	h.directoryService.Reset()
	return &chatapi.ResetDirectoryResponse{}, nil
}
