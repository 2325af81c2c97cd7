package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

const (
	msgLoginRequired = "Please login to access chat rooms"
	msgRoomNotFound  = "Chat room not found"
	msgInternal      = "internal server error"
)

func handleError(err error) error {
	var validationErr *model.ValidationError
	var otpErr *model.InvalidOTPError

	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.As(err, &otpErr):
		return status.Error(codes.Unauthenticated, otpErr.Error())
	case errors.Is(err, model.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, msgLoginRequired)
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, msgRoomNotFound)
	case errors.Is(err, model.ErrChallengeNotFound),
		errors.Is(err, model.ErrChallengeExpired),
		errors.Is(err, model.ErrChallengeConsumed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, msgInternal)
	}
}
