package handler

import (
	"context"
	"fmt"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/api/grpc/chatapi"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// AuthService defines the mock OTP login flow.
type AuthService interface {
	RequestOTP(ctx context.Context, countryCode, phoneNumber string) (model.OTPRequest, error)
	VerifyOTP(ctx context.Context, challengeID, code string) (model.SessionResult, error)
	Logout(ctx context.Context) error
	Session() model.Session
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

var _ chatapi.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// RequestOTP sends a one-time passcode. The code is echoed back since there
// is no SMS delivery.
func (h *Auth) RequestOTP(ctx context.Context, req *chatapi.RequestOTPRequest) (*chatapi.RequestOTPResponse, error) {
	h.logger.Debug("Auth handler: processing otp request",
		"country_code", req.CountryCode)

	otp, err := h.authService.RequestOTP(ctx, req.CountryCode, req.PhoneNumber)
	if err != nil {
		h.logger.Error("Auth handler: otp request failed",
			"country_code", req.CountryCode,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: otp request completed",
		"user_id", otp.UserID,
		"challenge_id", otp.ChallengeID)

	return &chatapi.RequestOTPResponse{
		ChallengeID: otp.ChallengeID,
		UserID:      otp.UserID,
		Code:        otp.Code,
		ExpiresAt:   otp.ExpiresAt,
		Message:     fmt.Sprintf("OTP sent: %s", otp.Code),
	}, nil
}

// VerifyOTP checks the code and logs the user in.
func (h *Auth) VerifyOTP(ctx context.Context, req *chatapi.VerifyOTPRequest) (*chatapi.VerifyOTPResponse, error) {
	h.logger.Debug("Auth handler: processing otp verification",
		"challenge_id", req.ChallengeID)

	result, err := h.authService.VerifyOTP(ctx, req.ChallengeID, req.OTP)
	if err != nil {
		h.logger.Error("Auth handler: otp verification failed",
			"challenge_id", req.ChallengeID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: otp verification completed",
		"user_id", result.Session.UserID)

	return &chatapi.VerifyOTPResponse{
		AccessToken: result.AccessToken,
		Session:     result.Session,
	}, nil
}

func (h *Auth) Logout(ctx context.Context, _ *chatapi.LogoutRequest) (*chatapi.LogoutResponse, error) {
	h.logger.Debug("Auth handler: processing logout request")

	if err := h.authService.Logout(ctx); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: logout completed")

	return &chatapi.LogoutResponse{}, nil
}

func (h *Auth) Session(_ context.Context, _ *chatapi.SessionRequest) (*chatapi.SessionResponse, error) {
	return &chatapi.SessionResponse{Session: h.authService.Session()}, nil
}
