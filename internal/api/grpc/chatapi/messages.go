package chatapi

import (
	"time"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

type RequestOTPRequest struct {
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

type RequestOTPResponse struct {
	ChallengeID string    `json:"challengeId"`
	UserID      string    `json:"userId"`
	Code        string    `json:"code"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Message     string    `json:"message"`
}

type VerifyOTPRequest struct {
	ChallengeID string `json:"challengeId"`
	OTP         string `json:"otp"`
}

type VerifyOTPResponse struct {
	AccessToken string        `json:"accessToken"`
	Session     model.Session `json:"session"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type SessionRequest struct{}

type SessionResponse struct {
	Session model.Session `json:"session"`
}

// RoomsSnapshot is the caller's bucket as the room list shows it: rooms
// filtered by the search term, newest first.
type RoomsSnapshot struct {
	Rooms      []model.Room     `json:"rooms"`
	Status     model.LoadStatus `json:"status"`
	Error      string           `json:"error,omitempty"`
	SearchTerm string           `json:"searchTerm"`
}

type FetchRoomsRequest struct{}

type ListRoomsRequest struct{}

type CreateRoomRequest struct {
	Title string `json:"title"`
}

type RoomResponse struct {
	Room model.Room `json:"room"`
}

type DeleteRoomRequest struct {
	RoomID string `json:"roomId"`
}

type DeleteRoomResponse struct{}

type GetRoomRequest struct {
	RoomID string `json:"roomId"`
}

type SetSearchTermRequest struct {
	Term string `json:"term"`
}

type SendMessageRequest struct {
	RoomID      string             `json:"roomId"`
	Prompt      string             `json:"prompt"`
	Attachments []model.Attachment `json:"files,omitempty"`
}

type SendMessageResponse struct {
	UserMessage model.Message `json:"userMessage"`
	Reply       model.Message `json:"reply"`
}

type WatchRoomsRequest struct{}

type ListDirectoryRequest struct {
	Term string `json:"term"`
}

type ListDirectoryResponse struct {
	Entries []model.DirectoryEntry `json:"entries"`
	Status  model.LoadStatus       `json:"status"`
	Error   string                 `json:"error,omitempty"`
	Default *model.DirectoryEntry  `json:"default,omitempty"`
}

type ResetDirectoryRequest struct{}

type ResetDirectoryResponse struct{}
