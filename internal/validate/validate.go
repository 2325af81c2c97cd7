// Package validate checks form input before it reaches any service.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
	otpLength      = 6
	maxTitleLength = 50
)

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Phone validates the country code and local number of the login form.
func Phone(countryCode, number string) error {
	if strings.TrimSpace(countryCode) == "" {
		return model.NewValidationError("countryCode", "Please select a country code.")
	}
	if len(number) < minPhoneDigits {
		return model.NewValidationError("phoneNumber", "Phone number must be at least 10 digits.")
	}
	if len(number) > maxPhoneDigits {
		return model.NewValidationError("phoneNumber", "Phone number cannot exceed 15 digits.")
	}
	if !digitsOnly(number) {
		return model.NewValidationError("phoneNumber", "Phone number must contain only digits.")
	}
	return nil
}

// OTP validates a submitted one-time passcode.
func OTP(code string) error {
	if len(code) != otpLength {
		return model.NewValidationError("otp", "OTP must be 6 digits.")
	}
	if !digitsOnly(code) {
		return model.NewValidationError("otp", "OTP must contain only digits.")
	}
	return nil
}

// RoomTitle validates the title of a new chat room.
func RoomTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 {
		return model.NewValidationError("title", "Title cannot be empty.")
	}
	if n > maxTitleLength {
		return model.NewValidationError("title", "Title cannot exceed 50 characters.")
	}
	return nil
}

// Attachment accepts image files only.
func Attachment(a model.Attachment) error {
	if !strings.HasPrefix(a.MimeType, "image/") {
		return model.NewValidationError("files", "Only image files are allowed.")
	}
	return nil
}

// Prompt rejects a message with neither text nor attachments.
func Prompt(content string, attachments []model.Attachment) error {
	if strings.TrimSpace(content) == "" && len(attachments) == 0 {
		return model.NewValidationError("prompt", "Message cannot be empty.")
	}
	for _, a := range attachments {
		if err := Attachment(a); err != nil {
			return err
		}
	}
	return nil
}
