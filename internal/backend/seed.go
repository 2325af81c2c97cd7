package backend

import (
	"time"

	"github.com/google/uuid"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

type seedMessage struct {
	role    model.Role
	content string
	ago     time.Duration
	files   []model.Attachment
}

var generalChat = []seedMessage{
	{model.RoleUser, "Hi there! How are you doing today?", 600 * time.Second, nil},
	{model.RoleAssistant, "Hello! I'm doing great, thank you for asking. How can I assist you?", 580 * time.Second, nil},
	{model.RoleUser, "I'm looking for some information about your products.", 500 * time.Second, nil},
	{model.RoleAssistant, "Certainly! We offer a range of products including software solutions, hardware devices, and consulting services. Could you tell me which category you're interested in?", 480 * time.Second, nil},
	{model.RoleUser, "I'm particularly interested in your software solutions. Do you have a brochure?", 400 * time.Second, nil},
	{model.RoleAssistant, "Yes, we do! Here is our latest software solutions brochure. It covers all our offerings in detail.", 380 * time.Second, []model.Attachment{
		{Name: "SoftwareSolutions_Brochure.pdf", URL: "/path/to/SoftwareSolutions_Brochure.pdf", MimeType: "application/pdf"},
	}},
	{model.RoleUser, "Great, thanks! I'll take a look. Also, what are your operating hours?", 300 * time.Second, nil},
	{model.RoleAssistant, "Our customer support is available Monday to Friday, from 9 AM to 6 PM IST. You can also visit our website for more information anytime.", 280 * time.Second, nil},
	{model.RoleUser, "Can I get a quick overview of your pricing model for the 'Pro' software package?", 200 * time.Second, nil},
	{model.RoleAssistant, "The 'Pro' package costs $99/month, offering unlimited users and premium features. A detailed pricing sheet is also available for download.", 180 * time.Second, []model.Attachment{
		{Name: "Pricing_Sheet_Pro.xlsx", URL: "/path/to/Pricing_Sheet_Pro.xlsx", MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}},
	{model.RoleUser, "I need technical support. Can you connect me to a human agent?", 100 * time.Second, nil},
	{model.RoleAssistant, "I can help with basic queries, but for technical support, I'll transfer you. Please hold while I connect you to an agent.", 80 * time.Second, nil},
	{model.RoleUser, "Thanks for your help!", 20 * time.Second, nil},
	{model.RoleAssistant, "You're welcome! Is there anything else I can assist you with today?", 5 * time.Second, nil},
}

// SeedRooms returns the rooms every user starts with, timestamped relative to now.
func SeedRooms(now time.Time) []model.Room {
	msgs := make([]model.Message, len(generalChat))
	for i, m := range generalChat {
		msgs[i] = model.Message{
			ID:        uuid.NewString(),
			Role:      m.role,
			Content:   m.content,
			CreatedAt: now.Add(-m.ago),
		}
		if m.files != nil {
			msgs[i].Attachments = append([]model.Attachment(nil), m.files...)
		}
	}

	return []model.Room{
		{ID: "1", Title: "General Chat", CreatedAt: now.Add(-5 * time.Minute), Messages: msgs},
	}
}
