package assistant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// Template maps a set of keywords to a canned reply.
type Template struct {
	Name        string             `yaml:"name"`
	Keywords    []string           `yaml:"keywords"`
	Response    string             `yaml:"response"`
	Attachments []model.Attachment `yaml:"files,omitempty"`
}

// Fallback is returned when no template matches.
const Fallback = "I'm not quite sure how to answer that. Could you please rephrase your question or ask about a specific topic like products, pricing, or support?"

// DefaultTemplates returns the built-in ordered template list.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:     "greeting",
			Keywords: []string{"hi", "hello", "hey", "how are you"},
			Response: "Hello! I'm doing great, thank you for asking. How can I assist you today?",
		},
		{
			Name:     "products",
			Keywords: []string{"product", "products", "offerings", "solution", "solutions"},
			Response: "Certainly! We offer a range of products including software solutions, hardware devices, and consulting services. Could you tell me which category you're interested in?",
		},
		{
			Name:     "brochure",
			Keywords: []string{"brochure", "download", "document", "info"},
			Response: "Yes, we do! Here is our latest software solutions brochure. It covers all our offerings in detail.",
			Attachments: []model.Attachment{
				{Name: "SoftwareSolutions_Brochure.pdf", URL: "/assets/SoftwareSolutions_Brochure.pdf", MimeType: "application/pdf"},
			},
		},
		{
			Name:     "pricing",
			Keywords: []string{"price", "cost", "pricing", "how much"},
			Response: "To give you the most accurate pricing, could you specify which product or service you're interested in? Generally, our solutions are tailored to your needs.",
		},
		{
			Name:     "hours",
			Keywords: []string{"hours", "open", "closing", "operating"},
			Response: "Our customer support is available Monday to Friday, from 9 AM to 6 PM IST. Our website is available 24/7!",
		},
		{
			Name:     "support",
			Keywords: []string{"support", "help", "agent", "human"},
			Response: "I can help with many common questions. For more complex technical support, I'll connect you to a human agent. Please hold while I check availability.",
		},
		{
			Name:     "thanks",
			Keywords: []string{"thank", "thanks", "appreciate"},
			Response: "You're most welcome! Is there anything else I can assist you with today?",
		},
		{
			Name:     "goodbye",
			Keywords: []string{"goodbye", "bye", "see you"},
			Response: "Goodbye! Have a great day.",
		},
		{
			Name:     "account",
			Keywords: []string{"account", "login", "password"},
			Response: "For account-related queries, please visit our 'My Account' section on the website or contact support directly for security reasons.",
		},
		{
			Name:     "features",
			Keywords: []string{"feature", "features", "what does it do"},
			Response: "Our products come with a wide array of features designed to boost your productivity. Could you specify which product you're curious about?",
		},
	}
}

// LoadTemplates reads an ordered YAML list of templates from path.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes an ordered YAML list of templates.
func ParseTemplates(data []byte) ([]Template, error) {
	var templates []Template
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	for i, t := range templates {
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("template %d (%s) has no keywords", i, t.Name)
		}
		if t.Response == "" {
			return nil, fmt.Errorf("template %d (%s) has an empty response", i, t.Name)
		}
	}

	return templates, nil
}
