package model

// Responder produces the assistant reply to a user prompt.
type Responder interface {
	Respond(input string) Message
}
