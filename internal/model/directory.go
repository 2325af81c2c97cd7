package model

import "context"

// DirectoryEntry is a selectable dialing code with its flag image.
type DirectoryEntry struct {
	DisplayName string `json:"name"`
	DialCode    string `json:"code"`
	FlagURL     string `json:"flag"`
}

// DirectorySource fetches the full list of directory entries.
type DirectorySource interface {
	Fetch(ctx context.Context) ([]DirectoryEntry, error)
}
