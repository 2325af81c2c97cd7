package directory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

// country is one element of the restcountries response with fields=idd,name,flags.
type country struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	IDD struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	Flags struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
}

// Parse flattens the nested country list into directory entries. Every idd
// suffix yields one entry; entries without a dial code or flag are dropped.
// The result is sorted by display name.
func Parse(data []byte) ([]model.DirectoryEntry, error) {
	var countries []country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("failed to decode directory: %w", err)
	}

	entries := make([]model.DirectoryEntry, 0, len(countries))
	for _, c := range countries {
		suffixes := c.IDD.Suffixes
		if len(suffixes) == 0 {
			suffixes = []string{""}
		}

		for _, suffix := range suffixes {
			code := c.IDD.Root + suffix
			if code == "" || c.Flags.SVG == "" {
				continue
			}
			entries = append(entries, model.DirectoryEntry{
				DisplayName: c.Name.Common,
				DialCode:    code,
				FlagURL:     c.Flags.SVG,
			})
		}
	}

	// Collator is not safe for concurrent use; one per call.
	col := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].DisplayName, entries[j].DisplayName) < 0
	})

	return entries, nil
}

// Search keeps entries whose name contains term case-insensitively or whose
// dial code contains term.
func Search(entries []model.DirectoryEntry, term string) []model.DirectoryEntry {
	if term == "" {
		return entries
	}

	needle := strings.ToLower(term)
	out := make([]model.DirectoryEntry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.DisplayName), needle) || strings.Contains(e.DialCode, term) {
			out = append(out, e)
		}
	}
	return out
}

// DefaultDialCode is preselected in the phone form when present.
const DefaultDialCode = "+91"

// Default returns the +91 entry, or the first entry when absent.
func Default(entries []model.DirectoryEntry) (model.DirectoryEntry, bool) {
	for _, e := range entries {
		if e.DialCode == DefaultDialCode {
			return e, true
		}
	}
	if len(entries) == 0 {
		return model.DirectoryEntry{}, false
	}
	return entries[0], true
}
