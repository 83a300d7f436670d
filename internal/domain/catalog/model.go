package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Act is one entry of the national dental fee schedule. Cotation is the
// symbolic key-letter value (e.g. "D15"); Honoraire is the conventional fee
// in dinars and may be absent for acts without a negotiated tariff.
type Act struct {
	Code        string   `json:"code"`
	Designation string   `json:"designation"`
	Cotation    string   `json:"cotation"`
	Honoraire   *float64 `json:"honoraire"`
	Notes       string   `json:"notes,omitempty"`
}

// ActGroup is the unit of atomicity for act mutations: the acts live as an
// ordered array on the group row and are rewritten as a whole. A group is
// identified by (section id, title); the title may be empty.
type ActGroup struct {
	ID        uuid.UUID `json:"id"`
	SectionID string    `json:"section_id"`
	Title     string    `json:"title"`
	Acts      []Act     `json:"acts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindAct returns the index of the act with the given code, or -1.
func (g *ActGroup) FindAct(code string) int {
	for i, a := range g.Acts {
		if a.Code == code {
			return i
		}
	}
	return -1
}

// ActSection groups related acts under a chapter. Sections keep the stable
// string ids of the fee schedule ("section-1" ...), not uuids.
type ActSection struct {
	ID        string      `json:"id"`
	ChapterID string      `json:"chapter_id"`
	Title     string      `json:"title"`
	Position  int         `json:"position"`
	Groups    []*ActGroup `json:"groups"`
}

// ActChapter is the top level of the catalog tree.
type ActChapter struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Position int           `json:"position"`
	Sections []*ActSection `json:"sections"`
}

// ActRef is an act resolved to its place in the catalog.
type ActRef struct {
	Act
	ChapterID    string `json:"chapter_id"`
	SectionID    string `json:"section_id"`
	SectionTitle string `json:"section_title"`
	GroupTitle   string `json:"group_title"`
}
