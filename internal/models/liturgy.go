package models

import "time"

type ItemType string

const (
	ItemSong         ItemType = "musica"
	ItemAnnouncement ItemType = "aviso"
	ItemReading      ItemType = "leitura"
	ItemFree         ItemType = "livre"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemSong, ItemAnnouncement, ItemReading, ItemFree:
		return true
	}
	return false
}

// NeedsReference reports whether the item points at a row in another table.
func (t ItemType) NeedsReference() bool { return t == ItemSong || t == ItemAnnouncement }

type Liturgy struct {
	ID        string    `json:"id"`
	ChurchID  string    `json:"church_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type LiturgyItem struct {
	ID          string   `json:"id"`
	LiturgyID   string   `json:"liturgy_id"`
	Position    int      `json:"position"`
	Type        ItemType `json:"type"`
	ReferenceID *string  `json:"reference_id,omitempty"`
	Title       string   `json:"title"`
	Minutes     int      `json:"minutes,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type Song struct {
	ID       string `json:"id"`
	ChurchID string `json:"church_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist,omitempty"`
	Key      string `json:"key,omitempty"`
	BPM      *int   `json:"bpm,omitempty"`
	ChordURL string `json:"chord_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

type Announcement struct {
	ID        string    `json:"id"`
	ChurchID  string    `json:"church_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaylistEntry is a liturgy item enriched with the row it references.
type PlaylistEntry struct {
	LiturgyItem
	Song         *Song         `json:"song,omitempty"`
	Announcement *Announcement `json:"announcement,omitempty"`
}

type Playlist struct {
	Liturgy      Liturgy         `json:"liturgy"`
	Items        []PlaylistEntry `json:"items"`
	TotalMinutes int             `json:"total_minutes"`
}
