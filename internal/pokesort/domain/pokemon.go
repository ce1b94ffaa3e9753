package domain

import "time"

// Rarity values accepted for a Pokemon.
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityUltraRare = "Ultra Rare"
)

type Pokemon struct {
	ID          string
	Number      string // unique catalogue number, e.g. "025"
	Name        string
	Types       []string
	Rarity      string
	Variant     string
	IsCollected bool
	ImageURL    string
	Generation  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PokemonFilter narrows a catalogue listing. Zero values mean "any".
type PokemonFilter struct {
	Generation  int
	Type        string
	IsCollected *bool
}

// Page selects a slice of a sorted listing. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int { return (p.Page - 1) * p.Limit }
