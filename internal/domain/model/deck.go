package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeckCard is a card entry in a deck.
//
// @Description Card name and number of copies
// @Example {"name": "Lightning Bolt", "count": 4}
type DeckCard struct {
	Name  string `bson:"name" json:"name" example:"Lightning Bolt"`
	Count int    `bson:"count" json:"count" example:"4"`
}

// Deck represents a persisted deck document.
type Deck struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Cards     []DeckCard         `bson:"cards" json:"cards"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TotalCards returns the sum of all card counts in the deck.
func (d Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Count
	}
	return total
}

// DeckUpdate carries a partial deck update. Nil fields are left unchanged.
type DeckUpdate struct {
	Name  *string
	Cards []DeckCard
}

// ParsedDeckList is the result of parsing a plain-text deck list.
type ParsedDeckList struct {
	Cards      []DeckCard `json:"cards"`
	TotalCards int        `json:"total_cards"`
	Errors     []string   `json:"errors"`
}
