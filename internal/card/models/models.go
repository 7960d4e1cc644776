package models

import (
	examModels "climbreg/internal/exam/models"
	"climbreg/internal/sheet"
)

// Card is one physical membership card. Cards are never deleted; assigning
// and releasing only changes who holds them.
type Card struct {
	sheet.Row
	IssuedCardID string
	CardType     string
	ClimberID    string
	IssuedAt     string
	IssuedBy     string
}

// CardSchema maps the card sheet, which has no header row.
func CardSchema(table string) sheet.Schema[*Card] {
	return sheet.Schema[*Card]{
		Name: table,
		New:  func() *Card { return &Card{} },
		Columns: []sheet.Column[*Card]{
			{Name: "issuedCardId", Field: func(c *Card) *string { return &c.IssuedCardID }},
			{Name: "cardType", Field: func(c *Card) *string { return &c.CardType }},
			{Name: "climberId", Field: func(c *Card) *string { return &c.ClimberID }},
			{Name: "issuedAt", Field: func(c *Card) *string { return &c.IssuedAt }},
			{Name: "issuedBy", Field: func(c *Card) *string { return &c.IssuedBy }},
		},
		Fixed: true,
	}
}

// Kind is the certificate kind the card is printed for.
func (c *Card) Kind() examModels.Kind {
	return examModels.ParseKind(c.CardType)
}

func (c *Card) IsAssigned() bool {
	return c.ClimberID != ""
}
