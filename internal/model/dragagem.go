package model

import (
	"time"

	"github.com/google/uuid"
)

// Dragagem is a dredging work session on a paiol. DataFim stays nil while the
// session is active; at most one session per paiol may be open at a time,
// enforced by the status service (not by storage).
type Dragagem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaiolID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	DragadorID uuid.UUID  `gorm:"type:uuid;not null"`
	AjudanteID *uuid.UUID `gorm:"type:uuid"`
	DataInicio time.Time  `gorm:"not null"`
	DataFim    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Paiol    *Paiol    `gorm:"foreignKey:PaiolID"`
	Dragador *Dragador `gorm:"foreignKey:DragadorID"`
	Ajudante *Ajudante `gorm:"foreignKey:AjudanteID"`
}

// TableName overrides GORM's default pluralization (dragagems → dragagens).
func (Dragagem) TableName() string { return "dragagens" }
