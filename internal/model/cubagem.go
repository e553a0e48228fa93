package model

import (
	"time"

	"github.com/google/uuid"
)

// Cubagem converts physical pit dimensions into usable volume figures.
// Exactly one per dragagem. Measurements and VolumeNormal are immutable once
// computed; only VolumeReduzido accepts a manual operator override.
type Cubagem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DragagemID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PaiolID        uuid.UUID `gorm:"type:uuid;index;not null"`
	MedidaInferior float64   `gorm:"not null"`
	MedidaSuperior float64   `gorm:"not null"`
	Perimetro      float64   `gorm:"not null"`
	VolumeNormal   float64   `gorm:"not null"`
	// VolumeReduzido is operator-entered (nominally ~85% of normal), never derived.
	VolumeReduzido float64 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Dragagem *Dragagem `gorm:"foreignKey:DragagemID"`
}

// TableName overrides GORM's default pluralization (cubagems → cubagens).
func (Cubagem) TableName() string { return "cubagens" }
