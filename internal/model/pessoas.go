package model

import (
	"time"

	"github.com/google/uuid"
)

// Lookup tables referenced by dragagens, retiradas, pagamentos and gastos.
// They carry no lifecycle rules of their own; the timeline resolves names
// from them in batch.

// Dragador is the lead crew member of a dredging session (mandatory).
type Dragador struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization (dragadors → dragadores).
func (Dragador) TableName() string { return "dragadores" }

// Ajudante is the optional helper crew member.
type Ajudante struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cliente buys withdrawn material.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TipoInsumo categorizes supply expenses.
type TipoInsumo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome          string    `gorm:"index;not null"`
	Categoria     string    `gorm:"not null"`
	UnidadeMedida string    `gorm:"not null;default:'litro'"`
	Ativo         bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default pluralization (tipo_insumos → tipos_insumo).
func (TipoInsumo) TableName() string { return "tipos_insumo" }
