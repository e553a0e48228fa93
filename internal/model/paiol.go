package model

import (
	"time"

	"github.com/google/uuid"
)

// Pit lifecycle statuses. Transitions follow strict adjacency:
// VAZIO → DRAGANDO → CHEIO → RETIRANDO → VAZIO.
const (
	StatusVazio     = "VAZIO"
	StatusDragando  = "DRAGANDO"
	StatusCheio     = "CHEIO"
	StatusRetirando = "RETIRANDO"
)

// Paiol is a sand storage pit, the unit whose lifecycle the engine governs.
// CicloAtual is informational — the authoritative cycle number for any moment
// is re-derived from the fechamentos table, never read from this field.
// Paiols are never hard-deleted; Activo=false deactivates them.
type Paiol struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string    `gorm:"index;not null"`
	Localizacao string    `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'VAZIO'"`
	CicloAtual  int       `gorm:"not null;default:1"`
	Ativo       bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatusValido reports whether s is one of the four lifecycle statuses.
func StatusValido(s string) bool {
	switch s {
	case StatusVazio, StatusDragando, StatusCheio, StatusRetirando:
		return true
	}
	return false
}
