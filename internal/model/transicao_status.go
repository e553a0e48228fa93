package model

import (
	"time"

	"github.com/google/uuid"
)

// TransicaoStatus records one executed status transition of a paiol.
// StatusAnterior is nil only for the implicit creation entry.
// Rows are append-only — transitions are NEVER modified or deleted.
type TransicaoStatus struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaiolID        uuid.UUID `gorm:"type:uuid;index;not null"`
	StatusAnterior *string   `gorm:"type:varchar(20)"`
	StatusNovo     string    `gorm:"type:varchar(20);not null"`
	ResponsavelID  *uuid.UUID `gorm:"type:uuid"`
	Observacoes    *string
	CreatedAt      time.Time

	Paiol *Paiol `gorm:"foreignKey:PaiolID"`
}

// TableName overrides GORM's default pluralization (transicao_statuses → transicoes_status).
func (TransicaoStatus) TableName() string { return "transicoes_status" }
