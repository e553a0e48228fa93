package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment statuses for a retirada.
const (
	PagamentoPago    = "PAGO"
	PagamentoNaoPago = "NAO_PAGO"
)

// Retirada is one material withdrawal from a paiol by a cliente.
// There is no upper bound against remaining volume — over-draw is allowed and
// surfaced by the volume service, never blocked here.
type Retirada struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaiolID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ClienteID       uuid.UUID `gorm:"type:uuid;not null"`
	VolumeRetirado  float64   `gorm:"not null"`
	ValorUnitario   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ValorTotal      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	StatusPagamento string    `gorm:"type:varchar(20);not null;default:'NAO_PAGO'"`
	TemFrete        bool      `gorm:"not null;default:false"`
	DataRetirada    time.Time `gorm:"index;not null"`
	Observacoes     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}
