package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GastoInsumo is a supply expense (fuel, oil, parts…) scoped to one dragagem.
type GastoInsumo struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DragagemID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	TipoInsumoID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    float64         `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataGasto     time.Time       `gorm:"index;not null"`
	Observacoes   *string
	CreatedAt     time.Time

	Dragagem   *Dragagem   `gorm:"foreignKey:DragagemID"`
	TipoInsumo *TipoInsumo `gorm:"foreignKey:TipoInsumoID"`
}

// TableName overrides GORM's default pluralization (gasto_insumos → gastos_insumo).
func (GastoInsumo) TableName() string { return "gastos_insumo" }
