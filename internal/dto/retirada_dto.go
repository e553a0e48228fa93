package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarRetiradaRequest struct {
	ClienteID       string           `json:"cliente_id"       validate:"required,uuid"`
	VolumeRetirado  float64          `json:"volume_retirado"  validate:"required,gt=0"`
	ValorUnitario   *decimal.Decimal `json:"valor_unitario"   validate:"omitempty,gt=0"`
	StatusPagamento string           `json:"status_pagamento" validate:"omitempty,oneof=PAGO NAO_PAGO"`
	TemFrete        bool             `json:"tem_frete"`
	DataRetirada    *string          `json:"data_retirada"    validate:"omitempty"` // RFC 3339; defaults to now
	Observacoes     *string          `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RetiradaResponse struct {
	ID              string           `json:"id"`
	PaiolID         string           `json:"paiol_id"`
	ClienteID       string           `json:"cliente_id"`
	Cliente         string           `json:"cliente"`
	VolumeRetirado  float64          `json:"volume_retirado"`
	ValorUnitario   *decimal.Decimal `json:"valor_unitario"`
	ValorTotal      *decimal.Decimal `json:"valor_total"`
	StatusPagamento string           `json:"status_pagamento"`
	TemFrete        bool             `json:"tem_frete"`
	DataRetirada    string           `json:"data_retirada"`
	Observacoes     *string          `json:"observacoes"`
}

// StatusVolumeResponse reconciles the measured capacity of the active session
// against cumulative withdrawals. Disponivel may be negative (over-draw) and
// PercentualUtilizado may exceed 100 — both are valid, displayed states.
type StatusVolumeResponse struct {
	PaiolID             string  `json:"paiol_id"`
	Capacidade          float64 `json:"capacidade"`
	Retirado            float64 `json:"retirado"`
	Disponivel          float64 `json:"disponivel"`
	PercentualUtilizado float64 `json:"percentual_utilizado"`
	SobreRetirada       bool    `json:"sobre_retirada"`
}
