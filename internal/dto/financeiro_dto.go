package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarPagamentoRequest struct {
	TipoPessoa    string          `json:"tipo_pessoa"    validate:"required,oneof=DRAGADOR AJUDANTE"`
	PessoaID      string          `json:"pessoa_id"      validate:"required,uuid"`
	Tipo          string          `json:"tipo"           validate:"required,oneof=ADIANTAMENTO PAGAMENTO_FINAL"`
	Valor         decimal.Decimal `json:"valor"          validate:"required,gt=0"`
	DataPagamento *string         `json:"data_pagamento" validate:"omitempty"` // RFC 3339; defaults to now
	Observacoes   *string         `json:"observacoes"`
}

type RegistrarGastoRequest struct {
	TipoInsumoID  string          `json:"tipo_insumo_id" validate:"required,uuid"`
	Quantidade    float64         `json:"quantidade"     validate:"required,gt=0"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required,gt=0"`
	DataGasto     *string         `json:"data_gasto"     validate:"omitempty"` // RFC 3339; defaults to now
	Observacoes   *string         `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagamentoResponse struct {
	ID            string          `json:"id"`
	DragagemID    string          `json:"dragagem_id"`
	TipoPessoa    string          `json:"tipo_pessoa"`
	PessoaID      string          `json:"pessoa_id"`
	Pessoa        string          `json:"pessoa"`
	Tipo          string          `json:"tipo"`
	Valor         decimal.Decimal `json:"valor"`
	DataPagamento string          `json:"data_pagamento"`
	Observacoes   *string         `json:"observacoes"`
}

type GastoResponse struct {
	ID            string          `json:"id"`
	DragagemID    string          `json:"dragagem_id"`
	TipoInsumoID  string          `json:"tipo_insumo_id"`
	Insumo        string          `json:"insumo"`
	Categoria     string          `json:"categoria"`
	Quantidade    float64         `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	DataGasto     string          `json:"data_gasto"`
	Observacoes   *string         `json:"observacoes"`
}
