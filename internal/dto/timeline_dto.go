package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoEvento identifies the source a timeline event was normalized from.
type TipoEvento string

const (
	EventoTransicao      TipoEvento = "TRANSICAO"
	EventoDragagemInicio TipoEvento = "DRAGAGEM_INICIO"
	EventoDragagemFim    TipoEvento = "DRAGAGEM_FIM"
	EventoCubagem        TipoEvento = "CUBAGEM"
	EventoRetirada       TipoEvento = "RETIRADA"
	EventoPagamento      TipoEvento = "PAGAMENTO"
	EventoGastoInsumo    TipoEvento = "GASTO_INSUMO"
)

// TipoEventoValido reports whether t is one of the seven event kinds.
func TipoEventoValido(t TipoEvento) bool {
	switch t {
	case EventoTransicao, EventoDragagemInicio, EventoDragagemFim,
		EventoCubagem, EventoRetirada, EventoPagamento, EventoGastoInsumo:
		return true
	}
	return false
}

// DetalhesEvento is the tagged union of per-kind event details. Each variant
// carries its own typed field set so consumers switch exhaustively instead of
// probing string-keyed maps.
type DetalhesEvento interface {
	TipoDetalhe() TipoEvento
}

type DetalhesTransicao struct {
	StatusAnterior *string `json:"status_anterior"`
	StatusNovo     string  `json:"status_novo"`
}

func (DetalhesTransicao) TipoDetalhe() TipoEvento { return EventoTransicao }

type DetalhesDragagem struct {
	Dragador  string `json:"dragador"`
	Ajudante  string `json:"ajudante,omitempty"`
	Encerrada bool   `json:"encerrada"`
}

func (d DetalhesDragagem) TipoDetalhe() TipoEvento {
	if d.Encerrada {
		return EventoDragagemFim
	}
	return EventoDragagemInicio
}

type DetalhesCubagem struct {
	MedidaInferior float64 `json:"medida_inferior"`
	MedidaSuperior float64 `json:"medida_superior"`
	Perimetro      float64 `json:"perimetro"`
	VolumeNormal   float64 `json:"volume_normal"`
	VolumeReduzido float64 `json:"volume_reduzido"`
}

func (DetalhesCubagem) TipoDetalhe() TipoEvento { return EventoCubagem }

type DetalhesRetirada struct {
	Cliente         string  `json:"cliente"`
	VolumeRetirado  float64 `json:"volume_retirado"`
	StatusPagamento string  `json:"status_pagamento"`
	TemFrete        bool    `json:"tem_frete"`
}

func (DetalhesRetirada) TipoDetalhe() TipoEvento { return EventoRetirada }

type DetalhesPagamento struct {
	Pessoa     string `json:"pessoa"`
	TipoPessoa string `json:"tipo_pessoa"`
	Tipo       string `json:"tipo"`
}

func (DetalhesPagamento) TipoDetalhe() TipoEvento { return EventoPagamento }

type DetalhesGastoInsumo struct {
	Insumo        string          `json:"insumo"`
	Categoria     string          `json:"categoria"`
	Quantidade    float64         `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

func (DetalhesGastoInsumo) TipoDetalhe() TipoEvento { return EventoGastoInsumo }

// EventoTimeline is the normalized shape every source is mapped into.
// Ciclo is derived from the paiol's fechamentos at aggregation time.
type EventoTimeline struct {
	ID              string           `json:"id"`
	Tipo            TipoEvento       `json:"tipo"`
	DataHora        time.Time        `json:"data_hora"`
	Ciclo           int              `json:"ciclo"`
	Titulo          string           `json:"titulo"`
	Descricao       string           `json:"descricao"`
	Valor           *decimal.Decimal `json:"valor,omitempty"`
	StatusAssociado *string          `json:"status_associado,omitempty"`
	DragagemID      *string          `json:"dragagem_id,omitempty"`
	Observacoes     *string          `json:"observacoes,omitempty"`
	Detalhes        DetalhesEvento   `json:"detalhes"`
}

// FiltroTimeline is an immutable filter configuration. All criteria are
// optional and AND-combined. Ordem is "asc" or "desc"; empty means "desc".
type FiltroTimeline struct {
	DataInicio      *time.Time
	DataFim         *time.Time
	Ciclo           *int
	Tipos           []TipoEvento
	StatusAssociado *string
	ComValor        bool
	Ordem           string
}

// Vazio reports whether the filter leaves the default (cacheable) timeline
// untouched: no criteria and descending order.
func (f FiltroTimeline) Vazio() bool {
	return f.DataInicio == nil && f.DataFim == nil && f.Ciclo == nil &&
		len(f.Tipos) == 0 && f.StatusAssociado == nil && !f.ComValor &&
		(f.Ordem == "" || f.Ordem == "desc")
}

type TimelineResponse struct {
	PaiolID string           `json:"paiol_id"`
	Eventos []EventoTimeline `json:"eventos"`
	Total   int              `json:"total"`
}
