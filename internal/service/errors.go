package service

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Direct lookups return these as hard errors; the
// timeline aggregator never does — it degrades to placeholder names instead.
var (
	ErrPaiolNaoEncontrado      = errors.New("paiol não encontrado")
	ErrDragagemNaoEncontrada   = errors.New("dragagem não encontrada")
	ErrCubagemNaoEncontrada    = errors.New("cubagem não encontrada")
	ErrClienteNaoEncontrado    = errors.New("cliente não encontrado")
	ErrPessoaNaoEncontrada     = errors.New("pessoa não encontrada")
	ErrTipoInsumoNaoEncontrado = errors.New("tipo de insumo não encontrado")
)

// Business-rule violations. Never retried automatically — the caller fixes
// the input and resubmits.
var (
	ErrDragadorObrigatorio  = errors.New("dragador é obrigatório para iniciar dragagem")
	ErrDragagemJaFinalizada = errors.New("a dragagem já foi finalizada")
	ErrCubagemJaRegistrada  = errors.New("a dragagem já possui cubagem")
	ErrPaiolInativo         = errors.New("paiol está inativo")
)

// ErroTransicaoInvalida names both states of a rejected status edge.
type ErroTransicaoInvalida struct {
	De   string
	Para string
}

func (e *ErroTransicaoInvalida) Error() string {
	return fmt.Sprintf("transição de status inválida: %s → %s", e.De, e.Para)
}

// ErroMedidaInvalida rejects non-positive physical measurements.
type ErroMedidaInvalida struct {
	Campo string
}

func (e *ErroMedidaInvalida) Error() string {
	return fmt.Sprintf("medida inválida: %s deve ser maior que zero", e.Campo)
}
