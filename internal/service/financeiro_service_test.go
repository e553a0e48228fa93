package service

import (
	"context"
	"testing"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type financeiroFixture struct {
	svc        FinanceiroService
	pagamentos *fakePagamentoRepo
	gastos     *fakeGastoRepo
	pessoas    *fakePessoaRepo
	dragagem   *model.Dragagem
	dragadorID uuid.UUID
	ajudanteID uuid.UUID
	insumoID   uuid.UUID
}

func newFinanceiroFixture() *financeiroFixture {
	f := &financeiroFixture{
		pagamentos: &fakePagamentoRepo{porPaiol: make(map[uuid.UUID]uuid.UUID)},
		gastos:     &fakeGastoRepo{porPaiol: make(map[uuid.UUID]uuid.UUID)},
		pessoas:    newFakePessoaRepo(),
	}
	f.dragadorID = f.pessoas.seedDragador("João")
	f.ajudanteID = f.pessoas.seedAjudante("Pedro")
	f.insumoID = f.pessoas.seedInsumo("Diesel", "COMBUSTIVEL")

	dragagens := &fakeDragagemRepo{}
	f.dragagem = &model.Dragagem{
		ID:         uuid.New(),
		PaiolID:    uuid.New(),
		DragadorID: f.dragadorID,
		DataInicio: time.Now(),
	}
	dragagens.dragagens = append(dragagens.dragagens, f.dragagem)

	f.svc = NewFinanceiroService(f.pagamentos, f.gastos, dragagens, f.pessoas, nil)
	return f
}

func TestRegistrarPagamentoDragador(t *testing.T) {
	f := newFinanceiroFixture()
	resp, err := f.svc.RegistrarPagamento(context.Background(), f.dragagem.ID, dto.RegistrarPagamentoRequest{
		TipoPessoa: model.PessoaDragador,
		PessoaID:   f.dragadorID.String(),
		Tipo:       model.PagamentoAdiantamento,
		Valor:      decimal.RequireFromString("350.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "João", resp.Pessoa)
	assert.Equal(t, model.PessoaDragador, resp.TipoPessoa)
	require.Len(t, f.pagamentos.pagamentos, 1)
}

func TestRegistrarPagamentoAjudante(t *testing.T) {
	f := newFinanceiroFixture()
	resp, err := f.svc.RegistrarPagamento(context.Background(), f.dragagem.ID, dto.RegistrarPagamentoRequest{
		TipoPessoa: model.PessoaAjudante,
		PessoaID:   f.ajudanteID.String(),
		Tipo:       model.PagamentoFinal,
		Valor:      decimal.RequireFromString("200.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", resp.Pessoa)
}

// A dragador id sent under the AJUDANTE type must not resolve.
func TestRegistrarPagamentoTipoPessoaTrocado(t *testing.T) {
	f := newFinanceiroFixture()
	_, err := f.svc.RegistrarPagamento(context.Background(), f.dragagem.ID, dto.RegistrarPagamentoRequest{
		TipoPessoa: model.PessoaAjudante,
		PessoaID:   f.dragadorID.String(),
		Tipo:       model.PagamentoAdiantamento,
		Valor:      decimal.RequireFromString("100.00"),
	})
	assert.ErrorIs(t, err, ErrPessoaNaoEncontrada)
	assert.Empty(t, f.pagamentos.pagamentos)
}

func TestRegistrarPagamentoDragagemInexistente(t *testing.T) {
	f := newFinanceiroFixture()
	_, err := f.svc.RegistrarPagamento(context.Background(), uuid.New(), dto.RegistrarPagamentoRequest{
		TipoPessoa: model.PessoaDragador,
		PessoaID:   f.dragadorID.String(),
		Tipo:       model.PagamentoAdiantamento,
		Valor:      decimal.RequireFromString("100.00"),
	})
	assert.ErrorIs(t, err, ErrDragagemNaoEncontrada)
}

func TestRegistrarPagamentoDataInformada(t *testing.T) {
	f := newFinanceiroFixture()
	data := "2026-02-10T14:00:00Z"
	resp, err := f.svc.RegistrarPagamento(context.Background(), f.dragagem.ID, dto.RegistrarPagamentoRequest{
		TipoPessoa:    model.PessoaDragador,
		PessoaID:      f.dragadorID.String(),
		Tipo:          model.PagamentoAdiantamento,
		Valor:         decimal.RequireFromString("100.00"),
		DataPagamento: &data,
	})
	require.NoError(t, err)
	assert.Equal(t, data, resp.DataPagamento)
}

func TestListarPagamentosResolveNomes(t *testing.T) {
	f := newFinanceiroFixture()
	f.pagamentos.pagamentos = append(f.pagamentos.pagamentos,
		model.PagamentoPessoal{ID: uuid.New(), DragagemID: f.dragagem.ID, TipoPessoa: model.PessoaDragador, PessoaID: f.dragadorID, Tipo: model.PagamentoAdiantamento, Valor: decimal.NewFromInt(100), DataPagamento: time.Now()},
		model.PagamentoPessoal{ID: uuid.New(), DragagemID: f.dragagem.ID, TipoPessoa: model.PessoaAjudante, PessoaID: f.ajudanteID, Tipo: model.PagamentoFinal, Valor: decimal.NewFromInt(80), DataPagamento: time.Now()},
		model.PagamentoPessoal{ID: uuid.New(), DragagemID: f.dragagem.ID, TipoPessoa: model.PessoaDragador, PessoaID: uuid.New(), Tipo: model.PagamentoFinal, Valor: decimal.NewFromInt(60), DataPagamento: time.Now()},
	)

	resp, err := f.svc.ListarPagamentos(context.Background(), f.dragagem.ID)
	require.NoError(t, err)
	require.Len(t, resp, 3)
	assert.Equal(t, "João", resp[0].Pessoa)
	assert.Equal(t, "Pedro", resp[1].Pessoa)
	assert.Equal(t, NomeNaoEncontrado, resp[2].Pessoa)
}

func TestRegistrarGastoCalculaValorTotal(t *testing.T) {
	f := newFinanceiroFixture()
	resp, err := f.svc.RegistrarGasto(context.Background(), f.dragagem.ID, dto.RegistrarGastoRequest{
		TipoInsumoID:  f.insumoID.String(),
		Quantidade:    42.5,
		ValorUnitario: decimal.RequireFromString("6.19"),
	})
	require.NoError(t, err)
	assert.True(t, resp.ValorTotal.Equal(decimal.RequireFromString("263.08")),
		"valor_total = %s", resp.ValorTotal)
	assert.Equal(t, "Diesel", resp.Insumo)
	assert.Equal(t, "COMBUSTIVEL", resp.Categoria)
}

func TestRegistrarGastoInsumoInexistente(t *testing.T) {
	f := newFinanceiroFixture()
	_, err := f.svc.RegistrarGasto(context.Background(), f.dragagem.ID, dto.RegistrarGastoRequest{
		TipoInsumoID:  uuid.NewString(),
		Quantidade:    10,
		ValorUnitario: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrTipoInsumoNaoEncontrado)
}

func TestRegistrarGastoQuantidadeInvalida(t *testing.T) {
	f := newFinanceiroFixture()
	_, err := f.svc.RegistrarGasto(context.Background(), f.dragagem.ID, dto.RegistrarGastoRequest{
		TipoInsumoID:  f.insumoID.String(),
		Quantidade:    0,
		ValorUnitario: decimal.NewFromInt(5),
	})
	var medida *ErroMedidaInvalida
	require.ErrorAs(t, err, &medida)
	assert.Equal(t, "quantidade", medida.Campo)
	assert.Empty(t, f.gastos.gastos)
}

func TestListarGastosResolveInsumos(t *testing.T) {
	f := newFinanceiroFixture()
	f.gastos.gastos = append(f.gastos.gastos,
		model.GastoInsumo{ID: uuid.New(), DragagemID: f.dragagem.ID, TipoInsumoID: f.insumoID, Quantidade: 10, ValorUnitario: decimal.NewFromInt(6), ValorTotal: decimal.NewFromInt(60), DataGasto: time.Now()},
		model.GastoInsumo{ID: uuid.New(), DragagemID: f.dragagem.ID, TipoInsumoID: uuid.New(), Quantidade: 2, ValorUnitario: decimal.NewFromInt(3), ValorTotal: decimal.NewFromInt(6), DataGasto: time.Now()},
	)

	resp, err := f.svc.ListarGastos(context.Background(), f.dragagem.ID)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Diesel", resp[0].Insumo)
	assert.Equal(t, NomeNaoEncontrado, resp[1].Insumo)
}
