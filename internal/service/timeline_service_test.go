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

type timelineFixture struct {
	svc         TimelineService
	paiols      *fakePaiolRepo
	transicoes  *fakeTransicaoRepo
	dragagens   *fakeDragagemRepo
	cubagens    *fakeCubagemRepo
	retiradas   *fakeRetiradaRepo
	fechamentos *fakeFechamentoRepo
	pagamentos  *fakePagamentoRepo
	gastos      *fakeGastoRepo
	pessoas     *fakePessoaRepo
	paiol       *model.Paiol
}

func newTimelineFixture() *timelineFixture {
	f := &timelineFixture{
		paiols:      newFakePaiolRepo(),
		transicoes:  &fakeTransicaoRepo{},
		dragagens:   &fakeDragagemRepo{},
		cubagens:    &fakeCubagemRepo{},
		retiradas:   &fakeRetiradaRepo{},
		fechamentos: &fakeFechamentoRepo{},
		pagamentos:  &fakePagamentoRepo{porPaiol: make(map[uuid.UUID]uuid.UUID)},
		gastos:      &fakeGastoRepo{porPaiol: make(map[uuid.UUID]uuid.UUID)},
		pessoas:     newFakePessoaRepo(),
	}
	f.paiol = f.paiols.seed(model.StatusVazio)
	f.svc = NewTimelineService(f.paiols, f.transicoes, f.dragagens, f.cubagens,
		f.retiradas, f.fechamentos, f.pagamentos, f.gastos, f.pessoas)
	return f
}

func em(dia int, hora int) time.Time {
	return time.Date(2026, 4, dia, hora, 0, 0, 0, time.UTC)
}

func (f *timelineFixture) addTransicao(quando time.Time, anterior *string, novo string) {
	f.transicoes.transicoes = append(f.transicoes.transicoes, model.TransicaoStatus{
		ID:             uuid.New(),
		PaiolID:        f.paiol.ID,
		StatusAnterior: anterior,
		StatusNovo:     novo,
		CreatedAt:      quando,
	})
}

func (f *timelineFixture) addDragagem(inicio time.Time, fim *time.Time, dragadorID uuid.UUID) *model.Dragagem {
	d := &model.Dragagem{
		ID:         uuid.New(),
		PaiolID:    f.paiol.ID,
		DragadorID: dragadorID,
		DataInicio: inicio,
		DataFim:    fim,
	}
	f.dragagens.dragagens = append(f.dragagens.dragagens, d)
	f.pagamentos.porPaiol[d.ID] = f.paiol.ID
	f.gastos.porPaiol[d.ID] = f.paiol.ID
	return d
}

func (f *timelineFixture) addRetirada(quando time.Time, clienteID uuid.UUID, volume float64, total *decimal.Decimal) {
	f.retiradas.retiradas = append(f.retiradas.retiradas, &model.Retirada{
		ID:              uuid.New(),
		PaiolID:         f.paiol.ID,
		ClienteID:       clienteID,
		VolumeRetirado:  volume,
		ValorTotal:      total,
		StatusPagamento: model.PagamentoNaoPago,
		DataRetirada:    quando,
	})
}

func (f *timelineFixture) addFechamento(quando time.Time) {
	f.fechamentos.fechamentos = append(f.fechamentos.fechamentos, model.Fechamento{
		ID:             uuid.New(),
		PaiolID:        f.paiol.ID,
		DataFechamento: quando,
	})
}

func TestMontarTimelinePaiolInexistente(t *testing.T) {
	f := newTimelineFixture()
	_, err := f.svc.Montar(context.Background(), uuid.New(), dto.FiltroTimeline{})
	assert.ErrorIs(t, err, ErrPaiolNaoEncontrado)
}

func TestMontarTimelineSemEventos(t *testing.T) {
	f := newTimelineFixture()
	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Eventos)
}

func TestMontarTimelineOrdenacaoPadraoDescendente(t *testing.T) {
	f := newTimelineFixture()
	f.addTransicao(em(1, 8), nil, model.StatusVazio)
	f.addTransicao(em(3, 8), ptr(model.StatusVazio), model.StatusDragando)
	f.addTransicao(em(2, 8), ptr(model.StatusDragando), model.StatusCheio)

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, em(3, 8), resp.Eventos[0].DataHora)
	assert.Equal(t, em(1, 8), resp.Eventos[2].DataHora)

	asc, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{Ordem: "asc"})
	require.NoError(t, err)
	assert.Equal(t, em(1, 8), asc.Eventos[0].DataHora)
}

func TestMontarTimelineDragagemFechadaGeraDoisEventos(t *testing.T) {
	f := newTimelineFixture()
	dragadorID := f.pessoas.seedDragador("João")
	fim := em(5, 17)
	f.addDragagem(em(5, 8), &fim, dragadorID)

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{Ordem: "asc"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	inicio := resp.Eventos[0]
	assert.Equal(t, dto.EventoDragagemInicio, inicio.Tipo)
	assert.Contains(t, inicio.Descricao, "João")
	require.NotNil(t, inicio.StatusAssociado)
	assert.Equal(t, model.StatusDragando, *inicio.StatusAssociado)

	fimEvento := resp.Eventos[1]
	assert.Equal(t, dto.EventoDragagemFim, fimEvento.Tipo)
	require.NotNil(t, fimEvento.StatusAssociado)
	assert.Equal(t, model.StatusCheio, *fimEvento.StatusAssociado)

	detalhes, ok := fimEvento.Detalhes.(dto.DetalhesDragagem)
	require.True(t, ok)
	assert.True(t, detalhes.Encerrada)
}

func TestMontarTimelineAtribuiCiclos(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	f.addFechamento(em(10, 12))

	f.addRetirada(em(9, 9), clienteID, 10, nil)  // before the fechamento: cycle 1
	f.addRetirada(em(11, 9), clienteID, 15, nil) // after: cycle 2

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{Ordem: "asc"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Eventos[0].Ciclo)
	assert.Equal(t, 2, resp.Eventos[1].Ciclo)
}

func TestMontarTimelinePlaceholderParaReferenciaQuebrada(t *testing.T) {
	f := newTimelineFixture()
	// cliente id never seeded: the event still appears, with the placeholder
	f.addRetirada(em(2, 10), uuid.New(), 12, nil)
	f.addDragagem(em(1, 7), nil, uuid.New())

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	for _, e := range resp.Eventos {
		switch d := e.Detalhes.(type) {
		case dto.DetalhesRetirada:
			assert.Equal(t, NomeNaoEncontrado, d.Cliente)
		case dto.DetalhesDragagem:
			assert.Equal(t, NomeNaoEncontrado, d.Dragador)
		default:
			t.Fatalf("detalhe inesperado: %T", e.Detalhes)
		}
	}
}

func TestMontarTimelineFiltroPorCiclo(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	f.addFechamento(em(10, 12))
	f.addRetirada(em(9, 9), clienteID, 10, nil)
	f.addRetirada(em(11, 9), clienteID, 15, nil)

	ciclo := 2
	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{Ciclo: &ciclo})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, 2, resp.Eventos[0].Ciclo)
}

func TestMontarTimelineFiltroPorTipos(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	f.addTransicao(em(1, 8), nil, model.StatusVazio)
	f.addRetirada(em(2, 9), clienteID, 10, nil)

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{
		Tipos: []dto.TipoEvento{dto.EventoRetirada},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, dto.EventoRetirada, resp.Eventos[0].Tipo)
}

func TestMontarTimelineFiltroComValor(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	total := decimal.NewFromInt(500)
	f.addRetirada(em(2, 9), clienteID, 10, &total)
	f.addRetirada(em(3, 9), clienteID, 5, nil) // sem valor: excluded

	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{ComValor: true})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.NotNil(t, resp.Eventos[0].Valor)
	assert.True(t, resp.Eventos[0].Valor.Equal(total))
}

func TestMontarTimelineFiltroDataFimInclusivo(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	f.addRetirada(em(5, 23), clienteID, 10, nil) // 23:00 of the cutoff day
	f.addRetirada(em(6, 1), clienteID, 5, nil)

	fim := em(5, 0)
	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{DataFim: &fim})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, em(5, 23), resp.Eventos[0].DataHora)
}

func TestMontarTimelineFiltroStatusAssociado(t *testing.T) {
	f := newTimelineFixture()
	f.addTransicao(em(1, 8), ptr(model.StatusVazio), model.StatusDragando)
	f.addTransicao(em(2, 8), ptr(model.StatusDragando), model.StatusCheio)

	status := model.StatusCheio
	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{StatusAssociado: &status})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, model.StatusCheio, *resp.Eventos[0].StatusAssociado)
}

func TestMontarTimelineFiltrosCombinados(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	total := decimal.NewFromInt(300)
	f.addTransicao(em(1, 8), nil, model.StatusVazio)
	f.addRetirada(em(2, 9), clienteID, 10, &total)
	f.addRetirada(em(8, 9), clienteID, 20, &total)

	inicio := em(1, 0)
	fim := em(3, 0)
	resp, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{
		DataInicio: &inicio,
		DataFim:    &fim,
		Tipos:      []dto.TipoEvento{dto.EventoRetirada},
		ComValor:   true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, em(2, 9), resp.Eventos[0].DataHora)
}

// Same stored records always produce the same timeline.
func TestMontarTimelineDeterminista(t *testing.T) {
	f := newTimelineFixture()
	clienteID := f.pessoas.seedCliente("Construtora Alfa")
	f.addTransicao(em(1, 8), nil, model.StatusVazio)
	f.addRetirada(em(1, 8), clienteID, 10, nil) // same instant as the transition

	primeira, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{})
	require.NoError(t, err)
	segunda, err := f.svc.Montar(context.Background(), f.paiol.ID, dto.FiltroTimeline{})
	require.NoError(t, err)

	require.Equal(t, primeira.Total, segunda.Total)
	for i := range primeira.Eventos {
		assert.Equal(t, primeira.Eventos[i].ID, segunda.Eventos[i].ID)
	}
}

func ptr(s string) *string { return &s }
