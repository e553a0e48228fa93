package service

import (
	"context"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"
	"github.com/okaique/paiol-dashboard-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceiroService records crew payments and supply expenses against a
// dredging session. Both feed the paiol timeline, so every write invalidates
// the owning pit's cache.
type FinanceiroService interface {
	RegistrarPagamento(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarPagamentoRequest) (*dto.PagamentoResponse, error)
	ListarPagamentos(ctx context.Context, dragagemID uuid.UUID) ([]dto.PagamentoResponse, error)
	RegistrarGasto(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error)
	ListarGastos(ctx context.Context, dragagemID uuid.UUID) ([]dto.GastoResponse, error)
}

type financeiroService struct {
	pagamentos repository.PagamentoRepository
	gastos     repository.GastoRepository
	dragagens  repository.DragagemRepository
	pessoas    repository.PessoaRepository
	dispatcher *worker.Dispatcher
}

func NewFinanceiroService(
	pagamentos repository.PagamentoRepository,
	gastos repository.GastoRepository,
	dragagens repository.DragagemRepository,
	pessoas repository.PessoaRepository,
	dispatcher *worker.Dispatcher,
) FinanceiroService {
	return &financeiroService{
		pagamentos: pagamentos,
		gastos:     gastos,
		dragagens:  dragagens,
		pessoas:    pessoas,
		dispatcher: dispatcher,
	}
}

func (s *financeiroService) RegistrarPagamento(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarPagamentoRequest) (*dto.PagamentoResponse, error) {
	dragagem, err := s.dragagens.FindByID(ctx, dragagemID)
	if err != nil {
		return nil, ErrDragagemNaoEncontrada
	}

	pessoaID, err := uuid.Parse(req.PessoaID)
	if err != nil {
		return nil, ErrPessoaNaoEncontrada
	}
	nome, err := s.nomePessoa(ctx, req.TipoPessoa, pessoaID)
	if err != nil {
		return nil, err
	}

	pagamento := &model.PagamentoPessoal{
		DragagemID:    dragagem.ID,
		TipoPessoa:    req.TipoPessoa,
		PessoaID:      pessoaID,
		Tipo:          req.Tipo,
		Valor:         req.Valor,
		DataPagamento: dataOuAgora(req.DataPagamento),
		Observacoes:   req.Observacoes,
	}
	if err := s.pagamentos.Create(ctx, pagamento); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, dragagem.PaiolID)
	}

	resp := pagamentoToResponse(pagamento)
	resp.Pessoa = nome
	return resp, nil
}

func (s *financeiroService) ListarPagamentos(ctx context.Context, dragagemID uuid.UUID) ([]dto.PagamentoResponse, error) {
	if _, err := s.dragagens.FindByID(ctx, dragagemID); err != nil {
		return nil, ErrDragagemNaoEncontrada
	}
	pagamentos, err := s.pagamentos.ListByDragagem(ctx, dragagemID)
	if err != nil {
		return nil, err
	}

	dragadorIDs := make(map[uuid.UUID]struct{})
	ajudanteIDs := make(map[uuid.UUID]struct{})
	for _, p := range pagamentos {
		switch p.TipoPessoa {
		case model.PessoaDragador:
			dragadorIDs[p.PessoaID] = struct{}{}
		case model.PessoaAjudante:
			ajudanteIDs[p.PessoaID] = struct{}{}
		}
	}
	nomes := make(map[uuid.UUID]string)
	dragadores, err := s.pessoas.FindDragadores(ctx, chaves(dragadorIDs))
	if err != nil {
		return nil, err
	}
	for _, d := range dragadores {
		nomes[d.ID] = d.Nome
	}
	ajudantes, err := s.pessoas.FindAjudantes(ctx, chaves(ajudanteIDs))
	if err != nil {
		return nil, err
	}
	for _, a := range ajudantes {
		nomes[a.ID] = a.Nome
	}

	resp := make([]dto.PagamentoResponse, 0, len(pagamentos))
	for i := range pagamentos {
		item := pagamentoToResponse(&pagamentos[i])
		item.Pessoa = nomeOuPlaceholder(nomes, pagamentos[i].PessoaID)
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *financeiroService) RegistrarGasto(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarGastoRequest) (*dto.GastoResponse, error) {
	dragagem, err := s.dragagens.FindByID(ctx, dragagemID)
	if err != nil {
		return nil, ErrDragagemNaoEncontrada
	}

	tipoInsumoID, err := uuid.Parse(req.TipoInsumoID)
	if err != nil {
		return nil, ErrTipoInsumoNaoEncontrado
	}
	tipoInsumo, err := s.pessoas.FindTipoInsumoByID(ctx, tipoInsumoID)
	if err != nil {
		return nil, ErrTipoInsumoNaoEncontrado
	}
	if req.Quantidade <= 0 {
		return nil, &ErroMedidaInvalida{Campo: "quantidade"}
	}

	gasto := &model.GastoInsumo{
		DragagemID:    dragagem.ID,
		TipoInsumoID:  tipoInsumo.ID,
		Quantidade:    req.Quantidade,
		ValorUnitario: req.ValorUnitario,
		ValorTotal:    req.ValorUnitario.Mul(decimal.NewFromFloat(req.Quantidade)).Round(2),
		DataGasto:     dataOuAgora(req.DataGasto),
		Observacoes:   req.Observacoes,
	}
	if err := s.gastos.Create(ctx, gasto); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, dragagem.PaiolID)
	}

	resp := gastoToResponse(gasto)
	resp.Insumo = tipoInsumo.Nome
	resp.Categoria = tipoInsumo.Categoria
	return resp, nil
}

func (s *financeiroService) ListarGastos(ctx context.Context, dragagemID uuid.UUID) ([]dto.GastoResponse, error) {
	if _, err := s.dragagens.FindByID(ctx, dragagemID); err != nil {
		return nil, ErrDragagemNaoEncontrada
	}
	gastos, err := s.gastos.ListByDragagem(ctx, dragagemID)
	if err != nil {
		return nil, err
	}

	insumoIDs := make(map[uuid.UUID]struct{}, len(gastos))
	for _, g := range gastos {
		insumoIDs[g.TipoInsumoID] = struct{}{}
	}
	insumos, err := s.pessoas.FindTiposInsumo(ctx, chaves(insumoIDs))
	if err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]model.TipoInsumo, len(insumos))
	for _, t := range insumos {
		porID[t.ID] = t
	}

	resp := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		item := gastoToResponse(&gastos[i])
		if t, ok := porID[gastos[i].TipoInsumoID]; ok {
			item.Insumo = t.Nome
			item.Categoria = t.Categoria
		} else {
			item.Insumo = NomeNaoEncontrado
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *financeiroService) nomePessoa(ctx context.Context, tipoPessoa string, id uuid.UUID) (string, error) {
	switch tipoPessoa {
	case model.PessoaDragador:
		d, err := s.pessoas.FindDragadorByID(ctx, id)
		if err != nil {
			return "", ErrPessoaNaoEncontrada
		}
		return d.Nome, nil
	case model.PessoaAjudante:
		a, err := s.pessoas.FindAjudanteByID(ctx, id)
		if err != nil {
			return "", ErrPessoaNaoEncontrada
		}
		return a.Nome, nil
	default:
		return "", ErrPessoaNaoEncontrada
	}
}

func dataOuAgora(s *string) time.Time {
	if s != nil {
		if parsed, err := time.Parse(time.RFC3339, *s); err == nil {
			return parsed
		}
	}
	return time.Now()
}

func pagamentoToResponse(p *model.PagamentoPessoal) *dto.PagamentoResponse {
	return &dto.PagamentoResponse{
		ID:            p.ID.String(),
		DragagemID:    p.DragagemID.String(),
		TipoPessoa:    p.TipoPessoa,
		PessoaID:      p.PessoaID.String(),
		Tipo:          p.Tipo,
		Valor:         p.Valor,
		DataPagamento: p.DataPagamento.Format(time.RFC3339),
		Observacoes:   p.Observacoes,
	}
}

func gastoToResponse(g *model.GastoInsumo) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:            g.ID.String(),
		DragagemID:    g.DragagemID.String(),
		TipoInsumoID:  g.TipoInsumoID.String(),
		Quantidade:    g.Quantidade,
		ValorUnitario: g.ValorUnitario,
		ValorTotal:    g.ValorTotal,
		DataGasto:     g.DataGasto.Format(time.RFC3339),
		Observacoes:   g.Observacoes,
	}
}
