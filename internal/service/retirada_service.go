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

type RetiradaService interface {
	// Registrar stores a withdrawal. Remaining volume is never consulted:
	// over-draw is allowed and surfaced by StatusVolume, not blocked here.
	Registrar(ctx context.Context, paiolID uuid.UUID, req dto.RegistrarRetiradaRequest) (*dto.RetiradaResponse, error)
	Listar(ctx context.Context, paiolID uuid.UUID) ([]dto.RetiradaResponse, error)
	// StatusVolume reconciles the capacity of the current session's cubagem
	// against the withdrawals of the current cycle.
	StatusVolume(ctx context.Context, paiolID uuid.UUID) (*dto.StatusVolumeResponse, error)
}

type retiradaService struct {
	retiradas   repository.RetiradaRepository
	paiols      repository.PaiolRepository
	dragagens   repository.DragagemRepository
	cubagens    repository.CubagemRepository
	fechamentos repository.FechamentoRepository
	pessoas     repository.PessoaRepository
	dispatcher  *worker.Dispatcher
}

func NewRetiradaService(
	retiradas repository.RetiradaRepository,
	paiols repository.PaiolRepository,
	dragagens repository.DragagemRepository,
	cubagens repository.CubagemRepository,
	fechamentos repository.FechamentoRepository,
	pessoas repository.PessoaRepository,
	dispatcher *worker.Dispatcher,
) RetiradaService {
	return &retiradaService{
		retiradas:   retiradas,
		paiols:      paiols,
		dragagens:   dragagens,
		cubagens:    cubagens,
		fechamentos: fechamentos,
		pessoas:     pessoas,
		dispatcher:  dispatcher,
	}
}

func (s *retiradaService) Registrar(ctx context.Context, paiolID uuid.UUID, req dto.RegistrarRetiradaRequest) (*dto.RetiradaResponse, error) {
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	if !paiol.Ativo {
		return nil, ErrPaiolInativo
	}
	if !PodeRetirar(req.VolumeRetirado) {
		return nil, &ErroMedidaInvalida{Campo: "volume_retirado"}
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	cliente, err := s.pessoas.FindClienteByID(ctx, clienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}

	dataRetirada := time.Now()
	if req.DataRetirada != nil {
		if parsed, err := time.Parse(time.RFC3339, *req.DataRetirada); err == nil {
			dataRetirada = parsed
		}
	}

	statusPagamento := req.StatusPagamento
	if statusPagamento == "" {
		statusPagamento = model.PagamentoNaoPago
	}

	retirada := &model.Retirada{
		PaiolID:         paiol.ID,
		ClienteID:       cliente.ID,
		VolumeRetirado:  req.VolumeRetirado,
		ValorUnitario:   req.ValorUnitario,
		StatusPagamento: statusPagamento,
		TemFrete:        req.TemFrete,
		DataRetirada:    dataRetirada,
		Observacoes:     req.Observacoes,
	}
	if req.ValorUnitario != nil {
		total := req.ValorUnitario.Mul(decimal.NewFromFloat(req.VolumeRetirado)).Round(2)
		retirada.ValorTotal = &total
	}

	if err := s.retiradas.Create(ctx, retirada); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, paiol.ID)
	}

	resp := retiradaToResponse(retirada)
	resp.Cliente = cliente.Nome
	return resp, nil
}

func (s *retiradaService) Listar(ctx context.Context, paiolID uuid.UUID) ([]dto.RetiradaResponse, error) {
	if _, err := s.paiols.FindByID(ctx, paiolID); err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	retiradas, err := s.retiradas.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}

	clienteIDs := make(map[uuid.UUID]struct{}, len(retiradas))
	for _, r := range retiradas {
		clienteIDs[r.ClienteID] = struct{}{}
	}
	clientes, err := s.pessoas.FindClientes(ctx, chaves(clienteIDs))
	if err != nil {
		return nil, err
	}
	nomes := make(map[uuid.UUID]string, len(clientes))
	for _, c := range clientes {
		nomes[c.ID] = c.Nome
	}

	resp := make([]dto.RetiradaResponse, 0, len(retiradas))
	for i := range retiradas {
		item := retiradaToResponse(&retiradas[i])
		item.Cliente = nomeOuPlaceholder(nomes, retiradas[i].ClienteID)
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *retiradaService) StatusVolume(ctx context.Context, paiolID uuid.UUID) (*dto.StatusVolumeResponse, error) {
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}

	// Capacity comes from the cubagem of the most recent dragagem. Without a
	// session or measurement the capacity is simply zero — not an error.
	var capacidade float64
	if dragagem, err := s.dragagens.FindUltima(ctx, paiolID); err == nil {
		if cubagem, err := s.cubagens.FindByDragagemID(ctx, dragagem.ID); err == nil {
			capacidade = cubagem.VolumeReduzido
		}
	}

	// Only withdrawals of the current cycle count against the capacity.
	fechamentos, err := s.fechamentos.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	var retiradas []model.Retirada
	if len(fechamentos) == 0 {
		retiradas, err = s.retiradas.ListByPaiol(ctx, paiolID)
	} else {
		ultimo := fechamentos[len(fechamentos)-1].DataFechamento
		retiradas, err = s.retiradas.ListByPaiolDesde(ctx, paiolID, ultimo)
	}
	if err != nil {
		return nil, err
	}

	volumes := make([]float64, 0, len(retiradas))
	for _, r := range retiradas {
		volumes = append(volumes, r.VolumeRetirado)
	}
	status := CalcularStatusRetiradas(capacidade, volumes)

	return &dto.StatusVolumeResponse{
		PaiolID:             paiol.ID.String(),
		Capacidade:          status.Capacidade,
		Retirado:            status.Retirado,
		Disponivel:          status.Disponivel,
		PercentualUtilizado: status.PercentualUtilizado,
		SobreRetirada:       status.Disponivel < 0,
	}, nil
}

func retiradaToResponse(r *model.Retirada) *dto.RetiradaResponse {
	return &dto.RetiradaResponse{
		ID:              r.ID.String(),
		PaiolID:         r.PaiolID.String(),
		ClienteID:       r.ClienteID.String(),
		VolumeRetirado:  r.VolumeRetirado,
		ValorUnitario:   r.ValorUnitario,
		ValorTotal:      r.ValorTotal,
		StatusPagamento: r.StatusPagamento,
		TemFrete:        r.TemFrete,
		DataRetirada:    r.DataRetirada.Format(time.RFC3339),
		Observacoes:     r.Observacoes,
	}
}
