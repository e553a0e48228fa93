package service

import (
	"context"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"
	"github.com/okaique/paiol-dashboard-sub000/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transicoesPermitidas encodes the strict adjacency of the lifecycle:
// VAZIO → DRAGANDO → CHEIO → RETIRANDO → VAZIO. No skipping, no self-loops.
var transicoesPermitidas = map[string]string{
	model.StatusVazio:     model.StatusDragando,
	model.StatusDragando:  model.StatusCheio,
	model.StatusCheio:     model.StatusRetirando,
	model.StatusRetirando: model.StatusVazio,
}

type StatusService interface {
	// ValidarTransicao checks the status edge and its preconditions without
	// touching storage. dragadorID only matters for VAZIO → DRAGANDO.
	ValidarTransicao(atual, novo string, dragadorID *uuid.UUID) error
	// AplicarTransicao executes a validated transition as one transaction,
	// including the session side effects the edge implies: entering DRAGANDO
	// opens a dragagem, entering CHEIO closes the active one, and returning
	// to VAZIO appends a fechamento and bumps the cycle counter.
	AplicarTransicao(ctx context.Context, paiolID uuid.UUID, req dto.TransicaoRequest) (*model.TransicaoStatus, error)
	IniciarDragagem(ctx context.Context, paiolID uuid.UUID, req dto.IniciarDragagemRequest) (*model.Dragagem, error)
	FinalizarDragagem(ctx context.Context, dragagemID uuid.UUID, req dto.FinalizarDragagemRequest) (*model.Dragagem, error)
	FecharCiclo(ctx context.Context, paiolID uuid.UUID, req dto.FecharCicloRequest) (*model.Fechamento, error)
	ListarTransicoes(ctx context.Context, paiolID uuid.UUID) ([]model.TransicaoStatus, error)
	ListarDragagens(ctx context.Context, paiolID uuid.UUID) ([]model.Dragagem, error)
}

type statusService struct {
	paiols      repository.PaiolRepository
	transicoes  repository.TransicaoRepository
	dragagens   repository.DragagemRepository
	fechamentos repository.FechamentoRepository
	pessoas     repository.PessoaRepository
	dispatcher  *worker.Dispatcher
}

func NewStatusService(
	paiols repository.PaiolRepository,
	transicoes repository.TransicaoRepository,
	dragagens repository.DragagemRepository,
	fechamentos repository.FechamentoRepository,
	pessoas repository.PessoaRepository,
	dispatcher *worker.Dispatcher,
) StatusService {
	return &statusService{
		paiols:      paiols,
		transicoes:  transicoes,
		dragagens:   dragagens,
		fechamentos: fechamentos,
		pessoas:     pessoas,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *statusService) ValidarTransicao(atual, novo string, dragadorID *uuid.UUID) error {
	if transicoesPermitidas[atual] != novo {
		return &ErroTransicaoInvalida{De: atual, Para: novo}
	}
	if novo == model.StatusDragando && dragadorID == nil {
		return ErrDragadorObrigatorio
	}
	return nil
}

func (s *statusService) AplicarTransicao(ctx context.Context, paiolID uuid.UUID, req dto.TransicaoRequest) (*model.TransicaoStatus, error) {
	switch req.StatusNovo {
	case model.StatusDragando:
		if _, err := s.IniciarDragagem(ctx, paiolID, dto.IniciarDragagemRequest{
			DragadorID:    req.DragadorID,
			AjudanteID:    req.AjudanteID,
			ResponsavelID: req.ResponsavelID,
			Observacoes:   req.Observacoes,
		}); err != nil {
			return nil, err
		}
		return s.ultimaTransicao(ctx, paiolID)
	case model.StatusCheio:
		dragagem, err := s.dragagens.FindAtiva(ctx, paiolID)
		if err != nil {
			return nil, ErrDragagemNaoEncontrada
		}
		if _, err := s.FinalizarDragagem(ctx, dragagem.ID, dto.FinalizarDragagemRequest{
			ResponsavelID: req.ResponsavelID,
			Observacoes:   req.Observacoes,
		}); err != nil {
			return nil, err
		}
		return s.ultimaTransicao(ctx, paiolID)
	case model.StatusVazio:
		if _, err := s.FecharCiclo(ctx, paiolID, dto.FecharCicloRequest{
			ResponsavelID: req.ResponsavelID,
			Observacoes:   req.Observacoes,
		}); err != nil {
			return nil, err
		}
		return s.ultimaTransicao(ctx, paiolID)
	}

	// CHEIO → RETIRANDO carries no extra precondition or side effect.
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	if err := s.ValidarTransicao(paiol.Status, req.StatusNovo, nil); err != nil {
		return nil, err
	}

	transicao := s.novaTransicao(paiol, req.StatusNovo, req.ResponsavelID, req.Observacoes)
	txErr := runTx(ctx, s.paiols.DB(), func(tx *gorm.DB) error {
		if err := s.transicoes.CreateTx(tx, transicao); err != nil {
			return err
		}
		return s.paiols.UpdateStatusTx(tx, paiol.ID, req.StatusNovo)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidar(ctx, paiolID)
	return transicao, nil
}

// IniciarDragagem moves VAZIO → DRAGANDO and opens the session as one
// transaction. The dragador reference is mandatory; ajudante is optional.
func (s *statusService) IniciarDragagem(ctx context.Context, paiolID uuid.UUID, req dto.IniciarDragagemRequest) (*model.Dragagem, error) {
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}

	var dragadorID *uuid.UUID
	if req.DragadorID != "" {
		id, err := uuid.Parse(req.DragadorID)
		if err != nil {
			return nil, ErrDragadorObrigatorio
		}
		dragadorID = &id
	}
	if err := s.ValidarTransicao(paiol.Status, model.StatusDragando, dragadorID); err != nil {
		return nil, err
	}
	if _, err := s.pessoas.FindDragadorByID(ctx, *dragadorID); err != nil {
		return nil, ErrPessoaNaoEncontrada
	}

	var ajudanteID *uuid.UUID
	if req.AjudanteID != "" {
		id, err := uuid.Parse(req.AjudanteID)
		if err != nil {
			return nil, ErrPessoaNaoEncontrada
		}
		if _, err := s.pessoas.FindAjudanteByID(ctx, id); err != nil {
			return nil, ErrPessoaNaoEncontrada
		}
		ajudanteID = &id
	}

	dragagem := &model.Dragagem{
		PaiolID:    paiol.ID,
		DragadorID: *dragadorID,
		AjudanteID: ajudanteID,
		DataInicio: time.Now(),
	}
	transicao := s.novaTransicao(paiol, model.StatusDragando, req.ResponsavelID, req.Observacoes)

	txErr := runTx(ctx, s.paiols.DB(), func(tx *gorm.DB) error {
		if err := s.dragagens.CreateTx(tx, dragagem); err != nil {
			return err
		}
		if err := s.transicoes.CreateTx(tx, transicao); err != nil {
			return err
		}
		return s.paiols.UpdateStatusTx(tx, paiol.ID, model.StatusDragando)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidar(ctx, paiolID)
	return dragagem, nil
}

// FinalizarDragagem sets data_fim and moves the paiol DRAGANDO → CHEIO as one
// transaction — never two sequential writes that could diverge on failure.
func (s *statusService) FinalizarDragagem(ctx context.Context, dragagemID uuid.UUID, req dto.FinalizarDragagemRequest) (*model.Dragagem, error) {
	dragagem, err := s.dragagens.FindByID(ctx, dragagemID)
	if err != nil {
		return nil, ErrDragagemNaoEncontrada
	}
	if dragagem.DataFim != nil {
		return nil, ErrDragagemJaFinalizada
	}
	paiol, err := s.paiols.FindByID(ctx, dragagem.PaiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	if err := s.ValidarTransicao(paiol.Status, model.StatusCheio, nil); err != nil {
		return nil, err
	}

	fim := time.Now()
	transicao := s.novaTransicao(paiol, model.StatusCheio, req.ResponsavelID, req.Observacoes)

	txErr := runTx(ctx, s.paiols.DB(), func(tx *gorm.DB) error {
		if err := s.dragagens.SetDataFimTx(tx, dragagem.ID, fim); err != nil {
			return err
		}
		if err := s.transicoes.CreateTx(tx, transicao); err != nil {
			return err
		}
		return s.paiols.UpdateStatusTx(tx, paiol.ID, model.StatusCheio)
	})
	if txErr != nil {
		return nil, txErr
	}

	dragagem.DataFim = &fim
	s.invalidar(ctx, paiol.ID)
	return dragagem, nil
}

// FecharCiclo moves RETIRANDO → VAZIO, appends the fechamento that closes the
// current cycle and bumps the informational counter — one transaction.
func (s *statusService) FecharCiclo(ctx context.Context, paiolID uuid.UUID, req dto.FecharCicloRequest) (*model.Fechamento, error) {
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	if err := s.ValidarTransicao(paiol.Status, model.StatusVazio, nil); err != nil {
		return nil, err
	}

	fechamento := &model.Fechamento{
		PaiolID:        paiol.ID,
		DataFechamento: time.Now(),
	}
	transicao := s.novaTransicao(paiol, model.StatusVazio, req.ResponsavelID, req.Observacoes)

	txErr := runTx(ctx, s.paiols.DB(), func(tx *gorm.DB) error {
		if err := s.fechamentos.CreateTx(tx, fechamento); err != nil {
			return err
		}
		if err := s.transicoes.CreateTx(tx, transicao); err != nil {
			return err
		}
		if err := s.paiols.UpdateStatusTx(tx, paiol.ID, model.StatusVazio); err != nil {
			return err
		}
		return s.paiols.IncrementarCicloTx(tx, paiol.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidar(ctx, paiolID)
	return fechamento, nil
}

func (s *statusService) ListarTransicoes(ctx context.Context, paiolID uuid.UUID) ([]model.TransicaoStatus, error) {
	if _, err := s.paiols.FindByID(ctx, paiolID); err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	return s.transicoes.ListByPaiol(ctx, paiolID)
}

func (s *statusService) ListarDragagens(ctx context.Context, paiolID uuid.UUID) ([]model.Dragagem, error) {
	if _, err := s.paiols.FindByID(ctx, paiolID); err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	return s.dragagens.ListByPaiol(ctx, paiolID)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *statusService) novaTransicao(paiol *model.Paiol, statusNovo string, responsavelID string, obs *string) *model.TransicaoStatus {
	anterior := paiol.Status
	t := &model.TransicaoStatus{
		PaiolID:        paiol.ID,
		StatusAnterior: &anterior,
		StatusNovo:     statusNovo,
		Observacoes:    obs,
		CreatedAt:      time.Now(),
	}
	if id, err := uuid.Parse(responsavelID); err == nil {
		t.ResponsavelID = &id
	}
	return t
}

func (s *statusService) ultimaTransicao(ctx context.Context, paiolID uuid.UUID) (*model.TransicaoStatus, error) {
	transicoes, err := s.transicoes.ListByPaiol(ctx, paiolID)
	if err != nil || len(transicoes) == 0 {
		return nil, err
	}
	return &transicoes[len(transicoes)-1], nil
}

func (s *statusService) invalidar(ctx context.Context, paiolID uuid.UUID) {
	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, paiolID)
	}
}
