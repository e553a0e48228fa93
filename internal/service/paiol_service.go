package service

import (
	"context"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"

	"github.com/google/uuid"
)

type PaiolService interface {
	Criar(ctx context.Context, req dto.CriarPaiolRequest) (*dto.PaiolResponse, error)
	Obter(ctx context.Context, id uuid.UUID) (*dto.PaiolResponse, error)
	Listar(ctx context.Context, filter dto.PaiolFilter) (*dto.PaiolListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarPaiolRequest) (*dto.PaiolResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type paiolService struct {
	repo repository.PaiolRepository
}

func NewPaiolService(repo repository.PaiolRepository) PaiolService {
	return &paiolService{repo: repo}
}

func (s *paiolService) Criar(ctx context.Context, req dto.CriarPaiolRequest) (*dto.PaiolResponse, error) {
	paiol := &model.Paiol{
		Nome:        req.Nome,
		Localizacao: req.Localizacao,
		Status:      model.StatusVazio,
		CicloAtual:  1,
		Ativo:       true,
	}
	if err := s.repo.Create(ctx, paiol); err != nil {
		return nil, err
	}
	return paiolToResponse(paiol), nil
}

func (s *paiolService) Obter(ctx context.Context, id uuid.UUID) (*dto.PaiolResponse, error) {
	paiol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	return paiolToResponse(paiol), nil
}

func (s *paiolService) Listar(ctx context.Context, filter dto.PaiolFilter) (*dto.PaiolListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	paiols, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PaiolResponse, 0, len(paiols))
	for i := range paiols {
		data = append(data, *paiolToResponse(&paiols[i]))
	}
	return &dto.PaiolListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *paiolService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarPaiolRequest) (*dto.PaiolResponse, error) {
	paiol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}
	paiol.Nome = req.Nome
	paiol.Localizacao = req.Localizacao
	if err := s.repo.Update(ctx, paiol); err != nil {
		return nil, err
	}
	return paiolToResponse(paiol), nil
}

func (s *paiolService) Desativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrPaiolNaoEncontrado
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *paiolService) Reativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrPaiolNaoEncontrado
	}
	return s.repo.Reativar(ctx, id)
}

func paiolToResponse(p *model.Paiol) *dto.PaiolResponse {
	return &dto.PaiolResponse{
		ID:          p.ID.String(),
		Nome:        p.Nome,
		Localizacao: p.Localizacao,
		Status:      p.Status,
		CicloAtual:  p.CicloAtual,
		Ativo:       p.Ativo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
