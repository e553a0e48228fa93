package service

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"
	"github.com/okaique/paiol-dashboard-sub000/internal/worker"

	"github.com/google/uuid"
)

type CubagemService interface {
	// Registrar computes volume_normal from the measurements and stores the
	// cubagem. One per dragagem — a second registration is rejected.
	Registrar(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarCubagemRequest) (*dto.CubagemResponse, error)
	// AtualizarVolumeReduzido is the only mutation allowed after creation.
	AtualizarVolumeReduzido(ctx context.Context, id uuid.UUID, volume float64) (*dto.CubagemResponse, error)
	// Calcular is the persistence-free preview of the cylinder formula.
	Calcular(req dto.CalcularVolumeRequest) (*dto.CalculoVolumeResponse, error)
}

type cubagemService struct {
	cubagens   repository.CubagemRepository
	dragagens  repository.DragagemRepository
	dispatcher *worker.Dispatcher
}

func NewCubagemService(cubagens repository.CubagemRepository, dragagens repository.DragagemRepository, dispatcher *worker.Dispatcher) CubagemService {
	return &cubagemService{cubagens: cubagens, dragagens: dragagens, dispatcher: dispatcher}
}

func (s *cubagemService) Registrar(ctx context.Context, dragagemID uuid.UUID, req dto.RegistrarCubagemRequest) (*dto.CubagemResponse, error) {
	dragagem, err := s.dragagens.FindByID(ctx, dragagemID)
	if err != nil {
		return nil, ErrDragagemNaoEncontrada
	}
	if existente, err := s.cubagens.FindByDragagemID(ctx, dragagemID); err == nil && existente != nil {
		return nil, ErrCubagemJaRegistrada
	}

	resultado, err := CalcularVolume(req.MedidaInferior, req.MedidaSuperior, req.Perimetro)
	if err != nil {
		return nil, err
	}
	if req.VolumeReduzido <= 0 {
		return nil, &ErroMedidaInvalida{Campo: "volume_reduzido"}
	}

	cubagem := &model.Cubagem{
		DragagemID:     dragagem.ID,
		PaiolID:        dragagem.PaiolID,
		MedidaInferior: req.MedidaInferior,
		MedidaSuperior: req.MedidaSuperior,
		Perimetro:      req.Perimetro,
		VolumeNormal:   resultado.VolumeNormal,
		VolumeReduzido: req.VolumeReduzido,
	}
	if err := s.cubagens.Create(ctx, cubagem); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, dragagem.PaiolID)
	}

	resp := cubagemToResponse(cubagem)
	resp.Avisos = resultado.Avisos
	return resp, nil
}

func (s *cubagemService) AtualizarVolumeReduzido(ctx context.Context, id uuid.UUID, volume float64) (*dto.CubagemResponse, error) {
	if volume <= 0 {
		return nil, &ErroMedidaInvalida{Campo: "volume_reduzido"}
	}
	cubagem, err := s.cubagens.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCubagemNaoEncontrada
	}
	if err := s.cubagens.UpdateVolumeReduzido(ctx, id, volume); err != nil {
		return nil, err
	}
	cubagem.VolumeReduzido = volume

	if s.dispatcher != nil {
		s.dispatcher.InvalidarTimeline(ctx, cubagem.PaiolID)
	}
	return cubagemToResponse(cubagem), nil
}

func (s *cubagemService) Calcular(req dto.CalcularVolumeRequest) (*dto.CalculoVolumeResponse, error) {
	resultado, err := CalcularVolume(req.MedidaInferior, req.MedidaSuperior, req.Perimetro)
	if err != nil {
		return nil, err
	}
	return &dto.CalculoVolumeResponse{
		Raio:         resultado.Raio,
		Altura:       resultado.Altura,
		AreaBase:     resultado.AreaBase,
		VolumeNormal: resultado.VolumeNormal,
		Avisos:       resultado.Avisos,
	}, nil
}

func cubagemToResponse(c *model.Cubagem) *dto.CubagemResponse {
	return &dto.CubagemResponse{
		ID:             c.ID.String(),
		DragagemID:     c.DragagemID.String(),
		PaiolID:        c.PaiolID.String(),
		MedidaInferior: c.MedidaInferior,
		MedidaSuperior: c.MedidaSuperior,
		Perimetro:      c.Perimetro,
		VolumeNormal:   c.VolumeNormal,
		VolumeReduzido: c.VolumeReduzido,
	}
}
