package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PessoaRepository resolves the lookup tables the timeline references.
// The batch methods take distinct id slices so the aggregator issues one
// query per table, never one per event.
type PessoaRepository interface {
	FindDragadorByID(ctx context.Context, id uuid.UUID) (*model.Dragador, error)
	FindAjudanteByID(ctx context.Context, id uuid.UUID) (*model.Ajudante, error)
	FindClienteByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindTipoInsumoByID(ctx context.Context, id uuid.UUID) (*model.TipoInsumo, error)

	FindDragadores(ctx context.Context, ids []uuid.UUID) ([]model.Dragador, error)
	FindAjudantes(ctx context.Context, ids []uuid.UUID) ([]model.Ajudante, error)
	FindClientes(ctx context.Context, ids []uuid.UUID) ([]model.Cliente, error)
	FindTiposInsumo(ctx context.Context, ids []uuid.UUID) ([]model.TipoInsumo, error)
}

type pessoaRepo struct{ db *gorm.DB }

func NewPessoaRepository(db *gorm.DB) PessoaRepository { return &pessoaRepo{db: db} }

func (r *pessoaRepo) FindDragadorByID(ctx context.Context, id uuid.UUID) (*model.Dragador, error) {
	var d model.Dragador
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *pessoaRepo) FindAjudanteByID(ctx context.Context, id uuid.UUID) (*model.Ajudante, error) {
	var a model.Ajudante
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *pessoaRepo) FindClienteByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *pessoaRepo) FindTipoInsumoByID(ctx context.Context, id uuid.UUID) (*model.TipoInsumo, error) {
	var t model.TipoInsumo
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *pessoaRepo) FindDragadores(ctx context.Context, ids []uuid.UUID) ([]model.Dragador, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var dragadores []model.Dragador
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dragadores).Error
	return dragadores, err
}

func (r *pessoaRepo) FindAjudantes(ctx context.Context, ids []uuid.UUID) ([]model.Ajudante, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ajudantes []model.Ajudante
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ajudantes).Error
	return ajudantes, err
}

func (r *pessoaRepo) FindClientes(ctx context.Context, ids []uuid.UUID) ([]model.Cliente, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clientes).Error
	return clientes, err
}

func (r *pessoaRepo) FindTiposInsumo(ctx context.Context, ids []uuid.UUID) ([]model.TipoInsumo, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tipos []model.TipoInsumo
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tipos).Error
	return tipos, err
}
