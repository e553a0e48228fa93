package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagamentoRepository interface {
	Create(ctx context.Context, p *model.PagamentoPessoal) error
	ListByDragagem(ctx context.Context, dragagemID uuid.UUID) ([]model.PagamentoPessoal, error)
	// ListByPaiol joins through dragagens — payments have no paiol column.
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.PagamentoPessoal, error)
}

type pagamentoRepo struct{ db *gorm.DB }

func NewPagamentoRepository(db *gorm.DB) PagamentoRepository { return &pagamentoRepo{db: db} }

func (r *pagamentoRepo) Create(ctx context.Context, p *model.PagamentoPessoal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pagamentoRepo) ListByDragagem(ctx context.Context, dragagemID uuid.UUID) ([]model.PagamentoPessoal, error) {
	var pagamentos []model.PagamentoPessoal
	err := r.db.WithContext(ctx).Where("dragagem_id = ?", dragagemID).
		Order("data_pagamento ASC").Find(&pagamentos).Error
	return pagamentos, err
}

func (r *pagamentoRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.PagamentoPessoal, error) {
	var pagamentos []model.PagamentoPessoal
	err := r.db.WithContext(ctx).
		Joins("JOIN dragagens ON dragagens.id = pagamentos_pessoais.dragagem_id").
		Where("dragagens.paiol_id = ?", paiolID).
		Order("pagamentos_pessoais.data_pagamento ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

type GastoRepository interface {
	Create(ctx context.Context, g *model.GastoInsumo) error
	ListByDragagem(ctx context.Context, dragagemID uuid.UUID) ([]model.GastoInsumo, error)
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.GastoInsumo, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.GastoInsumo) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) ListByDragagem(ctx context.Context, dragagemID uuid.UUID) ([]model.GastoInsumo, error) {
	var gastos []model.GastoInsumo
	err := r.db.WithContext(ctx).Where("dragagem_id = ?", dragagemID).
		Order("data_gasto ASC").Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.GastoInsumo, error) {
	var gastos []model.GastoInsumo
	err := r.db.WithContext(ctx).
		Joins("JOIN dragagens ON dragagens.id = gastos_insumo.dragagem_id").
		Where("dragagens.paiol_id = ?", paiolID).
		Order("gastos_insumo.data_gasto ASC").
		Find(&gastos).Error
	return gastos, err
}
