package repository

import (
	"context"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RetiradaRepository interface {
	Create(ctx context.Context, r *model.Retirada) error
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Retirada, error)
	// ListByPaiolDesde returns withdrawals at or after t — i.e. those belonging
	// to the current cycle when t is the last fechamento timestamp.
	ListByPaiolDesde(ctx context.Context, paiolID uuid.UUID, t time.Time) ([]model.Retirada, error)
}

type retiradaRepo struct{ db *gorm.DB }

func NewRetiradaRepository(db *gorm.DB) RetiradaRepository { return &retiradaRepo{db: db} }

func (r *retiradaRepo) Create(ctx context.Context, ret *model.Retirada) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *retiradaRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Retirada, error) {
	var retiradas []model.Retirada
	err := r.db.WithContext(ctx).Where("paiol_id = ?", paiolID).
		Order("data_retirada ASC").Find(&retiradas).Error
	return retiradas, err
}

func (r *retiradaRepo) ListByPaiolDesde(ctx context.Context, paiolID uuid.UUID, t time.Time) ([]model.Retirada, error) {
	var retiradas []model.Retirada
	err := r.db.WithContext(ctx).
		Where("paiol_id = ? AND data_retirada >= ?", paiolID, t).
		Order("data_retirada ASC").Find(&retiradas).Error
	return retiradas, err
}
