package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransicaoRepository is append-only: transitions are never updated or deleted.
type TransicaoRepository interface {
	CreateTx(tx *gorm.DB, t *model.TransicaoStatus) error
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.TransicaoStatus, error)
}

type transicaoRepo struct{ db *gorm.DB }

func NewTransicaoRepository(db *gorm.DB) TransicaoRepository { return &transicaoRepo{db: db} }

func (r *transicaoRepo) CreateTx(tx *gorm.DB, t *model.TransicaoStatus) error {
	return tx.Create(t).Error
}

func (r *transicaoRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.TransicaoStatus, error) {
	var transicoes []model.TransicaoStatus
	err := r.db.WithContext(ctx).Where("paiol_id = ?", paiolID).
		Order("created_at ASC").Find(&transicoes).Error
	return transicoes, err
}
