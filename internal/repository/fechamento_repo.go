package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FechamentoRepository is append-only — fechamentos define cycle boundaries
// and are never modified.
type FechamentoRepository interface {
	CreateTx(tx *gorm.DB, f *model.Fechamento) error
	// ListByPaiol returns fechamentos sorted ascending by data_fechamento,
	// ready for binary-search cycle attribution.
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Fechamento, error)
}

type fechamentoRepo struct{ db *gorm.DB }

func NewFechamentoRepository(db *gorm.DB) FechamentoRepository { return &fechamentoRepo{db: db} }

func (r *fechamentoRepo) CreateTx(tx *gorm.DB, f *model.Fechamento) error {
	return tx.Create(f).Error
}

func (r *fechamentoRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Fechamento, error) {
	var fechamentos []model.Fechamento
	err := r.db.WithContext(ctx).Where("paiol_id = ?", paiolID).
		Order("data_fechamento ASC").Find(&fechamentos).Error
	return fechamentos, err
}
