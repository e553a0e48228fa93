package repository

import (
	"context"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DragagemRepository interface {
	CreateTx(tx *gorm.DB, d *model.Dragagem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dragagem, error)
	// FindAtiva returns the open session (data_fim IS NULL) of a paiol.
	FindAtiva(ctx context.Context, paiolID uuid.UUID) (*model.Dragagem, error)
	// FindUltima returns the most recently started session of a paiol,
	// open or closed — the session whose cubagem gives the current capacity.
	FindUltima(ctx context.Context, paiolID uuid.UUID) (*model.Dragagem, error)
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Dragagem, error)
	SetDataFimTx(tx *gorm.DB, id uuid.UUID, fim time.Time) error
}

type dragagemRepo struct{ db *gorm.DB }

func NewDragagemRepository(db *gorm.DB) DragagemRepository { return &dragagemRepo{db: db} }

func (r *dragagemRepo) CreateTx(tx *gorm.DB, d *model.Dragagem) error {
	return tx.Create(d).Error
}

func (r *dragagemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Dragagem, error) {
	var d model.Dragagem
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *dragagemRepo) FindAtiva(ctx context.Context, paiolID uuid.UUID) (*model.Dragagem, error) {
	var d model.Dragagem
	err := r.db.WithContext(ctx).
		Where("paiol_id = ? AND data_fim IS NULL", paiolID).First(&d).Error
	return &d, err
}

func (r *dragagemRepo) FindUltima(ctx context.Context, paiolID uuid.UUID) (*model.Dragagem, error) {
	var d model.Dragagem
	err := r.db.WithContext(ctx).
		Where("paiol_id = ?", paiolID).Order("data_inicio DESC").First(&d).Error
	return &d, err
}

func (r *dragagemRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Dragagem, error) {
	var dragagens []model.Dragagem
	err := r.db.WithContext(ctx).Where("paiol_id = ?", paiolID).
		Order("data_inicio ASC").Find(&dragagens).Error
	return dragagens, err
}

func (r *dragagemRepo) SetDataFimTx(tx *gorm.DB, id uuid.UUID, fim time.Time) error {
	return tx.Model(&model.Dragagem{}).Where("id = ?", id).Update("data_fim", fim).Error
}
