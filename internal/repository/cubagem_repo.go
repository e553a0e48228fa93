package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CubagemRepository interface {
	Create(ctx context.Context, c *model.Cubagem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cubagem, error)
	FindByDragagemID(ctx context.Context, dragagemID uuid.UUID) (*model.Cubagem, error)
	ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Cubagem, error)
	// UpdateVolumeReduzido is the only mutation allowed after creation.
	UpdateVolumeReduzido(ctx context.Context, id uuid.UUID, volume float64) error
}

type cubagemRepo struct{ db *gorm.DB }

func NewCubagemRepository(db *gorm.DB) CubagemRepository { return &cubagemRepo{db: db} }

func (r *cubagemRepo) Create(ctx context.Context, c *model.Cubagem) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cubagemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cubagem, error) {
	var c model.Cubagem
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cubagemRepo) FindByDragagemID(ctx context.Context, dragagemID uuid.UUID) (*model.Cubagem, error) {
	var c model.Cubagem
	err := r.db.WithContext(ctx).Where("dragagem_id = ?", dragagemID).First(&c).Error
	return &c, err
}

func (r *cubagemRepo) ListByPaiol(ctx context.Context, paiolID uuid.UUID) ([]model.Cubagem, error) {
	var cubagens []model.Cubagem
	err := r.db.WithContext(ctx).Where("paiol_id = ?", paiolID).
		Order("created_at ASC").Find(&cubagens).Error
	return cubagens, err
}

func (r *cubagemRepo) UpdateVolumeReduzido(ctx context.Context, id uuid.UUID, volume float64) error {
	return r.db.WithContext(ctx).Model(&model.Cubagem{}).
		Where("id = ?", id).Update("volume_reduzido", volume).Error
}
