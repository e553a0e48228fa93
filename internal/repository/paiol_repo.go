package repository

import (
	"context"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaiolRepository defines the data access contract for paiols.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via fakes.
type PaiolRepository interface {
	Create(ctx context.Context, p *model.Paiol) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Paiol, error)
	List(ctx context.Context, filter dto.PaiolFilter) ([]model.Paiol, int64, error)
	Update(ctx context.Context, p *model.Paiol) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	IncrementarCicloTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type paiolRepo struct{ db *gorm.DB }

func NewPaiolRepository(db *gorm.DB) PaiolRepository { return &paiolRepo{db: db} }

func (r *paiolRepo) Create(ctx context.Context, p *model.Paiol) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paiolRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Paiol, error) {
	var p model.Paiol
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *paiolRepo) List(ctx context.Context, filter dto.PaiolFilter) ([]model.Paiol, int64, error) {
	var paiols []model.Paiol
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Paiol{})

	// Ativo filter: "false" = inativos, "all" = todos, anything else = ativos (default)
	switch filter.Ativo {
	case "false":
		q = q.Where("ativo = false")
	case "all":
		// no filter
	default:
		q = q.Where("ativo = true")
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&paiols).Error
	return paiols, total, err
}

func (r *paiolRepo) Update(ctx context.Context, p *model.Paiol) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *paiolRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Paiol{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *paiolRepo) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Paiol{}).Where("id = ?", id).Update("ativo", true).Error
}

func (r *paiolRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Paiol{}).Where("id = ?", id).Update("status", status).Error
}

func (r *paiolRepo) IncrementarCicloTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Paiol{}).Where("id = ?", id).
		Update("ciclo_atual", gorm.Expr("ciclo_atual + 1")).Error
}

func (r *paiolRepo) DB() *gorm.DB { return r.db }
