package plot

import (
	"context"

	"gorm.io/gorm"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Plot, error) {
	q := r.db.WithContext(ctx).
		Preload("Property.Client").
		Order("created_at desc").
		Scopes(f.Page.Scope())
	if f.PropertyID != "" {
		q = q.Where("property_id = ?", f.PropertyID)
	}

	var plots []domain.Plot
	if err := q.Find(&plots).Error; err != nil {
		return nil, err
	}
	return plots, nil
}

func (r *Repository) EvaluationCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	return database.CountBy(ctx, r.db, &domain.PlotEvaluation{}, "plot_id", ids)
}

func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.Plot, error) {
	var p domain.Plot
	err := r.db.WithContext(ctx).
		Preload("Property.Client").
		Preload("PlotEvaluations", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("PlotEvaluations.Visit").
		Preload("PlotEvaluations.Media", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetRow(ctx context.Context, id string) (*domain.Plot, error) {
	var p domain.Plot
	if err := r.db.WithContext(ctx).Preload("Property.Client").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) PropertyExists(ctx context.Context, propertyID string) (bool, error) {
	return database.Exists(ctx, r.db, &domain.Property{}, propertyID)
}

func (r *Repository) Create(ctx context.Context, p *domain.Plot) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Plot{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Plot{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
