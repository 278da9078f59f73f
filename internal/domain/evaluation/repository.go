package evaluation

import (
	"context"

	"gorm.io/gorm"

	"agroconsult/internal/domain"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderMedia(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.PlotEvaluation, error) {
	q := r.db.WithContext(ctx).
		Preload("Visit.Client").
		Preload("Visit.Property").
		Preload("Plot").
		Preload("Media", orderMedia).
		Order("created_at desc").
		Scopes(f.Page.Scope())
	if f.VisitID != "" {
		q = q.Where("visit_id = ?", f.VisitID)
	}
	if f.PlotID != "" {
		q = q.Where("plot_id = ?", f.PlotID)
	}

	var evals []domain.PlotEvaluation
	if err := q.Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.PlotEvaluation, error) {
	var e domain.PlotEvaluation
	err := r.db.WithContext(ctx).
		Preload("Visit.Client").
		Preload("Visit.Property.Plots", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("Plot").
		Preload("Media", orderMedia).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetRow(ctx context.Context, id string) (*domain.PlotEvaluation, error) {
	var e domain.PlotEvaluation
	err := r.db.WithContext(ctx).
		Preload("Visit.Client").
		Preload("Visit.Property").
		Preload("Plot").
		Preload("Media", orderMedia).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// VisitProperty returns the property id of the visit.
func (r *Repository) VisitProperty(ctx context.Context, visitID string) (string, error) {
	var v domain.Visit
	if err := r.db.WithContext(ctx).Select("id", "property_id").First(&v, "id = ?", visitID).Error; err != nil {
		return "", err
	}
	return v.PropertyID, nil
}

// PlotProperty returns the property id of the plot.
func (r *Repository) PlotProperty(ctx context.Context, plotID string) (string, error) {
	var p domain.Plot
	if err := r.db.WithContext(ctx).Select("id", "property_id").First(&p, "id = ?", plotID).Error; err != nil {
		return "", err
	}
	return p.PropertyID, nil
}

func (r *Repository) Create(ctx context.Context, e *domain.PlotEvaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.PlotEvaluation{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.PlotEvaluation{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
