package visit

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

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Visit, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Property").
		Order("scheduled_date desc").
		Scopes(f.Page.Scope())
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.PropertyID != "" {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var visits []domain.Visit
	if err := q.Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *Repository) EvaluationCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	return database.CountBy(ctx, r.db, &domain.PlotEvaluation{}, "visit_id", ids)
}

func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.Visit, error) {
	var v domain.Visit
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Property.Plots", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("PlotEvaluations", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("PlotEvaluations.Plot").
		Preload("PlotEvaluations.Media", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) GetRow(ctx context.Context, id string) (*domain.Visit, error) {
	var v domain.Visit
	if err := r.db.WithContext(ctx).Preload("Client").Preload("Property").First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Status(ctx context.Context, id string) (domain.VisitStatus, error) {
	var v domain.Visit
	if err := r.db.WithContext(ctx).Select("id", "status").First(&v, "id = ?", id).Error; err != nil {
		return "", err
	}
	return v.Status, nil
}

func (r *Repository) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return database.Exists(ctx, r.db, &domain.Client{}, clientID)
}

// PropertyOwner returns the client id of the property.
func (r *Repository) PropertyOwner(ctx context.Context, propertyID string) (string, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).Select("id", "client_id").First(&p, "id = ?", propertyID).Error; err != nil {
		return "", err
	}
	return p.ClientID, nil
}

func (r *Repository) Create(ctx context.Context, v *domain.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Visit{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Visit{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
