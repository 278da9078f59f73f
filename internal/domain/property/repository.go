package property

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

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at desc").
		Scopes(f.Page.Scope())
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}

	var props []domain.Property
	if err := q.Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (r *Repository) Counts(ctx context.Context, ids []string) (plots, visits map[string]int64, err error) {
	plots, err = database.CountBy(ctx, r.db, &domain.Plot{}, "property_id", ids)
	if err != nil {
		return nil, nil, err
	}
	visits, err = database.CountBy(ctx, r.db, &domain.Visit{}, "property_id", ids)
	if err != nil {
		return nil, nil, err
	}
	return plots, visits, nil
}

func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Plots", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Visits", func(db *gorm.DB) *gorm.DB { return db.Order("scheduled_date desc") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetWithClient loads the property and its owner.
func (r *Repository) GetWithClient(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).Preload("Client").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return database.Exists(ctx, r.db, &domain.Client{}, clientID)
}

func (r *Repository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected > 0, res.Error
}

// Delete removes the property; plots and visits cascade.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
