package client

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

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).
		Preload("Properties", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Order("created_at desc").
		Scopes(f.Page.Scope())

	if f.Search != "" {
		like := database.Like(f.Search)
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(phone) LIKE ? ESCAPE '\'`, like, like, like)
	}

	var clients []domain.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Counts returns visits and sales orders per client.
func (r *Repository) Counts(ctx context.Context, ids []string) (visits, orders map[string]int64, err error) {
	visits, err = database.CountBy(ctx, r.db, &domain.Visit{}, "client_id", ids)
	if err != nil {
		return nil, nil, err
	}
	orders, err = database.CountBy(ctx, r.db, &domain.SalesOrder{}, "client_id", ids)
	if err != nil {
		return nil, nil, err
	}
	return visits, orders, nil
}

// GetDetail loads a client with properties (and their plots), visits and
// sales orders.
func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.Client, error) {
	var c domain.Client
	err := r.db.WithContext(ctx).
		Preload("Properties", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Properties.Plots", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Visits", func(db *gorm.DB) *gorm.DB { return db.Order("scheduled_date desc") }).
		Preload("Visits.Property").
		Preload("SalesOrders", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) OrderItemCounts(ctx context.Context, orderIDs []string) (map[string]int64, error) {
	return database.CountBy(ctx, r.db, &domain.SalesOrderItem{}, "sales_order_id", orderIDs)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.Client{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes the client; properties, visits and orders cascade.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
