package salesorder

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

func orderItems(db *gorm.DB) *gorm.DB { return db.Order("position asc") }

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.SalesOrder, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Visit.Property").
		Preload("OrderItems", orderItems).
		Preload("OrderItems.Product").
		Order("created_at desc").
		Scopes(f.Page.Scope())
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}

	var orders []domain.SalesOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) GetDetail(ctx context.Context, id string) (*domain.SalesOrder, error) {
	var o domain.SalesOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Visit.Property").
		Preload("OrderItems", orderItems).
		Preload("OrderItems.Product").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) GetRow(ctx context.Context, id string) (*domain.SalesOrder, error) {
	var o domain.SalesOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("OrderItems", orderItems).
		Preload("OrderItems.Product").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Status(ctx context.Context, id string) (domain.OrderStatus, error) {
	var o domain.SalesOrder
	if err := r.db.WithContext(ctx).Select("id", "status").First(&o, "id = ?", id).Error; err != nil {
		return "", err
	}
	return o.Status, nil
}

func (r *Repository) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return database.Exists(ctx, r.db, &domain.Client{}, clientID)
}

// VisitClient returns the client id of the visit.
func (r *Repository) VisitClient(ctx context.Context, visitID string) (string, error) {
	var v domain.Visit
	if err := r.db.WithContext(ctx).Select("id", "client_id").First(&v, "id = ?", visitID).Error; err != nil {
		return "", err
	}
	return v.ClientID, nil
}

// CountProducts counts how many of the distinct ids exist.
func (r *Repository) CountProducts(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

// Create inserts the order and its items in one transaction.
func (r *Repository) Create(ctx context.Context, o *domain.SalesOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// Update applies changes and, when items is non-nil, replaces the order's
// items. Everything is rolled back on error. A missing order is reported as
// gorm.ErrRecordNotFound.
func (r *Repository) Update(ctx context.Context, id string, changes map[string]any, items []domain.SalesOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.SalesOrder{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if items == nil {
			return nil
		}

		if err := tx.Where("sales_order_id = ?", id).Delete(&domain.SalesOrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SalesOrderID = id
		}
		return tx.Create(&items).Error
	})
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.SalesOrder{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
