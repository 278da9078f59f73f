package product

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

func (r *Repository) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Order("created_at desc").Scopes(f.Page.Scope())
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		like := database.Like(f.Search)
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(active_ingredient) LIKE ? ESCAPE '\'`, like, like)
	}

	products := []domain.Product{}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ItemCount(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.SalesOrderItem{}).Where("product_id = ?", id).Count(&n).Error
	return n, err
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
