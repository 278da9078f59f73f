// Package seed bootstraps a minimal demo data set.
package seed

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"agroconsult/internal/domain"
)

// Creator is recorded as created_by on every seeded row.
const Creator = "seed"

type Result struct {
	OK       bool              `json:"ok"`
	Client   domain.Client     `json:"client"`
	Property domain.Property   `json:"property"`
	Plot     domain.Plot       `json:"plot"`
	Product  domain.Product    `json:"product"`
	Visit    domain.Visit      `json:"visit"`
	Order    domain.SalesOrder `json:"order"`
}

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Run makes sure one demo record of each kind exists. Rows found by their
// natural keys are reused, so running it again changes nothing.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	res := &Result{OK: true}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at asc").
			Attrs(domain.Client{
				Name:      "Cliente Demo",
				CpfCnpj:   ptr("00000000000"),
				Phone:     ptr("0000000000"),
				Email:     ptr("demo@example.com"),
				CreatedBy: Creator,
			}).
			FirstOrCreate(&res.Client).Error; err != nil {
			return err
		}

		if err := tx.Where(domain.Property{ClientID: res.Client.ID, Name: "Propriedade Demo"}).
			Attrs(domain.Property{City: ptr("Cidade Demo"), CreatedBy: Creator}).
			FirstOrCreate(&res.Property).Error; err != nil {
			return err
		}

		if err := tx.Where(domain.Plot{PropertyID: res.Property.ID, Name: "Talhão 1"}).
			Attrs(domain.Plot{Crop: ptr("Milho"), AreaHectares: ptr(10.0), CreatedBy: Creator}).
			FirstOrCreate(&res.Plot).Error; err != nil {
			return err
		}

		if err := tx.Where(domain.Product{Name: "Produto Demo 1"}).
			Attrs(domain.Product{Type: domain.ProductFertilizante, ActiveIngredient: ptr("NPK"), CreatedBy: Creator}).
			FirstOrCreate(&res.Product).Error; err != nil {
			return err
		}

		if err := tx.Where(domain.Visit{ClientID: res.Client.ID, PropertyID: res.Property.ID}).
			Attrs(domain.Visit{
				ScheduledDate: s.now().Add(24 * time.Hour).UTC(),
				Objective:     ptr("Visita de demonstração"),
				Status:        domain.VisitScheduled,
				CreatedBy:     Creator,
			}).
			FirstOrCreate(&res.Visit).Error; err != nil {
			return err
		}

		return s.ensureOrder(tx, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) ensureOrder(tx *gorm.DB, res *Result) error {
	err := tx.Preload("OrderItems").Where("client_id = ?", res.Client.ID).First(&res.Order).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	res.Order = domain.SalesOrder{
		ClientID:  res.Client.ID,
		VisitID:   &res.Visit.ID,
		Status:    domain.OrderQuote,
		CreatedBy: Creator,
		OrderItems: []domain.SalesOrderItem{
			{ProductID: res.Product.ID, Quantity: 1, UnitPrice: 100},
		},
	}
	return tx.Create(&res.Order).Error
}

func ptr[T any](v T) *T { return &v }
