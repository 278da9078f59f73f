package database

import (
	"agroconsult/internal/domain"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&domain.Client{},
		&domain.Property{},
		&domain.Plot{},
		&domain.Product{},
		&domain.Visit{},
		&domain.PlotEvaluation{},
		&domain.Media{},
		&domain.SalesOrder{},
		&domain.SalesOrderItem{},
	}
}

// Migrate creates or updates the schema, including the cascade rules
// declared on the relations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
