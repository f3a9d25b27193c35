package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// productRow is the writer side of the persisted product table contract.
// The audit feature reads the same table through its own model; the two
// bounded contexts share nothing but this schema (table "productos",
// columns id, nombre, precio, stock).
type productRow struct {
	ID     string  `gorm:"column:id;primaryKey"`
	Nombre string  `gorm:"column:nombre;not null"`
	Precio float64 `gorm:"column:precio;not null"`
	Stock  int     `gorm:"column:stock;not null"`
}

func (productRow) TableName() string {
	return "productos"
}

// MirrorToDatabase replaces the audit table contents with the current
// in-memory collection, so the independent auditor process sees whatever was
// last saved. The whole replacement runs in one database transaction.
func (s *Service) MirrorToDatabase(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("no database connection configured")
	}

	if err := s.db.WithContext(ctx).AutoMigrate(&productRow{}); err != nil {
		return fmt.Errorf("failed to migrate product table: %w", err)
	}

	rows := make([]productRow, 0, len(s.products))
	for p := range s.Products() {
		rows = append(rows, productRow{
			ID:     p.ID,
			Nombre: p.Name,
			Precio: p.Price,
			Stock:  p.Stock,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM productos").Error; err != nil {
			return fmt.Errorf("failed to clear product table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert product rows: %w", err)
		}
		return nil
	})
}
