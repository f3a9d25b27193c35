package models_test

import (
	"testing"

	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		prodName  string
		price     float64
		stock     int
		wantField string
	}{
		{"Valid", "P1", "Widget", 9.99, 10, ""},
		{"ZeroPriceAndStock", "P2", "Freebie", 0, 0, ""},
		{"EmptyID", "", "Widget", 9.99, 10, "id"},
		{"BlankID", "   ", "Widget", 9.99, 10, "id"},
		{"EmptyName", "P1", "", 9.99, 10, "name"},
		{"NegativePrice", "P1", "Widget", -0.01, 10, "price"},
		{"NegativeStock", "P1", "Widget", 9.99, -1, "stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := models.NewProduct(tt.id, tt.prodName, tt.price, tt.stock)
			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.NotNil(t, p)
				assert.Equal(t, tt.stock, p.Stock)
				return
			}

			assert.Nil(t, p)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewProduct_TrimsWhitespace(t *testing.T) {
	p, err := models.NewProduct(" P1 ", " Widget ", 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, "Widget", p.Name)
}

func TestTransaction_Helpers(t *testing.T) {
	sale := models.Transaction{Delta: -3}
	assert.True(t, sale.IsSale())
	assert.Equal(t, 3, sale.Quantity())

	restock := models.Transaction{Delta: 5}
	assert.False(t, restock.IsSale())
	assert.Equal(t, 5, restock.Quantity())
}
