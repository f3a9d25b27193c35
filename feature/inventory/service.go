package inventory

import (
	"context"
	"iter"
	"sort"
	"strings"
	"time"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/snapshot"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the in-memory product collection. It is the sole mutator of
// inventory state between load and save; every successful mutation is
// persisted to the snapshot before it is reported back to the caller.
type Service struct {
	cfg     Config
	store   *snapshot.Store
	logger  *zap.Logger
	db      *gorm.DB       // optional mirror target for the audit table
	archive storage.Client // optional receipt archive
	bucket  string

	products map[string]models.Product
	history  []models.Transaction
	now      func() time.Time
}

// NewService creates a new inventory service. db and archive may be nil.
func NewService(cfg Config, store *snapshot.Store, logger *zap.Logger, db *gorm.DB, archive storage.Client, bucket string) *Service {
	return &Service{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		db:       db,
		archive:  archive,
		bucket:   bucket,
		products: map[string]models.Product{},
		now:      time.Now,
	}
}

// WithClock overrides the timestamp source. Used by tests for deterministic
// transactions and receipts.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load replaces the in-memory collection with the persisted snapshot.
// A corrupt snapshot surfaces as *snapshot.CorruptStateError; the caller
// decides whether to start empty or abort.
func (s *Service) Load() error {
	products, err := s.store.Load()
	if err != nil {
		return err
	}
	s.products = products
	return nil
}

// StartEmpty discards any loaded state and begins with an empty collection.
func (s *Service) StartEmpty() {
	s.products = map[string]models.Product{}
}

// AddProduct validates and inserts a new product, then persists the snapshot.
// Validation happens before any mutation; a failed save rolls the insert back
// so the operation is atomic.
func (s *Service) AddProduct(ctx context.Context, id, name string, price float64, stock int) (*models.Product, error) {
	product, err := models.NewProduct(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if _, exists := s.products[product.ID]; exists {
		return nil, &models.ValidationError{Field: "id", Reason: "already exists"}
	}

	s.products[product.ID] = *product
	if err := s.persist(ctx); err != nil {
		delete(s.products, product.ID)
		return nil, err
	}

	s.logger.Info("product added",
		zap.String("id", product.ID),
		zap.String("name", product.Name),
		zap.Int("stock", product.Stock),
	)
	return product, nil
}

// AdjustStock applies a stock delta (negative for sales, positive for
// restocks) and returns the new stock level. Selling more than available is
// rejected, not clamped.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	tx, err := s.adjust(ctx, id, delta)
	if err != nil {
		return 0, err
	}
	return tx.ResultingStock, nil
}

// Sell removes quantity units of a product, records the transaction and
// writes a receipt file. It returns the transaction and the receipt path.
func (s *Service) Sell(ctx context.Context, id string, quantity int) (*models.Transaction, string, error) {
	if quantity <= 0 {
		return nil, "", &models.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	tx, err := s.adjust(ctx, id, -quantity)
	if err != nil {
		return nil, "", err
	}

	receiptPath, err := s.writeReceipt(ctx, *tx)
	if err != nil {
		// The sale itself is committed; a failed receipt write is reported
		// but does not undo the transaction.
		s.logger.Warn("failed to write receipt", zap.String("transaction", tx.ID), zap.Error(err))
		return tx, "", nil
	}
	return tx, receiptPath, nil
}

func (s *Service) adjust(ctx context.Context, id string, delta int) (*models.Transaction, error) {
	if delta == 0 {
		return nil, &models.ValidationError{Field: "delta", Reason: "must not be zero"}
	}

	product, ok := s.products[id]
	if !ok {
		return nil, &models.NotFoundError{ID: id}
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		return nil, &models.InsufficientStockError{
			ID:        id,
			Available: product.Stock,
			Requested: -delta,
		}
	}

	previous := product
	product.Stock = newStock
	s.products[id] = product

	tx := models.Transaction{
		ID:             uuid.NewString(),
		Timestamp:      s.now(),
		ProductID:      product.ID,
		ProductName:    product.Name,
		Delta:          delta,
		ResultingStock: newStock,
		UnitPrice:      product.Price,
	}
	tx.Total = float64(tx.Quantity()) * product.Price

	if err := s.persist(ctx); err != nil {
		s.products[id] = previous
		return nil, err
	}

	s.history = append(s.history, tx)
	if err := s.store.AppendTransaction(tx); err != nil {
		// The snapshot already reflects the new stock; the JSONL log is a
		// secondary record, so failures are reported but not fatal.
		s.logger.Warn("failed to append transaction log", zap.String("transaction", tx.ID), zap.Error(err))
	}

	s.logger.Info("stock adjusted",
		zap.String("id", id),
		zap.Int("delta", delta),
		zap.Int("stock", newStock),
	)
	return &tx, nil
}

// persist saves the snapshot and mirrors it to the audit table when a
// database connection is present. Mirror failures are logged, not fatal;
// the snapshot remains the authoritative store.
func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Save(s.products); err != nil {
		return err
	}
	if s.db != nil {
		if err := s.MirrorToDatabase(ctx); err != nil {
			s.logger.Warn("failed to mirror inventory to database", zap.Error(err))
		}
	}
	return nil
}

// Product looks up a product by id.
func (s *Service) Product(id string) (models.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// Products returns a lazy, restartable sequence of all products ordered by
// name (case-insensitive), then id. Iteration has no side effects.
func (s *Service) Products() iter.Seq[models.Product] {
	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.products[ids[i]], s.products[ids[j]]
		na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if na != nb {
			return na < nb
		}
		return a.ID < b.ID
	})

	return func(yield func(models.Product) bool) {
		for _, id := range ids {
			if !yield(s.products[id]) {
				return
			}
		}
	}
}

// LowStock returns the products with stock at or below the threshold, in the
// same order as Products.
func (s *Service) LowStock(threshold int) []models.Product {
	var matches []models.Product
	for p := range s.Products() {
		if p.Stock <= threshold {
			matches = append(matches, p)
		}
	}
	return matches
}

// Transactions returns the transactions recorded during this process
// lifetime, oldest first.
func (s *Service) Transactions() []models.Transaction {
	return s.history
}

// Len returns the number of products in the collection.
func (s *Service) Len() int {
	return len(s.products)
}
