package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/snapshot"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *snapshot.Store {
	dir := t.TempDir()
	return snapshot.NewStore(
		filepath.Join(dir, "data", "inventory.json"),
		filepath.Join(dir, "data", "transactions.log"),
	)
}

func TestLoad_MissingFileYieldsEmptyInventory(t *testing.T) {
	store := newTestStore(t)

	products, err := store.Load()
	assert.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")
	err := os.WriteFile(path, []byte("{not valid json"), 0o644)
	assert.NoError(t, err)

	store := snapshot.NewStore(path, filepath.Join(dir, "transactions.log"))
	products, err := store.Load()
	assert.Nil(t, products)

	var cerr *snapshot.CorruptStateError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, path, cerr.Path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := map[string]models.Product{
		"P1": {ID: "P1", Name: "Widget", Price: 9.99, Stock: 10},
		"P2": {ID: "P2", Name: "Gadget", Price: 0, Stock: 0},
	}

	err := store.Save(want)
	assert.NoError(t, err)

	got, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	// Save of the loaded state is a fixed point.
	err = store.Save(got)
	assert.NoError(t, err)
	again, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")
	store := snapshot.NewStore(path, filepath.Join(dir, "transactions.log"))

	err := store.Save(map[string]models.Product{
		"P1": {ID: "P1", Name: "Widget", Price: 1, Stock: 1},
	})
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "inventory.json", entries[0].Name())
}

func TestAppendTransaction(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "transactions.log")
	store := snapshot.NewStore(filepath.Join(dir, "inventory.json"), logPath)

	txs := []models.Transaction{
		{ID: "t1", Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ProductID: "P1", Delta: -3, ResultingStock: 7},
		{ID: "t2", Timestamp: time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC), ProductID: "P1", Delta: 5, ResultingStock: 12},
	}
	for _, tx := range txs {
		assert.NoError(t, store.AppendTransaction(tx))
	}

	data, err := os.ReadFile(logPath)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id":"t1"`)
	assert.Contains(t, lines[1], `"id":"t2"`)
}
