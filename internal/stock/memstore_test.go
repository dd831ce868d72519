package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cozinha-backend/internal/models"
)

// memStore: registo persistente em memória para os testes do motor e dos
// fluxos de escrita. As flags fail* simulam indisponibilidade do registo.
type memStore struct {
	products     []models.Product
	entries      []models.Entry
	consumptions []models.Consumption
	snapshots    []models.Snapshot

	failList   bool
	failInsert bool
	failUpsert bool
}

var errStoreDown = errors.New("registo indisponível")

func (m *memStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return append([]models.Product(nil), m.products...), nil
}

func (m *memStore) ListEntries(ctx context.Context) ([]models.Entry, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return append([]models.Entry(nil), m.entries...), nil
}

func (m *memStore) ListConsumptions(ctx context.Context) ([]models.Consumption, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return append([]models.Consumption(nil), m.consumptions...), nil
}

func (m *memStore) ListSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return append([]models.Snapshot(nil), m.snapshots...), nil
}

func (m *memStore) InsertEntry(ctx context.Context, e *models.Entry) error {
	if m.failInsert {
		return errStoreDown
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memStore) InsertConsumptions(ctx context.Context, batch []models.Consumption) error {
	if m.failInsert {
		return errStoreDown
	}
	m.consumptions = append(m.consumptions, batch...)
	return nil
}

func (m *memStore) UpsertSnapshots(ctx context.Context, rows []models.Snapshot) error {
	if m.failUpsert {
		return errStoreDown
	}
	for _, row := range rows {
		replaced := false
		for i := range m.snapshots {
			if m.snapshots[i].Product == row.Product {
				m.snapshots[i].Quantity = row.Quantity
				m.snapshots[i].AsOf = row.AsOf
				replaced = true
				break
			}
		}
		if !replaced {
			m.snapshots = append(m.snapshots, row)
		}
	}
	return nil
}

func (m *memStore) snapshotOf(t *testing.T, name string) models.Snapshot {
	t.Helper()
	var found []models.Snapshot
	for _, s := range m.snapshots {
		if s.Product == name {
			found = append(found, s)
		}
	}
	if len(found) != 1 {
		t.Fatalf("esperava exatamente 1 snapshot de %q, há %d", name, len(found))
	}
	return found[0]
}

func product(name, unit string, minimum, unitPrice float64) models.Product {
	return models.Product{Name: name, Unit: unit, Minimum: minimum, UnitPrice: unitPrice}
}

func entryOn(t *testing.T, name string, qty float64, day string) models.Entry {
	t.Helper()
	return models.Entry{Product: name, Quantity: qty, Timestamp: dayTime(t, day)}
}

func consumptionOn(t *testing.T, name string, qty float64, day string) models.Consumption {
	t.Helper()
	return models.Consumption{Product: name, Quantity: qty, Timestamp: dayTime(t, day)}
}

func snapshotOn(t *testing.T, name string, qty float64, day string) models.Snapshot {
	t.Helper()
	asOf := dayTime(t, day)
	return models.Snapshot{Product: name, Quantity: qty, AsOf: &asOf}
}

func dayTime(t *testing.T, day string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("data de teste inválida %q: %v", day, err)
	}
	return ts
}
