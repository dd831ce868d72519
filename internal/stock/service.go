package stock

import (
	"context"
	"fmt"
	"sort"

	"cozinha-backend/internal/models"
)

// Service: conjunto de trabalho em memória. Refresh carrega tudo do Store de
// uma vez; os acessores são puros sobre os dados carregados e nunca fazem I/O.
// Sessão única, um operador: sem locking.
type Service struct {
	store Store
	month string // mês de inventário selecionado (YYYY-MM), corte de recurso

	products     []models.Product
	entries      []models.Entry
	consumptions []models.Consumption
	snapshots    []models.Snapshot
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Refresh: rematerializa o conjunto de trabalho. Só substitui o estado se
// todas as leituras tiverem sucesso; uma falha deixa tudo como estava.
func (s *Service) Refresh(ctx context.Context) error {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("carregar produtos: %w", err)
	}
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("carregar entradas: %w", err)
	}
	consumptions, err := s.store.ListConsumptions(ctx)
	if err != nil {
		return fmt.Errorf("carregar saídas: %w", err)
	}
	snapshots, err := s.store.ListSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("carregar inventário real: %w", err)
	}

	s.products = products
	s.entries = entries
	s.consumptions = consumptions
	s.snapshots = snapshots
	return nil
}

// SetMonthContext: define o mês usado como corte para produtos sem contagem.
func (s *Service) SetMonthContext(month string) { s.month = month }

func (s *Service) MonthContext() string { return s.month }

// Products: catálogo ordenado por nome.
func (s *Service) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) Entries() []models.Entry            { return s.entries }
func (s *Service) Consumptions() []models.Consumption { return s.consumptions }

func (s *Service) ProductByName(name string) (models.Product, bool) {
	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Service) SnapshotOf(name string) (models.Snapshot, bool) {
	for _, snap := range s.snapshots {
		if snap.Product == name {
			return snap, true
		}
	}
	return models.Snapshot{}, false
}

// Theoretical: stock teórico de todos os produtos (entradas − saídas, vitalício).
func (s *Service) Theoretical() map[string]float64 {
	return TheoreticalStock(s.entries, s.consumptions)
}

func (s *Service) TheoreticalOf(name string) float64 {
	return Num(s.Theoretical()[name])
}

// Adjusted: stock atual de todos os produtos (contagem + movimentos desde o corte).
func (s *Service) Adjusted() map[string]float64 {
	return AdjustedStock(s.products, s.snapshots, s.entries, s.consumptions, s.month)
}

func (s *Service) AdjustedOf(name string) float64 {
	return Num(s.Adjusted()[name])
}

// BelowMinimumList: produtos em aviso, ordenados por nome.
func (s *Service) BelowMinimumList() []models.Product {
	out := BelowMinimum(s.products, s.Adjusted())
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Service) TotalValue() float64 {
	return TotalValue(s.products, s.Adjusted())
}

// EntriesBetween: entradas com data (YYYY-MM-DD) dentro do intervalo
// inclusivo. Limites vazios ficam em aberto.
func (s *Service) EntriesBetween(from, to string) []models.Entry {
	var out []models.Entry
	for _, e := range s.entries {
		if withinRange(dateOnly(e.Timestamp), from, to) {
			out = append(out, e)
		}
	}
	return out
}

// ConsumptionsBetween: idem para saídas.
func (s *Service) ConsumptionsBetween(from, to string) []models.Consumption {
	var out []models.Consumption
	for _, c := range s.consumptions {
		if withinRange(dateOnly(c.Timestamp), from, to) {
			out = append(out, c)
		}
	}
	return out
}

func withinRange(d, from, to string) bool {
	if d == "" {
		return false
	}
	if from != "" && d < from {
		return false
	}
	if to != "" && d > to {
		return false
	}
	return true
}
