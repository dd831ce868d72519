package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cozinha-backend/internal/models"
)

// Origem fixa das saídas registadas pela equipa.
const ConsumptionSector = "Cozinha"

var (
	ErrInvalidQuantity     = errors.New("quantidade inválida")
	ErrEmptyBatch          = errors.New("lista vazia")
	ErrResponsibleRequired = errors.New("responsável obrigatório")
	ErrIndexOutOfRange     = errors.New("linha inexistente na lista provisória")
)

// Batch: lista provisória de saídas. Vive só em memória até Commit; linhas
// podem ser removidas livremente antes de confirmar, depois ficam imutáveis.
type Batch struct {
	items []models.Consumption
}

// Add: acrescenta uma saída provisória. O timestamp é atribuído aqui, no
// momento do registo, e não volta a mudar.
func (b *Batch) Add(product models.Product, quantity float64) error {
	if Num(quantity) <= 0 {
		return ErrInvalidQuantity
	}
	b.items = append(b.items, models.Consumption{
		Product:   product.Name,
		Quantity:  quantity,
		Sector:    ConsumptionSector,
		Timestamp: time.Now(),
	})
	return nil
}

// Remove: tira uma linha da lista provisória (só antes do commit).
func (b *Batch) Remove(i int) error {
	if i < 0 || i >= len(b.items) {
		return ErrIndexOutOfRange
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return nil
}

func (b *Batch) Len() int { return len(b.items) }

func (b *Batch) Items() []models.Consumption {
	out := make([]models.Consumption, len(b.items))
	copy(out, b.items)
	return out
}

// Commit: grava o lote inteiro com o responsável indicado. Falha da escrita
// deixa a lista provisória intacta; sucesso esvazia-a.
func (b *Batch) Commit(ctx context.Context, store Store, responsible string) error {
	if responsible == "" {
		return ErrResponsibleRequired
	}
	if len(b.items) == 0 {
		return ErrEmptyBatch
	}

	batch := make([]models.Consumption, len(b.items))
	copy(batch, b.items)
	for i := range batch {
		batch[i].Responsible = responsible
	}

	if err := store.InsertConsumptions(ctx, batch); err != nil {
		return fmt.Errorf("gravar saídas: %w", err)
	}

	b.items = nil
	return nil
}
