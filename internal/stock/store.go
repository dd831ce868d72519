package stock

import (
	"context"

	"cozinha-backend/internal/models"
)

// Store: contrato mínimo com o registo persistente (as quatro tabelas
// lógicas). O motor nunca toca na base diretamente: só lê conjuntos já
// materializados e escreve lotes através desta interface.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	// ListEntries e ListConsumptions devolvem por timestamp descendente.
	ListEntries(ctx context.Context) ([]models.Entry, error)
	ListConsumptions(ctx context.Context) ([]models.Consumption, error)
	ListSnapshots(ctx context.Context) ([]models.Snapshot, error)

	InsertEntry(ctx context.Context, e *models.Entry) error
	InsertConsumptions(ctx context.Context, batch []models.Consumption) error
	// UpsertSnapshots substitui a linha viva de cada produto (chave: nome).
	// O lote é tudo-ou-nada: falha parcial não pode deixar metade gravada.
	UpsertSnapshots(ctx context.Context, rows []models.Snapshot) error
}
