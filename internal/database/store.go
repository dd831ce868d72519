package database

import (
	"context"

	"cozinha-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store: implementação gorm do contrato stock.Store sobre as quatro tabelas.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("name asc").Find(&products).Error
	return products, err
}

func (s *Store) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).Order("timestamp desc").Find(&entries).Error
	return entries, err
}

func (s *Store) ListConsumptions(ctx context.Context) ([]models.Consumption, error) {
	var consumptions []models.Consumption
	err := s.db.WithContext(ctx).Order("timestamp desc").Find(&consumptions).Error
	return consumptions, err
}

func (s *Store) ListSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	var snapshots []models.Snapshot
	err := s.db.WithContext(ctx).Find(&snapshots).Error
	return snapshots, err
}

func (s *Store) InsertEntry(ctx context.Context, e *models.Entry) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Store) InsertConsumptions(ctx context.Context, batch []models.Consumption) error {
	return s.db.WithContext(ctx).Create(&batch).Error
}

// UpsertSnapshots: lote tudo-ou-nada, chaveado pelo nome do produto.
// Depende do unique index em snapshots.product para o overwrite funcionar.
func (s *Store) UpsertSnapshots(ctx context.Context, rows []models.Snapshot) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "as_of", "updated_at"}),
		}).Create(&rows).Error
	})
}
