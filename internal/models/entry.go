package models

import "time"

// Entry: entrada de stock. Liga ao produto pelo NOME (não pelo id);
// renomear um produto desliga o histórico, comportamento herdado da app original.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	Product   string    `gorm:"size:100;index;not null"`
	Quantity  float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"index;not null"` // atribuído na criação, não editável
	CreatedAt time.Time
}
