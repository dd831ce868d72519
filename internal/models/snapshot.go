package models

import "time"

// Snapshot: inventário real, a última contagem física de um produto.
// Uma linha viva por produto (Product é unique); gravar uma nova contagem
// SOBRESCREVE a anterior, nunca acrescenta histórico.
type Snapshot struct {
	ID        uint       `gorm:"primaryKey"`
	Product   string     `gorm:"size:100;uniqueIndex;not null"`
	Quantity  float64    `gorm:"not null"`
	AsOf      *time.Time `gorm:"index"` // data da contagem; é o corte da reconciliação
	CreatedAt time.Time
	UpdatedAt time.Time
}
