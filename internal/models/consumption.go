package models

import "time"

// Consumption: saída de stock registada pela equipa.
type Consumption struct {
	ID          uint      `gorm:"primaryKey"`
	Product     string    `gorm:"size:100;index;not null"`
	Quantity    float64   `gorm:"not null"`
	Timestamp   time.Time `gorm:"index;not null"`
	Responsible string    `gorm:"size:100"` // quem levou/registou
	Sector      string    `gorm:"size:50"`  // origem fixa ("Cozinha")
	CreatedAt   time.Time
}
