package models

import "time"

type Product struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:100;not null;unique"` // chave de negócio: entradas/saídas/inventário ligam pelo nome
	Unit       string  `gorm:"size:20;not null"`         // kg, g, l, ml, un, cx, pct
	Provenance string  `gorm:"size:100"`                 // procedência (fornecedor/origem); vazio = "Sem procedência"
	Minimum    float64 `gorm:"not null;default:0"`       // stock mínimo para avisos
	UnitPrice  float64 `gorm:"not null;default:0"`       // preço unitário (€)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
