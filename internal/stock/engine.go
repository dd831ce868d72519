package stock

import (
	"time"

	"cozinha-backend/internal/models"
)

// Sem contagem física e sem mês selecionado, o corte recua até ao epoch.
const epochCutoff = "1970-01-01"

// TheoreticalStock: soma vitalícia de entradas menos saídas por produto.
// Ignora qualquer contagem física e não depende da ordem dos registos.
func TheoreticalStock(entries []models.Entry, consumptions []models.Consumption) map[string]float64 {
	inv := make(map[string]float64)
	for _, e := range entries {
		inv[e.Product] += Num(e.Quantity)
	}
	for _, s := range consumptions {
		inv[s.Product] -= Num(s.Quantity)
	}
	return inv
}

// AdjustedStock: stock atual = última contagem física + movimentos datados no
// dia da contagem ou depois. A comparação é só por data (YYYY-MM-DD), pelo que
// movimentos do próprio dia da contagem contam duas vezes, limitação
// conhecida herdada da app original, mantida de propósito.
//
// Produtos sem contagem partem de 0 com corte no primeiro dia de monthContext
// ("2024-03" -> "2024-03-01") ou, sem mês, no epoch.
func AdjustedStock(products []models.Product, snapshots []models.Snapshot, entries []models.Entry, consumptions []models.Consumption, monthContext string) map[string]float64 {
	snapByName := make(map[string]models.Snapshot, len(snapshots))
	for _, s := range snapshots {
		snapByName[s.Product] = s
	}

	out := make(map[string]float64, len(products))
	for _, p := range products {
		base := 0.0
		cutoff := monthCutoff(monthContext)
		if snap, ok := snapByName[p.Name]; ok {
			base = Num(snap.Quantity)
			if snap.AsOf != nil {
				cutoff = dateOnly(*snap.AsOf)
			}
		}

		total := base
		for _, e := range entries {
			if e.Product == p.Name && dateOnly(e.Timestamp) >= cutoff {
				total += Num(e.Quantity)
			}
		}
		for _, s := range consumptions {
			if s.Product == p.Name && dateOnly(s.Timestamp) >= cutoff {
				total -= Num(s.Quantity)
			}
		}
		out[p.Name] = total
	}
	return out
}

// BelowMinimum: produtos com stock atual abaixo do mínimo configurado.
func BelowMinimum(products []models.Product, adjusted map[string]float64) []models.Product {
	var out []models.Product
	for _, p := range products {
		if Num(adjusted[p.Name]) < Num(p.Minimum) {
			out = append(out, p)
		}
	}
	return out
}

// TotalValue: valor total do stock (stock atual × preço unitário).
func TotalValue(products []models.Product, adjusted map[string]float64) float64 {
	total := 0.0
	for _, p := range products {
		total += Num(adjusted[p.Name]) * Num(p.UnitPrice)
	}
	return total
}

func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthCutoff(month string) string {
	if len(month) == 7 && month[4] == '-' {
		return month + "-01"
	}
	return epochCutoff
}
