package stock

import "strings"

// CanonicalUnits: as sete unidades aceites na criação de produtos.
var CanonicalUnits = []string{"kg", "g", "l", "ml", "un", "cx", "pct"}

// NormalizeUnit: mapeia unidades escritas à mão para o token canónico.
// Valores desconhecidos passam como estão (minúsculas, sem espaços) para não
// partir dados antigos; vazio normaliza para vazio.
func NormalizeUnit(raw string) string {
	x := strings.ToLower(strings.TrimSpace(raw))
	switch x {
	case "":
		return ""
	case "kg", "kgs", "quilo", "quilos", "kg.", "kgs.":
		return "kg"
	case "g", "gr", "grama", "gramas", "g.":
		return "g"
	case "l", "lt", "lts", "litro", "litros", "l.":
		return "l"
	case "ml", "mls", "mililitro", "mililitros", "ml.":
		return "ml"
	case "un", "uni", "unidade", "unidades":
		return "un"
	case "cx", "caixa", "caixas":
		return "cx"
	case "pct", "pacote", "pacotes":
		return "pct"
	}
	return x
}
