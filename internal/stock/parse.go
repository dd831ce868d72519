package stock

import (
	"regexp"
	"strings"
)

var trailingNumberRe = regexp.MustCompile(`^(.+?)\s+(-?\d+(?:[.,]\d+)?)`)

// ParseInventoryText: lê linhas coladas do tipo
//
//	"Produto; 12,5" | "Produto\t12,5" | "Produto: 12,5" | "Produto = 12,5"
//
// e, falhando os separadores, tenta o último recurso "nome  12,5". Linhas
// ilegíveis são simplesmente ignoradas; a quantidade pode trazer lixo no fim
// ("12,5 kg"). Nomes repetidos: a última linha ganha.
func ParseInventoryText(text string) map[string]float64 {
	out := make(map[string]float64)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		name, qty := splitInventoryLine(line)
		if name == "" {
			continue
		}
		v, ok := ParseQuantity(qty)
		if !ok {
			continue
		}
		out[name] = v
	}
	return out
}

func splitInventoryLine(line string) (name, qty string) {
	for _, sep := range []string{";", "\t", ":", "="} {
		parts := splitTrim(line, sep)
		if len(parts) >= 2 {
			// pode vir "12,5 kg" repartido; junta o resto
			return parts[0], strings.Join(parts[1:], " ")
		}
	}
	if m := trailingNumberRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return "", ""
}

func splitTrim(line, sep string) []string {
	var out []string
	for _, part := range strings.Split(line, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
