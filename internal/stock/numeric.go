package stock

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Num: coerção numérica defensiva. NaN e ±Inf degradam para 0 em vez de
// contaminar somas e comparações; todo o motor passa por aqui.
func Num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

var numTokenRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// ParseQuantity: extrai o primeiro número de texto livre ("12,5 kg" -> 12.5).
// Aceita vírgula ou ponto como separador decimal; o resto da linha é ignorado.
func ParseQuantity(raw string) (float64, bool) {
	m := numTokenRe.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatQuantity: representação editável de uma quantidade, com vírgula
// decimal (visual PT, como a app original gravava nos campos de edição).
func FormatQuantity(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(Num(v), 'f', -1, 64), ".", ",")
}
