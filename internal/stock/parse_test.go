package stock_test

import (
	"testing"

	"cozinha-backend/internal/stock"
)

func TestParseInventoryTextSeparators(t *testing.T) {
	cases := []struct {
		line string
		name string
		want float64
	}{
		{"Azeite; 3,5", "Azeite", 3.5},
		{"Sal\t2", "Sal", 2},
		{"Arroz: 12", "Arroz", 12},
		{"Farinha = 7,25", "Farinha", 7.25},
		{"Batata doce 12,5", "Batata doce", 12.5}, // último recurso: número no fim
		{"Cenoura; 2,5 kg", "Cenoura", 2.5},       // lixo depois da quantidade
		{"Vinagre;-1", "Vinagre", -1},
	}

	for _, tc := range cases {
		got := stock.ParseInventoryText(tc.line)
		if len(got) != 1 {
			t.Errorf("%q: esperava 1 linha lida, saíram %d", tc.line, len(got))
			continue
		}
		if got[tc.name] != tc.want {
			t.Errorf("%q: %s = %v, esperava %v", tc.line, tc.name, got[tc.name], tc.want)
		}
	}
}

func TestParseInventoryTextSkipsUnreadableLines(t *testing.T) {
	text := "Azeite; 3,5\r\n\n   \nisto não é uma linha válida\nSal; abc\nArroz\t10"

	got := stock.ParseInventoryText(text)
	if len(got) != 2 {
		t.Fatalf("esperava 2 linhas válidas, saíram %d: %v", len(got), got)
	}
	if got["Azeite"] != 3.5 || got["Arroz"] != 10 {
		t.Fatalf("valores errados: %v", got)
	}
}

func TestParseInventoryTextLastLineWins(t *testing.T) {
	got := stock.ParseInventoryText("Azeite; 3\nAzeite; 5")
	if got["Azeite"] != 5 {
		t.Fatalf("nome repetido: ganha a última linha, veio %v", got["Azeite"])
	}
}

func TestParseInventoryTextEmpty(t *testing.T) {
	if got := stock.ParseInventoryText(""); len(got) != 0 {
		t.Fatalf("texto vazio devia dar mapa vazio, veio %v", got)
	}
	if got := stock.ParseInventoryText("só palavras aqui"); len(got) != 0 {
		t.Fatalf("texto sem números devia dar mapa vazio, veio %v", got)
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"12,5", 12.5, true},
		{"12.5", 12.5, true},
		{"  7  ", 7, true},
		{"-3,25", -3.25, true},
		{"12,5 kg", 12.5, true},
		{"aprox 4", 4, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tc := range cases {
		got, ok := stock.ParseQuantity(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseQuantity(%q) = (%v, %v), esperava (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormatQuantityUsesCommaDecimal(t *testing.T) {
	if got := stock.FormatQuantity(12.5); got != "12,5" {
		t.Fatalf("FormatQuantity(12.5) = %q, esperava \"12,5\"", got)
	}
	if got := stock.FormatQuantity(7); got != "7" {
		t.Fatalf("FormatQuantity(7) = %q, esperava \"7\"", got)
	}
}

func TestFormatQuantityRoundTripsThroughParse(t *testing.T) {
	for _, v := range []float64{0, 1, 12.5, 0.25, 100} {
		got, ok := stock.ParseQuantity(stock.FormatQuantity(v))
		if !ok || got != v {
			t.Errorf("round-trip de %v falhou: (%v, %v)", v, got, ok)
		}
	}
}
