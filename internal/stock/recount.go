package stock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cozinha-backend/internal/models"
)

type RecountState string

const (
	RecountIdle   RecountState = "idle"
	RecountStaged RecountState = "staged"
)

var (
	ErrRecountNotStaged = errors.New("inventário mensal não está iniciado")
	ErrNothingToCommit  = errors.New("sem valores válidos para gravar")
	ErrNothingParsed    = errors.New("não consegui ler nada do texto colado")
	ErrNegativesPending = errors.New("há discrepâncias negativas por confirmar")
)

// Discrepancy: contagem encostada ao stock TEÓRICO (vitalício). A baseline
// de alarme é sempre o teórico, não o ajustado.
type Discrepancy struct {
	Product     string  `json:"product"`
	Staged      float64 `json:"staged"`
	Theoretical float64 `json:"theoretical"`
	Diff        float64 `json:"diff"` // staged − teórico; negativo = contou-se menos do que o livro diz
}

type CommitResult struct {
	Committed     int `json:"committed"`
	NegativeCount int `json:"negative_count"`
}

// Recount: inventário mensal (rápido). Idle → Begin → Staged → Commit → Idle.
// O mapa de edição e o texto colado vivem só aqui, em memória, até confirmar;
// o commit sobrescreve a linha viva de inventário real de cada produto editado.
type Recount struct {
	svc   *Service
	store Store

	state  RecountState
	month  string            // YYYY-MM
	staged map[string]string // nome -> valor editável (texto, como o operador escreveu)
	paste  string
	filter string
}

func NewRecount(svc *Service, store Store) *Recount {
	return &Recount{svc: svc, store: store, state: RecountIdle}
}

func (r *Recount) State() RecountState { return r.state }
func (r *Recount) Month() string       { return r.month }

// Begin: abre a folha de contagem pré-preenchida com o inventário real atual
// (vazio para produtos nunca contados) e limpa colagem e pesquisa.
func (r *Recount) Begin(month string) {
	staged := make(map[string]string)
	for _, p := range r.svc.Products() {
		if snap, ok := r.svc.SnapshotOf(p.Name); ok {
			staged[p.Name] = FormatQuantity(snap.Quantity)
		} else {
			staged[p.Name] = ""
		}
	}
	r.staged = staged
	r.month = month
	r.paste = ""
	r.filter = ""
	r.state = RecountStaged
	r.svc.SetMonthContext(month)
}

// Cancel: fecha a folha sem gravar nada.
func (r *Recount) Cancel() {
	r.staged = nil
	r.paste = ""
	r.filter = ""
	r.state = RecountIdle
}

func (r *Recount) SetFilter(q string) { r.filter = q }
func (r *Recount) Filter() string     { return r.filter }

// StagedValue: valor em edição de um produto ("" = por contar).
func (r *Recount) StagedValue(name string) string {
	return r.staged[name]
}

// SetValue: edição direta de uma linha; a última escrita ganha.
func (r *Recount) SetValue(name, value string) error {
	if r.state != RecountStaged {
		return ErrRecountNotStaged
	}
	r.staged[name] = value
	return nil
}

// ApplyPastedText: funde uma lista colada na folha. Nomes que não existem no
// catálogo são devolvidos (aviso, não erro) e ficam de fora; os que existem
// sobrescrevem o valor em edição. Texto sem nenhuma linha legível é erro e
// não mexe em nada.
func (r *Recount) ApplyPastedText(text string) (unmatched []string, err error) {
	if r.state != RecountStaged {
		return nil, ErrRecountNotStaged
	}

	parsed := ParseInventoryText(text)
	if len(parsed) == 0 {
		return nil, ErrNothingParsed
	}
	r.paste = text

	known := make(map[string]bool)
	for _, p := range r.svc.Products() {
		known[p.Name] = true
	}

	for name, val := range parsed {
		if known[name] {
			r.staged[name] = FormatQuantity(val)
		} else {
			unmatched = append(unmatched, name)
		}
	}
	sort.Strings(unmatched)
	return unmatched, nil
}

// FillBlanksWithZero: produtos ainda por contar ficam a "0". Idempotente.
func (r *Recount) FillBlanksWithZero() error {
	if r.state != RecountStaged {
		return ErrRecountNotStaged
	}
	for _, p := range r.svc.Products() {
		if r.staged[p.Name] == "" {
			r.staged[p.Name] = "0"
		}
	}
	return nil
}

// Preview: discrepâncias negativas (contagem < teórico) do que está na folha,
// da mais negativa para a menos. É o que o operador tem de confirmar antes do
// commit. Sem efeitos secundários.
func (r *Recount) Preview() ([]Discrepancy, error) {
	if r.state != RecountStaged {
		return nil, ErrRecountNotStaged
	}
	rows := r.commitRows()
	return negatives(rows, r.svc.Theoretical()), nil
}

// Commit: grava a contagem. Linhas ilegíveis são descartadas (não é erro do
// lote); folha sem nenhuma linha válida é erro e nada muda. Havendo
// discrepâncias negativas o commit exige acknowledgeNegatives; recusar
// deixa tudo em Staged. O upsert é um lote único: se a escrita falhar, o
// estado em memória fica intacto e continua-se em Staged.
func (r *Recount) Commit(ctx context.Context, acknowledgeNegatives bool) (CommitResult, error) {
	if r.state != RecountStaged {
		return CommitResult{}, ErrRecountNotStaged
	}

	rows := r.commitRows()
	if len(rows) == 0 {
		return CommitResult{}, ErrNothingToCommit
	}

	negs := negatives(rows, r.svc.Theoretical())
	if len(negs) > 0 && !acknowledgeNegatives {
		return CommitResult{}, ErrNegativesPending
	}

	now := time.Now()
	snaps := make([]models.Snapshot, 0, len(rows))
	for _, row := range rows {
		asOf := now
		snaps = append(snaps, models.Snapshot{
			Product:  row.Product,
			Quantity: row.Staged,
			AsOf:     &asOf,
		})
	}

	if err := r.store.UpsertSnapshots(ctx, snaps); err != nil {
		return CommitResult{}, fmt.Errorf("gravar inventário mensal: %w", err)
	}

	r.staged = nil
	r.paste = ""
	r.filter = ""
	r.state = RecountIdle
	return CommitResult{Committed: len(snaps), NegativeCount: len(negs)}, nil
}

// commitRows: folha parseada, ordenada por nome, sem as linhas ilegíveis.
func (r *Recount) commitRows() []Discrepancy {
	var rows []Discrepancy
	for _, p := range r.svc.Products() {
		v, ok := ParseQuantity(r.staged[p.Name])
		if !ok {
			continue
		}
		rows = append(rows, Discrepancy{Product: p.Name, Staged: v})
	}
	return rows
}

func negatives(rows []Discrepancy, theoretical map[string]float64) []Discrepancy {
	var out []Discrepancy
	for _, row := range rows {
		teo := Num(theoretical[row.Product])
		diff := row.Staged - teo
		if diff < 0 {
			row.Theoretical = teo
			row.Diff = diff
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Diff < out[j].Diff })
	return out
}
