package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cozinha-backend/internal/stock"
)

// Mundo base: três produtos, teóricos Arroz=10, Azeite=4, Sal=2; só o Arroz
// tem contagem física anterior (6 a 2024-02-01).
func newRecountWorld(t *testing.T) (*memStore, *stock.Service, *stock.Recount) {
	t.Helper()
	store := &memStore{}
	store.products = append(store.products,
		product("Arroz", "kg", 0, 0),
		product("Azeite", "l", 0, 0),
		product("Sal", "kg", 0, 0),
	)
	store.entries = append(store.entries,
		entryOn(t, "Arroz", 10, "2024-01-05"),
		entryOn(t, "Azeite", 4, "2024-01-06"),
		entryOn(t, "Sal", 2, "2024-01-07"),
	)
	store.snapshots = append(store.snapshots, snapshotOn(t, "Arroz", 6, "2024-02-01"))

	svc := stock.NewService(store)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return store, svc, stock.NewRecount(svc, store)
}

func TestBeginSeedsSheetFromSnapshots(t *testing.T) {
	_, svc, rec := newRecountWorld(t)

	rec.Begin("2024-03")
	if rec.State() != stock.RecountStaged {
		t.Fatalf("estado = %v, esperava staged", rec.State())
	}
	if got := rec.StagedValue("Arroz"); got != "6" {
		t.Fatalf("Arroz devia vir pré-preenchido com \"6\", veio %q", got)
	}
	if got := rec.StagedValue("Azeite"); got != "" {
		t.Fatalf("Azeite nunca foi contado, devia vir vazio, veio %q", got)
	}
	if svc.MonthContext() != "2024-03" {
		t.Fatalf("Begin devia selecionar o mês no serviço, veio %q", svc.MonthContext())
	}
}

func TestIdleRecountRejectsEverything(t *testing.T) {
	_, _, rec := newRecountWorld(t)

	if err := rec.SetValue("Arroz", "5"); !errors.Is(err, stock.ErrRecountNotStaged) {
		t.Fatalf("SetValue em idle: %v", err)
	}
	if _, err := rec.ApplyPastedText("Arroz; 5"); !errors.Is(err, stock.ErrRecountNotStaged) {
		t.Fatalf("ApplyPastedText em idle: %v", err)
	}
	if err := rec.FillBlanksWithZero(); !errors.Is(err, stock.ErrRecountNotStaged) {
		t.Fatalf("FillBlanksWithZero em idle: %v", err)
	}
	if _, err := rec.Preview(); !errors.Is(err, stock.ErrRecountNotStaged) {
		t.Fatalf("Preview em idle: %v", err)
	}
	if _, err := rec.Commit(context.Background(), true); !errors.Is(err, stock.ErrRecountNotStaged) {
		t.Fatalf("Commit em idle: %v", err)
	}
}

func TestApplyPastedTextMergesAndReportsUnmatched(t *testing.T) {
	_, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")

	unmatched, err := rec.ApplyPastedText("Azeite; 3,5\nFantasma; 9\nOutro; 1")
	if err != nil {
		t.Fatalf("ApplyPastedText: %v", err)
	}
	if len(unmatched) != 2 || unmatched[0] != "Fantasma" || unmatched[1] != "Outro" {
		t.Fatalf("desconhecidos = %v, esperava [Fantasma Outro]", unmatched)
	}
	if got := rec.StagedValue("Azeite"); got != "3,5" {
		t.Fatalf("Azeite devia passar a \"3,5\", veio %q", got)
	}
	// linhas do colado não mexem no resto da folha
	if got := rec.StagedValue("Arroz"); got != "6" {
		t.Fatalf("Arroz não devia mudar, veio %q", got)
	}
}

func TestApplyPastedTextNothingParsedLeavesSheetAlone(t *testing.T) {
	_, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")

	if _, err := rec.ApplyPastedText("nada de jeito aqui"); !errors.Is(err, stock.ErrNothingParsed) {
		t.Fatalf("esperava ErrNothingParsed, veio %v", err)
	}
	if got := rec.StagedValue("Arroz"); got != "6" {
		t.Fatalf("colagem falhada não devia mexer na folha, Arroz = %q", got)
	}
}

func TestFillBlanksWithZeroIsIdempotent(t *testing.T) {
	_, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")

	if err := rec.FillBlanksWithZero(); err != nil {
		t.Fatalf("FillBlanksWithZero: %v", err)
	}
	if got := rec.StagedValue("Azeite"); got != "0" {
		t.Fatalf("Azeite devia passar a \"0\", veio %q", got)
	}
	if got := rec.StagedValue("Arroz"); got != "6" {
		t.Fatalf("valores preenchidos não mudam, Arroz = %q", got)
	}

	if err := rec.FillBlanksWithZero(); err != nil {
		t.Fatalf("segunda passagem: %v", err)
	}
	if got := rec.StagedValue("Azeite"); got != "0" {
		t.Fatalf("segunda passagem mudou o Azeite para %q", got)
	}
}

func TestPreviewNegativesSortedMostNegativeFirst(t *testing.T) {
	_, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")

	// Arroz 10→3 (−7), Sal 2→1 (−1), Azeite 4→4 (zero, fica de fora).
	rec.SetValue("Arroz", "3")
	rec.SetValue("Sal", "1")
	rec.SetValue("Azeite", "4")

	negs, err := rec.Preview()
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(negs) != 2 {
		t.Fatalf("esperava 2 discrepâncias negativas, vieram %d: %v", len(negs), negs)
	}
	if negs[0].Product != "Arroz" || negs[0].Diff != -7 {
		t.Fatalf("primeira devia ser a mais negativa (Arroz, -7), veio %+v", negs[0])
	}
	if negs[1].Product != "Sal" || negs[1].Diff != -1 {
		t.Fatalf("segunda devia ser (Sal, -1), veio %+v", negs[1])
	}
}

func TestCommitRequiresAcknowledgingNegatives(t *testing.T) {
	store, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")
	rec.SetValue("Arroz", "3")

	if _, err := rec.Commit(context.Background(), false); !errors.Is(err, stock.ErrNegativesPending) {
		t.Fatalf("esperava ErrNegativesPending, veio %v", err)
	}
	if rec.State() != stock.RecountStaged {
		t.Fatalf("recusa devia manter a folha aberta, estado = %v", rec.State())
	}
	if store.snapshotOf(t, "Arroz").Quantity != 6 {
		t.Fatal("recusa não devia ter escrito nada no registo")
	}

	res, err := rec.Commit(context.Background(), true)
	if err != nil {
		t.Fatalf("Commit confirmado: %v", err)
	}
	if res.NegativeCount != 1 {
		t.Fatalf("NegativeCount = %d, esperava 1", res.NegativeCount)
	}
}

func TestCommitOverwritesLiveSnapshots(t *testing.T) {
	store, _, rec := newRecountWorld(t)
	before := time.Now()

	rec.Begin("2024-03")
	rec.SetValue("Arroz", "12")
	rec.SetValue("Azeite", "5")
	rec.SetValue("Sal", "2,5")

	res, err := rec.Commit(context.Background(), true)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if res.Committed != 3 {
		t.Fatalf("Committed = %d, esperava 3", res.Committed)
	}
	if rec.State() != stock.RecountIdle {
		t.Fatalf("depois do commit o estado devia voltar a idle, veio %v", rec.State())
	}

	arroz := store.snapshotOf(t, "Arroz")
	if arroz.Quantity != 12 {
		t.Fatalf("Arroz = %v, esperava 12 (linha viva sobrescrita)", arroz.Quantity)
	}
	if arroz.AsOf == nil || arroz.AsOf.Before(before) {
		t.Fatalf("AsOf devia ser o momento do commit, veio %v", arroz.AsOf)
	}
	if store.snapshotOf(t, "Sal").Quantity != 2.5 {
		t.Fatal("Sal devia ganhar uma linha nova com 2,5")
	}
	if len(store.snapshots) != 3 {
		t.Fatalf("uma linha viva por produto: há %d", len(store.snapshots))
	}
}

func TestCommitDropsUnreadableRows(t *testing.T) {
	store, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")
	rec.SetValue("Arroz", "15")
	rec.SetValue("Azeite", "não sei")
	// Sal fica por contar ("")

	res, err := rec.Commit(context.Background(), true)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if res.Committed != 1 {
		t.Fatalf("só o Arroz era legível; Committed = %d", res.Committed)
	}
	if len(store.snapshots) != 1 {
		t.Fatalf("linhas ilegíveis não geram inventário; há %d", len(store.snapshots))
	}
}

func TestCommitWithNothingReadable(t *testing.T) {
	_, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")
	rec.SetValue("Arroz", "") // limpa o pré-preenchido

	if _, err := rec.Commit(context.Background(), true); !errors.Is(err, stock.ErrNothingToCommit) {
		t.Fatalf("esperava ErrNothingToCommit, veio %v", err)
	}
	if rec.State() != stock.RecountStaged {
		t.Fatalf("folha devia continuar aberta, estado = %v", rec.State())
	}
}

func TestCommitStoreFailureKeepsSheetStaged(t *testing.T) {
	store, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")
	rec.SetValue("Arroz", "12")
	store.failUpsert = true

	if _, err := rec.Commit(context.Background(), true); err == nil {
		t.Fatal("esperava erro do registo")
	}
	if rec.State() != stock.RecountStaged {
		t.Fatalf("falha da escrita devia manter staged, veio %v", rec.State())
	}
	if got := rec.StagedValue("Arroz"); got != "12" {
		t.Fatalf("a folha devia ficar intacta, Arroz = %q", got)
	}

	// reparado o registo, o mesmo commit passa
	store.failUpsert = false
	if _, err := rec.Commit(context.Background(), true); err != nil {
		t.Fatalf("commit depois da recuperação: %v", err)
	}
	if store.snapshotOf(t, "Arroz").Quantity != 12 {
		t.Fatal("commit repetido devia gravar o mesmo valor")
	}
}

func TestCancelDiscardsSheet(t *testing.T) {
	store, _, rec := newRecountWorld(t)
	rec.Begin("2024-03")
	rec.SetValue("Arroz", "99")

	rec.Cancel()
	if rec.State() != stock.RecountIdle {
		t.Fatalf("estado = %v, esperava idle", rec.State())
	}
	if store.snapshotOf(t, "Arroz").Quantity != 6 {
		t.Fatal("cancelar não devia tocar no registo")
	}
}
