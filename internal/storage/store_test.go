package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/avetk/ladsyn/internal/synth"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ladder := &synth.Ladder{
		Z:    []string{"1", "s/2"},
		Y:    []string{"s/2"},
		Kind: synth.KindFirstSection,
	}

	runID, err := st.Save([]float64{3, 4, 1}, []float64{0, 2, 1}, ladder)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != synth.KindFirstSection {
		t.Errorf("expected kind %s, got %s", synth.KindFirstSection, meta.Kind)
	}
	if meta.SeriesCount != 2 || meta.ShuntCount != 1 {
		t.Errorf("expected counts 2/1, got %d/%d", meta.SeriesCount, meta.ShuntCount)
	}

	z, y, err := st.LoadTokens(runID)
	if err != nil {
		t.Fatalf("load tokens failed: %v", err)
	}
	if !reflect.DeepEqual(z, ladder.Z) {
		t.Errorf("expected Z %v, got %v", ladder.Z, z)
	}
	if !reflect.DeepEqual(y, ladder.Y) {
		t.Errorf("expected Y %v, got %v", ladder.Y, y)
	}
}

func TestTokenFileFormat(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ladder := &synth.Ladder{Z: []string{"s", "s"}, Y: []string{"1"}, Kind: synth.KindCauerI}
	runID, err := st.Save([]float64{0, 1}, []float64{1}, ladder)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, runID, "Z.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "s,s\n" {
		t.Errorf("expected single comma-joined line, got %q", string(data))
	}
}

func TestLoadTokensEmptyBranch(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ladder := &synth.Ladder{Z: []string{"s"}, Kind: synth.KindCauerI}
	runID, err := st.Save([]float64{0, 1}, []float64{1}, ladder)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, y, err := st.LoadTokens(runID)
	if err != nil {
		t.Fatalf("load tokens failed: %v", err)
	}
	if len(y) != 0 {
		t.Errorf("expected empty Y branch, got %v", y)
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("net_0"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	ladder := &synth.Ladder{Z: []string{"s"}, Kind: synth.KindCauerI}
	if _, err := st.Save([]float64{0, 1}, []float64{1}, ladder); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}
