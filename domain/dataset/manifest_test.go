package dataset

import (
	"path/filepath"
	"testing"
)

func TestBuildManifest(t *testing.T) {
	ins, err := Inspect(testFS(10, 10))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	m := BuildManifest(ins, 0.2)

	if len(m.Train) != 16 {
		t.Errorf("Train size = %d, want 16", len(m.Train))
	}
	if len(m.Validation) != 4 {
		t.Errorf("Validation size = %d, want 4", len(m.Validation))
	}
	if m.Counts[ClassBenign] != 10 || m.Counts[ClassMalignant] != 10 {
		t.Errorf("Counts = %v", m.Counts)
	}
	if m.ValidationFraction != 0.2 {
		t.Errorf("ValidationFraction = %v, want 0.2", m.ValidationFraction)
	}
}

func TestManifest_WriteRead(t *testing.T) {
	ins, err := Inspect(testFS(5, 5, "benign/skip.txt"))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	m := BuildManifest(ins, 0.2)
	path := filepath.Join(t.TempDir(), "dataset_manifest.yaml")

	if err := m.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	loaded, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}

	if len(loaded.Train) != len(m.Train) {
		t.Errorf("Train size = %d, want %d", len(loaded.Train), len(m.Train))
	}
	if len(loaded.Validation) != len(m.Validation) {
		t.Errorf("Validation size = %d, want %d", len(loaded.Validation), len(m.Validation))
	}
	if len(loaded.Skipped) != 1 {
		t.Errorf("Skipped = %v, want 1 entry", loaded.Skipped)
	}
	for i := range m.Train {
		if loaded.Train[i] != m.Train[i] {
			t.Fatalf("Train[%d] = %q, want %q", i, loaded.Train[i], m.Train[i])
		}
	}
}

func TestReadManifest_Missing(t *testing.T) {
	if _, err := ReadManifest(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ReadManifest() expected error for missing file")
	}
}
