package dataset

import (
	"fmt"
	"testing"
	"testing/fstest"
)

func testFS(benign, malignant int, extras ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for i := 0; i < benign; i++ {
		fsys[fmt.Sprintf("benign/img_%03d.jpg", i)] = &fstest.MapFile{Data: []byte("x")}
	}
	for i := 0; i < malignant; i++ {
		fsys[fmt.Sprintf("malignant/img_%03d.png", i)] = &fstest.MapFile{Data: []byte("x")}
	}
	for _, name := range extras {
		fsys[name] = &fstest.MapFile{Data: []byte("x")}
	}
	return fsys
}

func TestInspect_CountsPerClass(t *testing.T) {
	ins, err := Inspect(testFS(8, 5))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if ins.Counts[ClassBenign] != 8 {
		t.Errorf("benign count = %d, want 8", ins.Counts[ClassBenign])
	}
	if ins.Counts[ClassMalignant] != 5 {
		t.Errorf("malignant count = %d, want 5", ins.Counts[ClassMalignant])
	}
	if ins.Total() != 13 {
		t.Errorf("Total() = %d, want 13", ins.Total())
	}
}

func TestInspect_SkipsNonImages(t *testing.T) {
	ins, err := Inspect(testFS(2, 2, "benign/notes.txt", "malignant/thumbs.db"))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if len(ins.Skipped) != 2 {
		t.Errorf("Skipped = %v, want 2 entries", ins.Skipped)
	}
	if ins.Total() != 4 {
		t.Errorf("Total() = %d, want 4", ins.Total())
	}
}

func TestInspect_MissingClassDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"benign/a.jpg": &fstest.MapFile{Data: []byte("x")},
	}

	if _, err := Inspect(fsys); err == nil {
		t.Error("Inspect() expected error for missing malignant directory")
	}
}

func TestInspect_EmptyClass(t *testing.T) {
	fsys := testFS(3, 0)
	fsys["malignant/readme.txt"] = &fstest.MapFile{Data: []byte("x")}

	if _, err := Inspect(fsys); err == nil {
		t.Error("Inspect() expected error for class with no images")
	}
}

func TestInspect_EntriesSorted(t *testing.T) {
	ins, err := Inspect(testFS(3, 3))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	for i := 1; i < len(ins.Entries); i++ {
		if ins.Entries[i-1].Path >= ins.Entries[i].Path {
			t.Fatalf("entries not sorted: %q before %q", ins.Entries[i-1].Path, ins.Entries[i].Path)
		}
	}
}

func TestSplit_Ratio(t *testing.T) {
	ins, err := Inspect(testFS(10, 10))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	train, validation := Split(ins.Entries, 0.2)

	if len(train) != 16 {
		t.Errorf("train size = %d, want 16", len(train))
	}
	if len(validation) != 4 {
		t.Errorf("validation size = %d, want 4", len(validation))
	}
}

func TestSplit_StratifiedByClass(t *testing.T) {
	ins, err := Inspect(testFS(10, 5))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	_, validation := Split(ins.Entries, 0.2)

	counts := map[string]int{}
	for _, e := range validation {
		counts[e.Class]++
	}

	if counts[ClassBenign] != 2 {
		t.Errorf("benign validation = %d, want 2", counts[ClassBenign])
	}
	if counts[ClassMalignant] != 1 {
		t.Errorf("malignant validation = %d, want 1", counts[ClassMalignant])
	}
}

func TestSplit_Deterministic(t *testing.T) {
	ins, err := Inspect(testFS(7, 9))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	train1, val1 := Split(ins.Entries, 0.2)
	train2, val2 := Split(ins.Entries, 0.2)

	if len(train1) != len(train2) || len(val1) != len(val2) {
		t.Fatal("split sizes differ between runs")
	}
	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("train[%d] differs: %v != %v", i, train1[i], train2[i])
		}
	}
	for i := range val1 {
		if val1[i] != val2[i] {
			t.Fatalf("validation[%d] differs: %v != %v", i, val1[i], val2[i])
		}
	}
}

func TestSplit_DisjointAndComplete(t *testing.T) {
	ins, err := Inspect(testFS(6, 4))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	train, validation := Split(ins.Entries, 0.2)

	seen := map[string]bool{}
	for _, e := range train {
		seen[e.Path] = true
	}
	for _, e := range validation {
		if seen[e.Path] {
			t.Fatalf("entry %q appears in both sets", e.Path)
		}
		seen[e.Path] = true
	}
	if len(seen) != ins.Total() {
		t.Errorf("split covers %d entries, want %d", len(seen), ins.Total())
	}
}
