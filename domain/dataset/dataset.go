// Package dataset handles the labeled training-image directory layout.
//
// The layout contract is a single directory with exactly two class
// subdirectories, benign/ and malignant/, from which the train/validation
// split is derived; there is no separate held-out directory.
package dataset

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// The two classes of the binary classifier. Malignant is the positive class.
const (
	ClassBenign    = "benign"
	ClassMalignant = "malignant"
)

// Classes lists the class subdirectories in label order.
var Classes = []string{ClassBenign, ClassMalignant}

// imageExtensions are the file types accepted as training images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Entry is a single labeled image.
type Entry struct {
	// Path is the image path relative to the dataset root.
	Path string
	// Class is the label taken from the containing subdirectory.
	Class string
}

// Inspection is the result of scanning a dataset directory.
type Inspection struct {
	// Entries lists every accepted image, sorted by path.
	Entries []Entry
	// Counts maps class name to accepted image count.
	Counts map[string]int
	// Skipped lists files inside class directories that are not images.
	Skipped []string
}

// Inspect scans the dataset root and validates the two-class layout.
// Both class subdirectories must exist; empty classes are reported as errors
// since the trainer cannot fit a binary classifier without both.
func Inspect(fsys fs.FS) (*Inspection, error) {
	ins := &Inspection{Counts: make(map[string]int)}

	for _, class := range Classes {
		entries, err := fs.ReadDir(fsys, class)
		if err != nil {
			return nil, fmt.Errorf("dataset is missing the %q class directory: %w", class, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := path.Join(class, entry.Name())
			if !imageExtensions[strings.ToLower(path.Ext(entry.Name()))] {
				ins.Skipped = append(ins.Skipped, name)
				continue
			}
			ins.Entries = append(ins.Entries, Entry{Path: name, Class: class})
			ins.Counts[class]++
		}

		if ins.Counts[class] == 0 {
			return nil, fmt.Errorf("dataset class %q contains no images", class)
		}
	}

	sort.Slice(ins.Entries, func(i, j int) bool {
		return ins.Entries[i].Path < ins.Entries[j].Path
	})
	sort.Strings(ins.Skipped)

	return ins, nil
}

// Total returns the total number of accepted images.
func (i *Inspection) Total() int {
	return len(i.Entries)
}
