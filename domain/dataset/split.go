package dataset

import "sort"

// Split partitions the entries into train and validation sets per class.
// Within each class, entries are taken in sorted path order and the last
// validationFraction of them form the validation set, mirroring how the
// directory loader derives its split from a single directory.
// The result is deterministic for a given directory content.
func Split(entries []Entry, validationFraction float64) (train, validation []Entry) {
	if validationFraction < 0 {
		validationFraction = 0
	}
	if validationFraction > 1 {
		validationFraction = 1
	}

	byClass := make(map[string][]Entry)
	for _, e := range entries {
		byClass[e.Class] = append(byClass[e.Class], e)
	}

	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		group := byClass[class]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Path < group[j].Path
		})

		nVal := int(float64(len(group)) * validationFraction)
		cut := len(group) - nVal

		train = append(train, group[:cut]...)
		validation = append(validation, group[cut:]...)
	}

	return train, validation
}
