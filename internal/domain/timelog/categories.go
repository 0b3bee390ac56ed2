package timelog

import "strings"

// AddCategory appends name to the category list.
func AddCategory(cfg Configuration, name string) (Configuration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cfg, ErrInvalidInput
	}
	out := cfg.Clone()
	out.Categories = append(out.Categories, name)
	return out, nil
}

// RemoveCategory deletes the category at index.
func RemoveCategory(cfg Configuration, index int) (Configuration, error) {
	if index < 0 || index >= len(cfg.Categories) {
		return cfg, ErrInvalidInput
	}
	out := cfg.Clone()
	out.Categories = append(out.Categories[:index], out.Categories[index+1:]...)
	return out, nil
}

// RenameCategory replaces the label at index. Existing logs keep the old label.
func RenameCategory(cfg Configuration, index int, name string) (Configuration, error) {
	name = strings.TrimSpace(name)
	if name == "" || index < 0 || index >= len(cfg.Categories) {
		return cfg, ErrInvalidInput
	}
	out := cfg.Clone()
	out.Categories[index] = name
	return out, nil
}

// MoveCategory moves the category at from so that it ends up at index to.
func MoveCategory(cfg Configuration, from, to int) (Configuration, error) {
	n := len(cfg.Categories)
	if from < 0 || from >= n || to < 0 || to >= n {
		return cfg, ErrInvalidInput
	}
	out := cfg.Clone()
	moved := out.Categories[from]
	out.Categories = append(out.Categories[:from], out.Categories[from+1:]...)
	out.Categories = append(out.Categories[:to], append([]string{moved}, out.Categories[to:]...)...)
	return out, nil
}

// IndexOf returns the position of the first category equal to name, or -1.
func IndexOf(cfg Configuration, name string) int {
	for i, c := range cfg.Categories {
		if c == name {
			return i
		}
	}
	return -1
}
