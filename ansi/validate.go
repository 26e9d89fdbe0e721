package ansi

import "strconv"

// Valid range shared by 256-color palette indices and RGB channel values.
const (
	minComponent = 0
	maxComponent = 255
)

// ValidateIndex256 checks that index addresses a slot in the 256-color
// palette. It returns the index unchanged on success and a RangeError
// otherwise.
func ValidateIndex256(index int) (int, error) {
	if index < minComponent || index > maxComponent {
		return 0, &RangeError{Name: "color index", Value: index, Min: minComponent, Max: maxComponent}
	}
	return index, nil
}

// ValidateChannel checks a single RGB channel value. name identifies the
// channel ("red", "green", "blue") in the error detail.
func ValidateChannel(name string, value int) (int, error) {
	if value < minComponent || value > maxComponent {
		return 0, &RangeError{Name: name, Value: value, Min: minComponent, Max: maxComponent}
	}
	return value, nil
}

// Foreground256 returns the code selecting palette slot index for the
// foreground, using the two-part 38;5;n form.
func Foreground256(index int) (Code, error) {
	idx, err := ValidateIndex256(index)
	if err != nil {
		return Code{}, err
	}
	return newCode(KindForeground, "38;5;"+strconv.Itoa(idx)), nil
}

// Background256 returns the code selecting palette slot index for the
// background, using the two-part 48;5;n form.
func Background256(index int) (Code, error) {
	idx, err := ValidateIndex256(index)
	if err != nil {
		return Code{}, err
	}
	return newCode(KindBackground, "48;5;"+strconv.Itoa(idx)), nil
}
