package progressbar

import (
	"errors"
	"fmt"
)

// Size selects one of the fixed presets.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Preset holds the pixel dimensions for a Size.
type Preset struct {
	Height  int // thickness of the filled bar
	Padding int // inset between track and bar
	Radius  int // corner radius of the track and clipping wrapper
}

// Large pads the bar by 4px, so its track radius grows to keep a 4px visual
// gap between the track corner and the bar's own 4px corner.
var presets = map[Size]Preset{
	Small:  {Height: 8, Padding: 0, Radius: 4},
	Medium: {Height: 12, Padding: 0, Radius: 4},
	Large:  {Height: 16, Padding: 4, Radius: 8},
}

// ErrUnknownSize is matched by every error returned for a size outside the
// preset table.
var ErrUnknownSize = errors.New("unknown size")

// UnknownSizeError reports the rejected size.
type UnknownSizeError struct {
	Size Size
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown size passed to ProgressBar: %q", string(e.Size))
}

// Is reports whether target is ErrUnknownSize.
func (e *UnknownSizeError) Is(target error) bool {
	return target == ErrUnknownSize
}

// Sizes returns every valid size, smallest first.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// LookupPreset returns the preset for size. There is no fallback preset.
func LookupPreset(size Size) (Preset, error) {
	p, ok := presets[size]
	if !ok {
		return Preset{}, &UnknownSizeError{Size: size}
	}
	return p, nil
}

// ParseSize converts user input such as a flag value into a Size.
func ParseSize(s string) (Size, error) {
	size := Size(s)
	if _, err := LookupPreset(size); err != nil {
		return "", err
	}
	return size, nil
}
