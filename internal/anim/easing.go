package anim

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
)

// Easing names accepted in settings and variant files
const (
	EasingLinear    = "linear"
	EasingEaseIn    = "ease-in"
	EasingEaseOut   = "ease-out"
	EasingEaseInOut = "ease-in-out"
)

var easings = map[string]fyne.AnimationCurve{
	EasingLinear:    fyne.AnimationLinear,
	EasingEaseIn:    fyne.AnimationEaseIn,
	EasingEaseOut:   fyne.AnimationEaseOut,
	EasingEaseInOut: fyne.AnimationEaseInOut,
}

// ParseEasing maps an easing name to its curve. Matching ignores case and surrounding space.
func ParseEasing(name string) (fyne.AnimationCurve, error) {
	curve, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (expected one of %s)", name, strings.Join(EasingNames(), ", "))
	}
	return curve, nil
}

// EasingNames returns the supported easing names in sorted order
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
