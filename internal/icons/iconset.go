package icons

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// IconSet is a storage for icons.
//
// It has the nice feature that it always returns icons of the same
// terminal width: the cell width of every icon is measured and shorter
// ones are padded with spaces.
type IconSet[K comparable] struct {
	icons map[K]string
	width int
}

// NewIconSet builds an IconSet from an initial key → glyph mapping and
// computes its width immediately.
func NewIconSet[K comparable](icons map[K]string) *IconSet[K] {
	s := &IconSet[K]{icons: icons}
	s.width = s.computeWidth()
	return s
}

// computeWidth returns the maximum cell width over all icons in the set.
func (s *IconSet[K]) computeWidth() int {
	maximum := 0
	for _, icon := range s.icons {
		if w := runewidth.StringWidth(icon); w > maximum {
			maximum = w
		}
	}
	return maximum
}

// Width returns the fixed display width every Get result occupies.
func (s *IconSet[K]) Width() int {
	return s.width
}

// Add inserts or overwrites an icon and recomputes the set's width.
func (s *IconSet[K]) Add(key K, icon string) {
	s.icons[key] = icon
	s.width = s.computeWidth()
}

// pad stretches icon to the set's width with symmetric spaces, the extra
// column (if any) going on the left. An icon wider than the set means the
// static tables are broken, which is a panic, not an error to handle.
func (s *IconSet[K]) pad(icon string) string {
	toAdd := s.width - runewidth.StringWidth(icon)
	if toAdd < 0 {
		panic(fmt.Sprintf("icon %q is wider than its IconSet's width %d", icon, s.width))
	}
	if toAdd == 0 {
		return icon
	}

	right := toAdd / 2
	left := toAdd - right
	return strings.Repeat(" ", left) + icon + strings.Repeat(" ", right)
}

// GetDefault returns a placeholder icon of the correct width.
func (s *IconSet[K]) GetDefault() string {
	icon := ""
	if s.width == 1 {
		icon = "?"
	} else if s.width > 1 {
		icon = "❔"
	}
	return s.pad(icon)
}

// Get returns the padded icon for key, or a padded default when the key
// is absent. It never fails.
func (s *IconSet[K]) Get(key K) string {
	icon, ok := s.icons[key]
	if !ok {
		return s.GetDefault()
	}
	return s.pad(icon)
}

// Lookup returns the padded icon for key, with no default substitution:
// absence is reported through ok so callers can tell "no icon" apart
// from "icon happens to equal the default".
func (s *IconSet[K]) Lookup(key K) (icon string, ok bool) {
	icon, ok = s.icons[key]
	if !ok {
		return "", false
	}
	return s.pad(icon), true
}
