package level

import "fmt"

// ID identifies one of the campaign levels.
type ID int

const (
	One ID = iota
	Two
	Three
	Four
)

// All lists every level in campaign order.
var All = []ID{One, Two, Three, Four}

var names = [...]string{"one", "two", "three", "four"}

// String returns the level key used in the configuration file.
func (id ID) String() string {
	if id < 0 || int(id) >= len(names) {
		return fmt.Sprintf("level(%d)", int(id))
	}
	return names[id]
}

// ParseID converts a configuration key into an ID.
func ParseID(s string) (ID, error) {
	for i, n := range names {
		if n == s {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("level: unknown level %q", s)
}
