package collide

import (
	"fmt"
	"strings"
)

// Detail selects how much collision geometry is generated.
type Detail int

const (
	None Detail = iota
	Exact
	HalfScale
	ThirdScale
	QuarterScale
)

var detailNames = map[Detail][]string{
	None:         {"none"},
	Exact:        {"exact", "full"},
	HalfScale:    {"half", "halfscale"},
	ThirdScale:   {"third", "thirdscale"},
	QuarterScale: {"quarter", "quarterscale"},
}

// Valid reports whether d is one of the named details.
func (d Detail) Valid() bool {
	_, ok := detailNames[d]
	return ok
}

// Factor returns the reduction factor; 0 for None.
func (d Detail) Factor() int {
	switch d {
	case Exact:
		return 1
	case HalfScale:
		return 2
	case ThirdScale:
		return 3
	case QuarterScale:
		return 4
	}
	return 0
}

func (d Detail) String() string {
	if n, ok := detailNames[d]; ok {
		return n[0]
	}
	return fmt.Sprintf("Detail(%d)", int(d))
}

// ParseDetail accepts the short names ("none", "exact", "half", "third",
// "quarter") and the enum names, case-insensitively.
func ParseDetail(s string) (Detail, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, names := range detailNames {
		for _, n := range names {
			if s == n {
				return d, nil
			}
		}
	}
	return None, fmt.Errorf("unknown collider detail %q", s)
}

func (d Detail) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Detail) UnmarshalText(b []byte) error {
	v, err := ParseDetail(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
