package facet

import "sort"

// Catalog is the closed set of trackable activities and their default point
// values. It is built once at startup and read-only afterwards, so it is
// safe to share across request handlers.
type Catalog struct {
	defaults map[string]int
	names    []string
}

// builtin facet defaults, used when no config file is supplied.
var builtin = map[string]int{
	"daily_quiet_time":     5,
	"team_call_attendance": 15,
	"daily_journaling":     2,
	"weekly_curriculum":    15,
	"bonus":                10,
	"check_in":             1,
}

func NewCatalog(defaults map[string]int) *Catalog {
	c := &Catalog{
		defaults: make(map[string]int, len(defaults)),
		names:    make([]string, 0, len(defaults)),
	}
	for name, points := range defaults {
		c.defaults[name] = points
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Has reports whether name is a known facet.
func (c *Catalog) Has(name string) bool {
	_, ok := c.defaults[name]
	return ok
}

// Default returns the configured point value for name.
func (c *Catalog) Default(name string) (int, bool) {
	points, ok := c.defaults[name]
	return points, ok
}

// Names returns the facet keys in ascending order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
