// Package search turns list-page query parameters into case-insensitive substring filters.
package search

import (
	"net/url"
	"strings"
)

// Query parameter keys understood by the list pages.
const (
	KeyName         = "name"
	KeyModel        = "model"
	KeyManufacturer = "manufacturer"
	KeyUsername     = "username"
)

// Filter is one substring condition. A blank Query matches everything.
// Query keeps the submitted text; matching uses it with surrounding spaces removed.
type Filter struct {
	Key   string `json:"key"`
	Query string `json:"query"`
}

func (f Filter) term() string {
	return strings.TrimSpace(f.Query)
}

// Active reports whether the filter restricts anything.
func (f Filter) Active() bool {
	return f.term() != ""
}

// Match reports whether value contains the query, ignoring case.
func (f Filter) Match(value string) bool {
	if !f.Active() {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(f.term()))
}

// Pattern is the escaped LIKE pattern for the query, to be used with ESCAPE '\'.
func (f Filter) Pattern() string {
	return "%" + EscapeLike(f.term()) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes LIKE wildcards in s match literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Criteria is the set of filters for one list page, combined with AND.
type Criteria struct {
	Filters []Filter `json:"filters"`
}

// Get returns the filter for key, or an inactive one.
func (c Criteria) Get(key string) Filter {
	for _, f := range c.Filters {
		if f.Key == key {
			return f
		}
	}
	return Filter{Key: key}
}

// Value is the submitted text for key, echoed back into the search box.
func (c Criteria) Value(key string) string {
	return c.Get(key).Query
}

// Active returns only the filters that restrict the result.
func (c Criteria) Active() []Filter {
	var active []Filter
	for _, f := range c.Filters {
		if f.Active() {
			active = append(active, f)
		}
	}
	return active
}

// Values encodes the active filters so pagination links keep the search.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	for _, f := range c.Active() {
		v.Set(f.Key, f.Query)
	}
	return v
}

// Echo maps every key to its submitted text, including empty ones.
func (c Criteria) Echo() map[string]string {
	out := make(map[string]string, len(c.Filters))
	for _, f := range c.Filters {
		out[f.Key] = f.Query
	}
	return out
}

func parse(q url.Values, keys ...string) Criteria {
	c := Criteria{Filters: make([]Filter, 0, len(keys))}
	for _, key := range keys {
		c.Filters = append(c.Filters, Filter{Key: key, Query: q.Get(key)})
	}
	return c
}

// Manufacturers reads the manufacturer list search (`name`).
func Manufacturers(q url.Values) Criteria {
	return parse(q, KeyName)
}

// Cars reads the car list search (`model`, plus `manufacturer` by maker name).
func Cars(q url.Values) Criteria {
	return parse(q, KeyModel, KeyManufacturer)
}

// Drivers reads the driver list search (`username`).
func Drivers(q url.Values) Criteria {
	return parse(q, KeyUsername)
}
