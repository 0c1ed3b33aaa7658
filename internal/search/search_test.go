package search_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxi_service/internal/search"
)

func TestFilterMatch(t *testing.T) {
	t.Parallel()

	f := search.Filter{Key: search.KeyModel, Query: "TEST"}
	assert.True(t, f.Match("Test model 1"))
	assert.True(t, f.Match("my test"))
	assert.False(t, f.Match("Tes"))

	empty := search.Filter{Key: search.KeyModel}
	assert.False(t, empty.Active())
	assert.True(t, empty.Match("anything"))
	assert.True(t, empty.Match(""))
}

func TestBlankQueryIsInactive(t *testing.T) {
	t.Parallel()

	blank := search.Filter{Key: search.KeyName, Query: "  "}
	assert.False(t, blank.Active())
	assert.True(t, blank.Match("BMW"))

	padded := search.Filter{Key: search.KeyName, Query: " bm "}
	assert.True(t, padded.Active())
	assert.True(t, padded.Match("BMW"))
	assert.Equal(t, "%bm%", padded.Pattern())

	c := search.Manufacturers(url.Values{"name": {" "}})
	assert.Empty(t, c.Active())
	assert.Equal(t, " ", c.Value(search.KeyName))
}

func TestFilterPatternEscapesWildcards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%abc%", search.Filter{Query: "abc"}.Pattern())
	assert.Equal(t, `%50\%\_off\\%`, search.Filter{Query: `50%_off\`}.Pattern())
}

func TestCriteriaFromQuery(t *testing.T) {
	t.Parallel()

	t.Run("absent parameter means no filtering", func(t *testing.T) {
		t.Parallel()
		c := search.Manufacturers(url.Values{})
		assert.Empty(t, c.Active())
		assert.Equal(t, "", c.Value(search.KeyName))
		assert.Empty(t, c.Values())
	})

	t.Run("query text is echoed unchanged", func(t *testing.T) {
		t.Parallel()
		c := search.Drivers(url.Values{"username": {" Mixed Case "}})
		assert.Equal(t, " Mixed Case ", c.Value(search.KeyUsername))
		assert.Equal(t, map[string]string{"username": " Mixed Case "}, c.Echo())
	})

	t.Run("cars combine model and manufacturer", func(t *testing.T) {
		t.Parallel()
		c := search.Cars(url.Values{"model": {"1"}, "manufacturer": {"bmw"}, "page": {"2"}})
		assert.Len(t, c.Active(), 2)
		assert.Equal(t, "1", c.Get(search.KeyModel).Query)
		assert.Equal(t, "bmw", c.Get(search.KeyManufacturer).Query)
		assert.Equal(t, "manufacturer=bmw&model=1", c.Values().Encode())
	})

	t.Run("unknown key is inactive", func(t *testing.T) {
		t.Parallel()
		c := search.Cars(url.Values{"model": {"x"}})
		assert.False(t, c.Get(search.KeyUsername).Active())
	})
}
