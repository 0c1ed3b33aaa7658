package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":                     "/",
		"/cars/":               "/cars/",
		"/cars/?model=1":       "/cars/?model=1",
		"cars/":                "/",
		"//evil.example/":      "/",
		`/\evil.example/`:      "/",
		"https://evil.example": "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeNext(in), in)
	}
}
