package catalog_test

import (
	"strings"
	"testing"

	"github.com/ChaseHampton/headstones/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmblemImagePath(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, ""},
		{1, "Emblems/emb-01.jpg"},
		{9, "Emblems/emb-09.jpg"},
		{10, "Emblems/emb-10.jpg"},
		{99, "Emblems/emb-99.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.EmblemImagePath(tt.code), "code %d", tt.code)
	}
}

func TestEmblems(t *testing.T) {
	emblems := catalog.Emblems()

	require.Len(t, emblems, 77)
	assert.Equal(t, "00", emblems[0].Code)
	assert.Empty(t, emblems[0].Image)
	assert.Equal(t, "00 - UNKNOWN", emblems[0].Label())
	assert.Equal(t, "03", emblems[3].Code)
	assert.Equal(t, "Emblems/emb-03.jpg", emblems[3].Image)
	assert.Equal(t, "99", emblems[len(emblems)-1].Code)
	for _, e := range emblems {
		assert.Len(t, e.Code, 2)
	}
}

func TestEmblems_ReturnsCopy(t *testing.T) {
	first := catalog.Emblems()
	first[1].Name = "CHANGED"

	assert.Equal(t, "CHRISTIAN CROSS", catalog.Emblems()[1].Name)
}

func TestJurisdictions(t *testing.T) {
	list := catalog.Jurisdictions()

	require.NotEmpty(t, list)
	assert.Equal(t, catalog.Jurisdiction{Abbr: "AL", Name: "ALABAMA"}, list[0])
	assert.Equal(t, catalog.Jurisdiction{Abbr: "WY", Name: "WYOMING"}, list[50])
	assert.Contains(t, list, catalog.Jurisdiction{Abbr: "US", Name: "UNITED STATES"})
	assert.Contains(t, list, catalog.Jurisdiction{Abbr: "CA", Name: "CALIFORNIA"})
	assert.Contains(t, list, catalog.Jurisdiction{Abbr: "CA", Name: "CANADA"})
	assert.Greater(t, len(list), 200)

	seen := make(map[catalog.Jurisdiction]bool)
	for _, j := range list {
		assert.Equal(t, strings.ToUpper(j.Name), j.Name)
		assert.Equal(t, strings.ToUpper(j.Abbr), j.Abbr)
		assert.False(t, seen[j], "duplicate %v", j)
		seen[j] = true
	}
}

func TestJurisdictions_Stable(t *testing.T) {
	a := catalog.Jurisdictions()
	a[0].Name = "CHANGED"

	assert.Equal(t, "ALABAMA", catalog.Jurisdictions()[0].Name)
	assert.Equal(t, len(a), len(catalog.Jurisdictions()))
}
