package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/ticket_storefront/internal/adapter/catalog"
)

const sample = `
events:
  - id: "1"
    title: Summer Jazz Festival
    date: "2026-07-15"
    location: Oslo
    price: "49.99"
    thumbnail: jazz.jpg
    description: Three stages of jazz.
  - id: "2"
    title: Tech Conference
    date: "2026-09-10T09:00:00Z"
    location: Berlin
    price: "199"
`

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte(sample))
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Summer Jazz Festival", all[0].Title)
	assert.Equal(t, "49.99", all[0].Price.String())
	assert.Equal(t, 2026, all[0].Date.Year())

	e, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Berlin", e.Location)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestParse_RejectsBadEntries(t *testing.T) {
	tests := map[string]string{
		"bad price":    "events:\n  - id: a\n    price: free\n    date: 2026-01-01\n",
		"negative":     "events:\n  - id: a\n    price: \"-1\"\n    date: 2026-01-01\n",
		"bad date":     "events:\n  - id: a\n    price: \"1\"\n    date: tomorrow\n",
		"missing id":   "events:\n  - title: x\n    price: \"1\"\n    date: 2026-01-01\n",
		"duplicate id": "events:\n  - id: a\n    price: \"1\"\n    date: 2026-01-01\n  - id: a\n    price: \"2\"\n    date: 2026-01-01\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
