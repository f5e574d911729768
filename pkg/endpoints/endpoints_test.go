package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapStorage map[string]string

func (m mapStorage) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestProviderEndpoint(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		actual := ProviderEndpoint("http://localhost:1323/api", "c1", "p1")
		assert.Equal(t, "http://localhost:1323/api/customers/c1/providers/p1", actual)
	})

	t.Run("values are passed through verbatim", func(t *testing.T) {
		cases := []struct{ root, customer, provider string }{
			{"", "", ""},
			{"/api/", "a b", "x/y"},
			{"https://yw", "null", "7c9ab1e0"},
		}
		for _, c := range cases {
			expected := c.root + "/customers/" + c.customer + "/providers/" + c.provider
			assert.Equal(t, expected, ProviderEndpoint(c.root, c.customer, c.provider))
		}
	})
}

func TestProvidersEndpoint(t *testing.T) {
	assert.Equal(t, "/api/customers/c1/providers", ProvidersEndpoint("/api", "c1"))
	assert.Equal(t, "/api/customers/c1", CustomerEndpoint("/api", "c1"))
}

func TestCustomerID(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		assert.Equal(t, "c1", CustomerID(mapStorage{CustomerIDKey: "c1"}))
	})

	t.Run("absent renders placeholder", func(t *testing.T) {
		customerID := CustomerID(mapStorage{})
		assert.Equal(t, "null", customerID)
		assert.Equal(t, "/api/customers/null/providers/p1", ProviderEndpoint("/api", customerID, "p1"))
	})
}
