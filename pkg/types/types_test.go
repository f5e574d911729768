package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderTypes(t *testing.T) {
	t.Run("table contents and order", func(t *testing.T) {
		expected := []ProviderType{
			{Code: "aws", Name: "Amazon"},
			{Code: "docker", Name: "Docker Localhost"},
			{Code: "gcp", Name: "Google"},
		}
		assert.Equal(t, expected, ProviderTypes())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		result := ProviderTypes()
		result[0].Name = "changed"
		assert.Equal(t, "Amazon", ProviderTypes()[0].Name)
	})
}

func TestFindProviderType(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		pt, ok := FindProviderType(Docker)
		assert.True(t, ok)
		assert.Equal(t, "Docker Localhost", pt.Name)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := FindProviderType("azu")
		assert.False(t, ok)
	})

	t.Run("codes are matched exactly", func(t *testing.T) {
		assert.False(t, ProviderCode("AWS").IsValid())
		assert.True(t, AWS.IsValid())
	})
}
