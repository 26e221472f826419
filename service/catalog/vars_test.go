package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVariables(t *testing.T) {
	t.Run("deduplicates and sorts", func(t *testing.T) {
		got := ExtractVariables("Hello {{ name }}, bye {{ name }}, {{ other }} and {{ another }}")
		assert.Equal(t, []string{"another", "name", "other"}, got)
	})

	t.Run("filters after the identifier are ignored", func(t *testing.T) {
		got := ExtractVariables("{{ user | upper }} {{ count + 1 }} {{ path|default('/tmp') }}")
		assert.Equal(t, []string{"count", "path", "user"}, got)
	})

	t.Run("underscored identifiers", func(t *testing.T) {
		got := ExtractVariables("{{ _private }} {{ snake_case_2 }}")
		assert.Equal(t, []string{"_private", "snake_case_2"}, got)
	})

	t.Run("no placeholders", func(t *testing.T) {
		assert.Empty(t, ExtractVariables("plain text, no markup"))
	})

	t.Run("placeholders not led by an identifier are skipped", func(t *testing.T) {
		assert.Empty(t, ExtractVariables("{{ 1 + 2 }} {{ 'literal' }}"))
	})

	t.Run("tight braces without spaces", func(t *testing.T) {
		assert.Equal(t, []string{"host"}, ExtractVariables("ping {{host}}"))
	})
}
