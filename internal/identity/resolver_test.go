package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMapped(t *testing.T) {
	r := NewResolver(map[string]string{
		"jdoe":     "Jane Doe",
		"jane.doe": "Jane Doe",
	})

	assert.Equal(t, "Jane Doe", r.Resolve("jdoe"))
	assert.Equal(t, "Jane Doe", r.Resolve("jane.doe"))
}

func TestResolveUnmappedIsIdentity(t *testing.T) {
	r := NewResolver(map[string]string{"jdoe": "Jane Doe"})

	assert.Equal(t, "someone else", r.Resolve("someone else"))
	assert.Equal(t, "", r.Resolve(""))
}

func TestResolverCopiesTable(t *testing.T) {
	table := map[string]string{"jdoe": "Jane Doe"}
	r := NewResolver(table)

	table["jdoe"] = "John Doe"
	assert.Equal(t, "Jane Doe", r.Resolve("jdoe"))
}

func TestNilTable(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, "jdoe", r.Resolve("jdoe"))
}
