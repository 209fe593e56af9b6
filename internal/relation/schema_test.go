package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	schema := NewSchema()
	require.NotNil(t, schema)
	assert.Equal(t, 0, schema.NumFields())

	schema.AddIntField("id")
	assert.Equal(t, 1, schema.NumFields())
	assert.Equal(t, "id", schema.FieldName(0))
	assert.Equal(t, TypeInt, schema.FieldType(0))

	schema.AddStringField("name")
	schema.AddFloatField("score")
	assert.Equal(t, 3, schema.NumFields())
	assert.Equal(t, TypeString, schema.FieldType(1))
	assert.Equal(t, TypeFloat, schema.FieldType(2))

	assert.Equal(t, []string{"id", "name", "score"}, schema.FieldNames())
}

func TestSchemaCopy(t *testing.T) {
	source := NewSchema()
	source.AddIntField("id")
	source.AddStringField("name")
	source.AddFloatField("score")

	// Copy a single field, out of order.
	target := NewSchema()
	target.Copy(source, 2)
	target.Copy(source, 0)
	require.Equal(t, 2, target.NumFields())
	assert.Equal(t, "score", target.FieldName(0))
	assert.Equal(t, "id", target.FieldName(1))

	// Out-of-range copies are ignored.
	target.Copy(source, 5)
	assert.Equal(t, 2, target.NumFields())

	all := NewSchema()
	all.CopyAll(source)
	assert.Equal(t, source.FieldNames(), all.FieldNames())
}
