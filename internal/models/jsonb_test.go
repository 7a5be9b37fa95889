package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katgen/internal/models"
)

func TestJSONBValue(t *testing.T) {
	t.Run("empty becomes object", func(t *testing.T) {
		v, err := models.JSONB(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), v)
	})

	t.Run("passthrough", func(t *testing.T) {
		v, err := models.JSONB(`{"a":1}`).Value()
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), v)
	})
}

func TestJSONBScan(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		var j models.JSONB
		require.NoError(t, j.Scan([]byte(`{"a":1}`)))
		assert.Equal(t, models.JSONB(`{"a":1}`), j)
	})

	t.Run("string", func(t *testing.T) {
		var j models.JSONB
		require.NoError(t, j.Scan(`{"b":2}`))
		assert.Equal(t, models.JSONB(`{"b":2}`), j)
	})

	t.Run("nil", func(t *testing.T) {
		var j models.JSONB
		require.NoError(t, j.Scan(nil))
		assert.Equal(t, models.JSONB("{}"), j)
	})
}

func TestMetadata(t *testing.T) {
	t.Run("marshals map", func(t *testing.T) {
		j := models.Metadata(map[string]any{"run_id": "abc", "count": 3})
		assert.JSONEq(t, `{"run_id":"abc","count":3}`, string(j))
	})

	t.Run("unmarshalable collapses to object", func(t *testing.T) {
		j := models.Metadata(map[string]any{"f": func() {}})
		assert.Equal(t, models.JSONB("{}"), j)
	})
}
