package cin7

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStr(t *testing.T) {
	doc := Document{
		"text":   "hello",
		"number": 3.0,
		"price":  2.5,
		"flag":   true,
		"null":   nil,
	}

	assert.Equal(t, "hello", doc.Str("text"))
	assert.Equal(t, "3", doc.Str("number"), "whole JSON numbers render without a decimal point")
	assert.Equal(t, "2.5", doc.Str("price"))
	assert.Equal(t, "true", doc.Str("flag"))
	assert.Equal(t, "", doc.Str("null"))
	assert.Equal(t, "", doc.Str("absent"))
}

func TestDocumentNum(t *testing.T) {
	doc := Document{
		"float":  1.5,
		"string": " 2.25 ",
		"bad":    "nope",
		"null":   nil,
	}

	got, err := doc.Num("float", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = doc.Num("string", 0)
	require.NoError(t, err)
	assert.Equal(t, 2.25, got)

	got, err = doc.Num("absent", 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "absent fields take the default")

	got, err = doc.Num("null", 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	_, err = doc.Num("bad", 0)
	require.Error(t, err)
}

func TestDocumentFlag(t *testing.T) {
	doc := Document{"isVoid": true, "other": "true"}

	assert.True(t, doc.Flag("isVoid"))
	assert.False(t, doc.Flag("other"), "non-bool values are not flags")
	assert.False(t, doc.Flag("absent"))
}

func TestDocumentItems(t *testing.T) {
	doc := Document{
		"lineItems": []any{
			map[string]any{"code": "A"},
			"not an object",
			map[string]any{"code": "B"},
		},
	}

	items := doc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Str("code"))
	assert.Equal(t, "B", items[1].Str("code"))

	assert.Nil(t, Document{}.Items())
}

func TestDocumentRef(t *testing.T) {
	assert.Equal(t, "CRN-1", Document{"reference": "CRN-1", "id": 9.0}.Ref())
	assert.Equal(t, "9", Document{"id": 9.0}.Ref())
	assert.Equal(t, "unknown", Document{}.Ref())
}
