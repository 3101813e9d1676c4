package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberAcceptsNumberAndString(t *testing.T) {
	var req CreateMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5, "stock": "10"}`), &req))

	price, ok := req.Price.Float64()
	require.True(t, ok)
	assert.Equal(t, 12.5, price)

	stock, ok := req.Stock.Int()
	require.True(t, ok)
	assert.Equal(t, 10, stock)
}

func TestFlexNumberIntTruncatesFraction(t *testing.T) {
	n := FlexNumber("10.9")
	i, ok := n.Int()
	require.True(t, ok)
	assert.Equal(t, 10, i)
}

func TestFlexNumberMissingOrMalformed(t *testing.T) {
	var req CreateMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price": null, "stock": "plenty"}`), &req))

	_, ok := req.Price.Float64()
	assert.False(t, ok)
	_, ok = req.Stock.Int()
	assert.False(t, ok)
}

func TestOptionalStringAbsentNullValue(t *testing.T) {
	var absent UpdateMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Image.Set)

	var null UpdateMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(`{"image": null}`), &null))
	assert.True(t, null.Image.Set)
	assert.True(t, null.Image.Null)

	var set UpdateMedicineRequest
	require.NoError(t, json.Unmarshal([]byte(`{"image": "data:image/png;base64,AA=="}`), &set))
	assert.True(t, set.Image.Set)
	assert.False(t, set.Image.Null)
	assert.Equal(t, "data:image/png;base64,AA==", set.Image.Value)
}
