package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

func TestReadTable_ParsesKindsAndHeaders(t *testing.T) {
	src := strings.Join([]string{
		"Order ID,Distance (km),Carrier",
		"ORD001,120.5,FastShip",
		"ORD002,,QuickHaul",
		"ORD003,NaN,null",
	}, "\n")

	tbl, err := dataset.ReadTable(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "distance_km", "carrier"}, tbl.Columns())
	require.Equal(t, 3, tbl.NumRows())

	id, ok := tbl.Value("order_id", 0).Text()
	require.True(t, ok)
	assert.Equal(t, "ORD001", id)

	dist, ok := tbl.Value("distance_km", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 120.5, dist)

	assert.True(t, tbl.Value("distance_km", 1).IsMissing(), "empty cell is missing")
	assert.True(t, tbl.Value("distance_km", 2).IsMissing(), "NaN token is missing")
	assert.True(t, tbl.Value("carrier", 2).IsMissing(), "null token is missing")
}

func TestReadTable_Empty(t *testing.T) {
	_, err := dataset.ReadTable(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadTable_DuplicateHeadersAfterCleaning(t *testing.T) {
	src := "Order ID,order id\nORD001,ORD001\n"
	_, err := dataset.ReadTable(strings.NewReader(src))
	require.Error(t, err)
}

func TestWriteTable_RoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"order_id,distance_km,carrier",
		"ORD001,120.5,FastShip",
		"ORD002,,QuickHaul",
	}, "\n")

	tbl, err := dataset.ReadTable(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteTable(&buf, tbl))

	reloaded, err := dataset.ReadTable(&buf)
	require.NoError(t, err)

	assert.Equal(t, tbl.Columns(), reloaded.Columns())
	require.Equal(t, tbl.NumRows(), reloaded.NumRows())
	for row := 0; row < tbl.NumRows(); row++ {
		for _, col := range tbl.Columns() {
			assert.Equal(t, tbl.Value(col, row).String(), reloaded.Value(col, row).String(),
				"cell (%s, %d) must survive the round trip", col, row)
		}
	}
}
