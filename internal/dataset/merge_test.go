package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

func buildTestOrders(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.NewTable("order_id", "carrier")
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow(dataset.Text("ORD001"), dataset.Text("FastShip")))
	require.NoError(t, tbl.AppendRow(dataset.Text("ORD002"), dataset.Text("QuickHaul")))
	require.NoError(t, tbl.AppendRow(dataset.Text("ORD003"), dataset.Text("FastShip")))
	return tbl
}

func buildTestRoutes(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.NewTable("order_id", "distance_km")
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow(dataset.Text("ORD001"), dataset.Number(120)))
	require.NoError(t, tbl.AppendRow(dataset.Text("ORD003"), dataset.Number(80)))
	return tbl
}

func TestLeftJoin_PreservesPrimaryCardinality(t *testing.T) {
	merged, err := dataset.LeftJoin(buildTestOrders(t), buildTestRoutes(t), "order_id", "routes")
	require.NoError(t, err)

	// Every primary row survives exactly once, matched or not.
	assert.Equal(t, 3, merged.NumRows())
	assert.Equal(t, []string{"order_id", "carrier", "distance_km"}, merged.Columns())

	dist, ok := merged.Value("distance_km", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 120.0, dist)

	assert.True(t, merged.Value("distance_km", 1).IsMissing(),
		"unmatched order gets a missing cell, not row loss")

	dist, ok = merged.Value("distance_km", 2).Float()
	require.True(t, ok)
	assert.Equal(t, 80.0, dist)
}

func TestLeftJoin_CollidingColumnGetsSuffix(t *testing.T) {
	secondary, err := dataset.NewTable("order_id", "carrier")
	require.NoError(t, err)
	require.NoError(t, secondary.AppendRow(dataset.Text("ORD001"), dataset.Text("SubbedOut")))

	merged, err := dataset.LeftJoin(buildTestOrders(t), secondary, "order_id", "costs")
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "carrier", "carrier_costs"}, merged.Columns())

	original, ok := merged.Value("carrier", 0).Text()
	require.True(t, ok)
	assert.Equal(t, "FastShip", original)

	carried, ok := merged.Value("carrier_costs", 0).Text()
	require.True(t, ok)
	assert.Equal(t, "SubbedOut", carried)
}

func TestLeftJoin_DuplicateSecondaryKey(t *testing.T) {
	secondary, err := dataset.NewTable("order_id", "distance_km")
	require.NoError(t, err)
	require.NoError(t, secondary.AppendRow(dataset.Text("ORD001"), dataset.Number(120)))
	require.NoError(t, secondary.AppendRow(dataset.Text("ORD001"), dataset.Number(200)))

	_, err = dataset.LeftJoin(buildTestOrders(t), secondary, "order_id", "routes")
	require.Error(t, err)

	var dup *dataset.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "routes", dup.Source)
	assert.Equal(t, "ORD001", dup.Key)
}

func TestLeftJoin_MissingKeyColumn(t *testing.T) {
	secondary, err := dataset.NewTable("shipment_id", "distance_km")
	require.NoError(t, err)

	_, err = dataset.LeftJoin(buildTestOrders(t), secondary, "order_id", "routes")
	require.Error(t, err)

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "routes", schemaErr.Table)
	assert.Contains(t, schemaErr.Expected, "order_id")
}

func TestLeftJoin_NumericAndTextKeysMatch(t *testing.T) {
	// A numeric order id matches its quoted counterpart because join keys
	// compare by rendered value.
	primary, err := dataset.NewTable("order_id")
	require.NoError(t, err)
	require.NoError(t, primary.AppendRow(dataset.Number(1001)))

	secondary, err := dataset.NewTable("order_id", "distance_km")
	require.NoError(t, err)
	require.NoError(t, secondary.AppendRow(dataset.Text("1001"), dataset.Number(42)))

	merged, err := dataset.LeftJoin(primary, secondary, "order_id", "routes")
	require.NoError(t, err)

	dist, ok := merged.Value("distance_km", 0).Float()
	require.True(t, ok)
	assert.Equal(t, 42.0, dist)
}
