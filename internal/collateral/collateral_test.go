package collateral_test

import (
	"testing"

	"github.com/planops/ruleboard/internal/collateral"
	"github.com/stretchr/testify/require"
)

func TestPickerSchema_PerCollateralColumns(t *testing.T) {
	anoc := collateral.PickerSchema(collateral.TypeANOC)
	_, hasContract := anoc.Column("contract_id")
	require.True(t, hasContract)
	_, hasCounty := anoc.Column("county")
	require.False(t, hasCounty)

	portfolio := collateral.PickerSchema(collateral.TypePortfolio)
	_, hasState := portfolio.Column("state")
	require.True(t, hasState)
	_, hasPBP := portfolio.Column("pbp")
	require.False(t, hasPBP)
}

func TestPickerSchema_UnknownTypeGetsBaseColumns(t *testing.T) {
	schema := collateral.PickerSchema(collateral.Type("Unknown"))
	require.Len(t, schema.Columns, 5)
	_, ok := schema.Column("document_id")
	require.True(t, ok)
}

func TestPickerSchema_SharesBaseColumns(t *testing.T) {
	for _, typ := range collateral.Types() {
		schema := collateral.PickerSchema(typ)
		for _, key := range []string{"document_id", "name", "plan_year", "status", "queued"} {
			_, ok := schema.Column(key)
			require.True(t, ok, "type %s missing %s", typ, key)
		}
	}
}
