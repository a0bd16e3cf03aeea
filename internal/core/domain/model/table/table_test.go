package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

func newVacantTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), 7, 4)
	require.NoError(t, err)
	return tbl
}

func Test_NewTable_StartsVacant(t *testing.T) {
	tbl := newVacantTable(t)

	assert.Equal(t, table.Vacant, tbl.TableStatus())
	assert.Nil(t, tbl.CurrentOrder())
	assert.Equal(t, 7, tbl.Number())
	assert.Equal(t, 4, tbl.Capacity())
	assert.NoError(t, tbl.Validate())
}

func Test_NewTable_RejectsInvalidArguments(t *testing.T) {
	id := kernel.NewUUID()
	branchID := kernel.NewUUID()

	tests := []struct {
		name     string
		id       kernel.UUID
		branchID kernel.UUID
		number   int
		capacity int
	}{
		{"empty id", kernel.UUID{}, branchID, 1, 4},
		{"empty branch", id, kernel.UUID{}, 1, 4},
		{"zero number", id, branchID, 0, 4},
		{"negative number", id, branchID, -3, 4},
		{"zero capacity", id, branchID, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.NewTable(tt.id, tt.branchID, tt.number, tt.capacity)
			assert.Error(t, err)
		})
	}
}

func Test_Table_Occupy(t *testing.T) {
	tbl := newVacantTable(t)
	orderID := kernel.NewUUID()

	require.NoError(t, tbl.Occupy(orderID))

	assert.Equal(t, table.Occupied, tbl.TableStatus())
	require.NotNil(t, tbl.CurrentOrder())
	assert.True(t, tbl.CurrentOrder().IsEqual(orderID))
}

func Test_Table_Occupy_RejectsSecondOrder(t *testing.T) {
	tbl := newVacantTable(t)
	require.NoError(t, tbl.Occupy(kernel.NewUUID()))

	err := tbl.Occupy(kernel.NewUUID())
	assert.ErrorIs(t, err, table.ErrTableOccupied)
	assert.Equal(t, table.Occupied, tbl.TableStatus())
}

func Test_Table_Free_ReturnsToVacant(t *testing.T) {
	tbl := newVacantTable(t)
	require.NoError(t, tbl.Occupy(kernel.NewUUID()))

	tbl.Free()

	assert.Equal(t, table.Vacant, tbl.TableStatus())
	assert.Nil(t, tbl.CurrentOrder())
}

func Test_Table_StartCleaning(t *testing.T) {
	tbl := newVacantTable(t)

	require.NoError(t, tbl.StartCleaning())
	assert.Equal(t, table.Cleaning, tbl.TableStatus())

	tbl.Free()
	assert.Equal(t, table.Vacant, tbl.TableStatus())
}

func Test_Table_StartCleaning_RejectsActiveOrder(t *testing.T) {
	tbl := newVacantTable(t)
	require.NoError(t, tbl.Occupy(kernel.NewUUID()))

	err := tbl.StartCleaning()
	assert.ErrorIs(t, err, table.ErrTableHasActiveOrder)
	assert.Equal(t, table.Occupied, tbl.TableStatus())
}

func Test_RestoreTable(t *testing.T) {
	id := kernel.NewUUID()
	branchID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("occupied with order", func(t *testing.T) {
		tbl, err := table.RestoreTable(id, branchID, 3, 2, table.Occupied, &orderID)
		require.NoError(t, err)
		assert.Equal(t, table.Occupied, tbl.TableStatus())
		require.NotNil(t, tbl.CurrentOrder())
		assert.True(t, tbl.CurrentOrder().IsEqual(orderID))
	})

	t.Run("vacant with order is rejected", func(t *testing.T) {
		_, err := table.RestoreTable(id, branchID, 3, 2, table.Vacant, &orderID)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := table.RestoreTable(id, branchID, 3, 2, table.StatusUnknown, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_TableStatus_FromString(t *testing.T) {
	for _, s := range []table.Status{table.Vacant, table.Occupied, table.Cleaning} {
		parsed, err := table.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := table.StatusFromString("reserved")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Table_Validate_ZeroValue(t *testing.T) {
	var tbl table.Table
	assert.ErrorIs(t, tbl.Validate(), table.ErrTableIsNotConstructed)
}
