package export

import (
	"path/filepath"
	"testing"

	"github.com/ChaseHampton/headstones/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	h := record.NewHeadstone()
	h.SequenceID = "A-100"
	h.CemeteryName = "FORT SNELLING"
	h.Primary.FirstName = "JOHN"
	h.Primary.LastName = "DOE"
	h.Others[0].FirstName = "JANE"

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, []*record.Headstone{h, record.NewHeadstone()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "A-100", rows[1][0])
	assert.Equal(t, "FORT SNELLING", rows[1][2])
	assert.Equal(t, "JOHN", rows[1][12])
	assert.Equal(t, "DOE", rows[1][14])
	assert.Equal(t, "1", rows[1][len(columns)-1])
}

func TestWriteXLSX_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
