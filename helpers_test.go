package waveletbasis

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTableFile stores the cascade db2 table as a CSV file for family.
func writeTableFile(t *testing.T, dir, family string) {
	t.Helper()
	table, err := CascadeTable(db2Lowpass, 0)
	require.NoError(t, err)

	f, err := os.Create(NewDirTables(dir).Path(family))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, WriteTableCSV(f, table))
}
