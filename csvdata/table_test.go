package csvdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInfersColumnKinds(t *testing.T) {
	src := "team_name,week,jersey_number,height,active,team_color3\n" +
		"NE,1,12,6.4,True,\n" +
		"NE,2,,6.1,False,#002244\n"

	tbl, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, tbl.Columns, 6)
	assert.Equal(t, KindText, tbl.Columns[0].Kind)
	assert.Equal(t, KindInteger, tbl.Columns[1].Kind)
	assert.Equal(t, KindInteger, tbl.Columns[2].Kind, "missing values do not demote integers")
	assert.Equal(t, KindReal, tbl.Columns[3].Kind)
	assert.Equal(t, KindBoolean, tbl.Columns[4].Kind)
	assert.Equal(t, KindText, tbl.Columns[5].Kind)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []any{"NE", int64(1), int64(12), 6.4, true, nil}, tbl.Rows[0])
	assert.Equal(t, []any{"NE", int64(2), nil, 6.1, false, "#002244"}, tbl.Rows[1])
}

func TestReadMissingTokens(t *testing.T) {
	src := "a,b\nNA,nan\nNULL,None\n1,2.5\n"

	tbl, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, KindInteger, tbl.Columns[0].Kind)
	assert.Equal(t, KindReal, tbl.Columns[1].Kind)
	assert.Nil(t, tbl.Rows[0][0])
	assert.Nil(t, tbl.Rows[0][1])
	assert.Nil(t, tbl.Rows[1][0])
	assert.Nil(t, tbl.Rows[1][1])
}

func TestReadWhitespaceIsPresent(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n1, \n2,NA\n3,\n"))
	require.NoError(t, err)

	assert.Equal(t, KindText, tbl.Columns[1].Kind)
	assert.Equal(t, " ", tbl.Rows[0][1])
	assert.Nil(t, tbl.Rows[1][1])
	assert.Nil(t, tbl.Rows[2][1])

	assert.False(t, IsMissing(" "))
	assert.False(t, IsMissing(" NA"))
	assert.True(t, IsMissing("NA"))
	assert.True(t, IsMissing(""))
}

func TestReadMixedColumnStaysText(t *testing.T) {
	tbl, err := Read(strings.NewReader("id\n00-0033873\n42\n"))
	require.NoError(t, err)

	assert.Equal(t, KindText, tbl.Columns[0].Kind)
	assert.Equal(t, "42", tbl.Rows[1][0])
}

func TestReadInfinityIsText(t *testing.T) {
	tbl, err := Read(strings.NewReader("x\n1.5\ninf\n"))
	require.NoError(t, err)
	assert.Equal(t, KindText, tbl.Columns[0].Kind)
}

func TestReadAllMissingColumnIsText(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n1,\n2,\n"))
	require.NoError(t, err)
	assert.Equal(t, KindText, tbl.Columns[1].Kind)
	assert.Nil(t, tbl.Rows[0][1])
}

func TestReadPadsShortRows(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b,c\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), nil}, tbl.Rows[0])
}

func TestReadRejectsLongRows(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadStripsBOMAndDedupesHeader(t *testing.T) {
	tbl, err := Read(strings.NewReader("\ufeffname,name,name\nx,y,z\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "name.1", "name.2"}, tbl.Names())
	assert.Equal(t, 1, tbl.Index("name.1"))
	assert.Equal(t, -1, tbl.Index("missing"))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte("team_abbr,team_name\nNE,New England Patriots\n"), 0o644))

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "New England Patriots", tbl.Rows[0][1])

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "12", Format(int64(12)))
	assert.Equal(t, "6.25", Format(6.25))
	assert.Equal(t, "True", Format(true))
	assert.Equal(t, "QB", Format("QB"))
}
