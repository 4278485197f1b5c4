package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"gridiron/config"
	"gridiron/csvdata"
	"gridiron/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const teamsCSV = `team_abbr,team_name,team_conf,team_division,team_color
BUF,Buffalo Bills,AFC,AFC East,#00338D
KC,Kansas City Chiefs,AFC,AFC West,#E31837
NE,New England Patriots,AFC,AFC East,#002244
PHI,Philadelphia Eagles,NFC,NFC East,
`

const playersCSV = `player_name,team,position,depth_chart_position,jersey_number,height,rookie
Josh Allen,BUF,QB,QB,17,77.0,False
Mitchell Trubisky,BUF,QB,QB,11,74.5,False
Patrick Mahomes,KC,QB,QB,15,74.0,False
Travis Kelce,KC,TE,TE,87,77.0,False
Drake Maye,NE,QB,QB,10,76.0,True
Rhamondre Stevenson,NE,RB,RB,38,,False
Christian Gonzalez,NE,CB,CB,0,73.0,False
Jalen Hurts,PHI,QB,QB,1,73.0,False
Free Agent,,QB,,NA,75.0,False
`

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.DriverSQLite, filepath.Join(t.TempDir(), "nfl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func loadFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	teams, err := csvdata.Read(strings.NewReader(teamsCSV))
	require.NoError(t, err)
	n, err := ReplaceTable(ctx, db, TeamsTable, teams)
	require.NoError(t, err)
	require.EqualValues(t, 4, n)

	players, err := csvdata.Read(strings.NewReader(playersCSV))
	require.NoError(t, err)
	n, err = ReplaceTable(ctx, db, PlayersTable, players)
	require.NoError(t, err)
	require.EqualValues(t, 9, n)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestReplaceTableTypesAndCounts(t *testing.T) {
	db := testDB(t)
	loadFixtures(t, db)
	q := NewQueries(db)
	ctx := context.Background()

	tables, err := q.Tables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{PlayersTable, TeamsTable}, tables)

	info, err := q.TableInfo(ctx, PlayersTable)
	require.NoError(t, err)
	assert.EqualValues(t, 9, info.Records)

	types := map[string]string{}
	var names []string
	for _, c := range info.Columns {
		names = append(names, c.Name)
		types[c.Name] = strings.ToUpper(c.Type)
	}
	assert.Equal(t, []string{"player_name", "team", "position", "depth_chart_position", "jersey_number", "height", "rookie"}, names)
	assert.Equal(t, "TEXT", types["player_name"])
	assert.Equal(t, "INTEGER", types["jersey_number"])
	assert.Equal(t, "REAL", types["height"])
	assert.Equal(t, "INTEGER", types["rookie"])
}

func TestReplaceTableReplacesExisting(t *testing.T) {
	db := testDB(t)
	loadFixtures(t, db)
	ctx := context.Background()

	smaller, err := csvdata.Read(strings.NewReader("team_abbr,team_name\nNYJ,New York Jets\n"))
	require.NoError(t, err)
	n, err := ReplaceTable(ctx, db, TeamsTable, smaller)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	info, err := NewQueries(db).TableInfo(ctx, TeamsTable)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.Records)
	assert.Len(t, info.Columns, 2)
}

func TestReplaceTableMissingValuesAreNull(t *testing.T) {
	db := testDB(t)
	loadFixtures(t, db)

	var nulls int64
	require.NoError(t, db.Table(PlayersTable).Where("jersey_number IS NULL").Count(&nulls).Error)
	assert.EqualValues(t, 1, nulls)

	require.NoError(t, db.Table(PlayersTable).Where("height IS NULL").Count(&nulls).Error)
	assert.EqualValues(t, 1, nulls)

	require.NoError(t, db.Table(PlayersTable).Where("team IS NULL").Count(&nulls).Error)
	assert.EqualValues(t, 1, nulls)
}

func TestReplaceTableHeaderOnly(t *testing.T) {
	db := testDB(t)
	empty, err := csvdata.Read(strings.NewReader("team_abbr,team_name\n"))
	require.NoError(t, err)

	n, err := ReplaceTable(context.Background(), db, TeamsTable, empty)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, db.Migrator().HasTable(TeamsTable))
}

func TestQueries(t *testing.T) {
	db := testDB(t)
	loadFixtures(t, db)
	q := NewQueries(db)
	ctx := context.Background()

	teams, err := q.AllTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 4)
	assert.Equal(t, []string{"BUF", "NE", "KC", "PHI"}, abbrs(teams))

	counts, err := q.PlayerCountsByTeam(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, counts)
	assert.EqualValues(t, 3, counts[0].PlayerCount)
	total := int64(0)
	for _, c := range counts {
		total += c.PlayerCount
	}
	assert.EqualValues(t, 9, total)

	counts, err = q.PlayerCountsByTeam(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, counts, 2)

	qbs, err := q.StartingQuarterbacks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, qbs, 5)
	assert.Equal(t, "BUF", models.Deref(qbs[0].Team))
	assert.Equal(t, "KC", models.Deref(qbs[2].Team))
	assert.Equal(t, "15", models.Deref(qbs[2].JerseyNumber))

	joined, err := q.QuarterbacksWithTeams(ctx, 5)
	require.NoError(t, err)
	require.Len(t, joined, 5)
	assert.Equal(t, "Buffalo Bills", joined[0].TeamName)
	assert.Equal(t, "Philadelphia Eagles", joined[4].TeamName)
	assert.Equal(t, "Jalen Hurts", joined[4].PlayerName)

	players, err := q.SamplePlayers(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, players, 5)

	sample, err := q.SampleTeams(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, sample, 4)
	assert.Equal(t, "NFC", models.Deref(sample[3].TeamConf))
}

func abbrs(teams []models.TeamSummary) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.TeamAbbr
	}
	return out
}
