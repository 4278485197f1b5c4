package database

import (
	"context"
	"fmt"
	"sort"

	"gridiron/models"

	"gorm.io/gorm"
)

const (
	TeamsTable   = "teams"
	PlayersTable = "players_2024"
)

const allTeamsSQL = `
	SELECT team_abbr, team_name, team_conf, team_division
	FROM teams
	ORDER BY team_conf, team_division, team_name`

const playerCountsSQL = `
	SELECT team, COUNT(*) AS player_count
	FROM players_2024
	GROUP BY team
	ORDER BY player_count DESC
	LIMIT ?`

const startingQuarterbacksSQL = `
	SELECT DISTINCT player_name, team, jersey_number
	FROM players_2024
	WHERE position = 'QB' AND depth_chart_position = 'QB'
	ORDER BY team
	LIMIT ?`

const quarterbackTeamsSQL = `
	SELECT p.player_name, p.position, t.team_name, t.team_conf, t.team_division
	FROM players_2024 p
	JOIN teams t ON p.team = t.team_abbr
	WHERE p.position = 'QB' AND p.depth_chart_position = 'QB'
	ORDER BY t.team_name
	LIMIT ?`

const sampleTeamsSQL = `
	SELECT team_abbr, team_name, team_conf, team_division
	FROM teams
	LIMIT ?`

const samplePlayersSQL = `
	SELECT player_name, team, position
	FROM players_2024
	LIMIT ?`

// Queries runs the fixed read-only reports against a loaded database.
type Queries struct {
	db *gorm.DB
}

func NewQueries(db *gorm.DB) *Queries {
	return &Queries{db: db}
}

func (q *Queries) AllTeams(ctx context.Context) ([]models.TeamSummary, error) {
	var rows []models.TeamSummary
	if err := q.db.WithContext(ctx).Raw(allTeamsSQL).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("all teams: %w", err)
	}
	return rows, nil
}

func (q *Queries) PlayerCountsByTeam(ctx context.Context, limit int) ([]models.TeamPlayerCount, error) {
	var rows []models.TeamPlayerCount
	if err := q.db.WithContext(ctx).Raw(playerCountsSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("player counts: %w", err)
	}
	return rows, nil
}

func (q *Queries) StartingQuarterbacks(ctx context.Context, limit int) ([]models.Quarterback, error) {
	var rows []models.Quarterback
	if err := q.db.WithContext(ctx).Raw(startingQuarterbacksSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("starting quarterbacks: %w", err)
	}
	return rows, nil
}

func (q *Queries) QuarterbacksWithTeams(ctx context.Context, limit int) ([]models.QuarterbackTeam, error) {
	var rows []models.QuarterbackTeam
	if err := q.db.WithContext(ctx).Raw(quarterbackTeamsSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("quarterbacks with teams: %w", err)
	}
	return rows, nil
}

func (q *Queries) SampleTeams(ctx context.Context, limit int) ([]models.TeamSummary, error) {
	var rows []models.TeamSummary
	if err := q.db.WithContext(ctx).Raw(sampleTeamsSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("sample teams: %w", err)
	}
	return rows, nil
}

func (q *Queries) SamplePlayers(ctx context.Context, limit int) ([]models.PlayerSample, error) {
	var rows []models.PlayerSample
	if err := q.db.WithContext(ctx).Raw(samplePlayersSQL, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("sample players: %w", err)
	}
	return rows, nil
}

// Tables lists the tables in the database, sorted by name.
func (q *Queries) Tables(ctx context.Context) ([]string, error) {
	tables, err := q.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	sort.Strings(tables)
	return tables, nil
}

// TableInfo describes the columns and record count of one table.
func (q *Queries) TableInfo(ctx context.Context, name string) (*models.TableInfo, error) {
	db := q.db.WithContext(ctx)

	types, err := db.Migrator().ColumnTypes(name)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", name, err)
	}
	info := &models.TableInfo{Name: name}
	for _, ct := range types {
		info.Columns = append(info.Columns, models.TableColumn{
			Name: ct.Name(),
			Type: ct.DatabaseTypeName(),
		})
	}

	if err := db.Table(name).Count(&info.Records).Error; err != nil {
		return nil, fmt.Errorf("count %s: %w", name, err)
	}
	return info, nil
}
