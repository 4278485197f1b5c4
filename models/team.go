package models

// Rows returned by the sample queries against the teams and players_2024
// tables. The csv tags drive the --format csv output.

type TeamSummary struct {
	TeamAbbr     string  `gorm:"column:team_abbr" csv:"team_abbr"`
	TeamName     string  `gorm:"column:team_name" csv:"team_name"`
	TeamConf     *string `gorm:"column:team_conf" csv:"team_conf"`
	TeamDivision *string `gorm:"column:team_division" csv:"team_division"`
}

type TeamPlayerCount struct {
	Team        *string `gorm:"column:team" csv:"team"`
	PlayerCount int64   `gorm:"column:player_count" csv:"player_count"`
}

type Quarterback struct {
	PlayerName   string  `gorm:"column:player_name" csv:"player_name"`
	Team         *string `gorm:"column:team" csv:"team"`
	JerseyNumber *string `gorm:"column:jersey_number" csv:"jersey_number"`
}

type QuarterbackTeam struct {
	PlayerName   string  `gorm:"column:player_name" csv:"player_name"`
	Position     string  `gorm:"column:position" csv:"position"`
	TeamName     string  `gorm:"column:team_name" csv:"team_name"`
	TeamConf     *string `gorm:"column:team_conf" csv:"team_conf"`
	TeamDivision *string `gorm:"column:team_division" csv:"team_division"`
}

type PlayerSample struct {
	PlayerName string  `gorm:"column:player_name" csv:"player_name"`
	Team       *string `gorm:"column:team" csv:"team"`
	Position   *string `gorm:"column:position" csv:"position"`
}

// TableColumn describes one column of a loaded table.
type TableColumn struct {
	Name string
	Type string
}

type TableInfo struct {
	Name    string
	Columns []TableColumn
	Records int64
}

// Deref returns the pointed-to string, or "None" when absent.
func Deref(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
