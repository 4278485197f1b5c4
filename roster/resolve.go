package roster

import (
	"fmt"
	"strconv"
	"strings"

	"gridiron/csvdata"
	"gridiron/models"
)

// ParseWeek parses a week query value. Surrounding whitespace is ignored.
func ParseWeek(raw string) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, badRequest("Week must be a number")
	}
	return week, nil
}

// FallbackWeek picks the week served when requested has no rows: the largest
// available week not after requested, otherwise the earliest available week.
// available must be sorted ascending and non-empty.
func FallbackWeek(available []int, requested int) int {
	for i := len(available) - 1; i >= 0; i-- {
		if available[i] <= requested {
			return available[i]
		}
	}
	return available[0]
}

// Resolve finds the roster of team for the requested week, falling back to
// another week of the same team when the exact week has no rows.
func (d *Dataset) Resolve(team, rawWeek string) (*models.RosterResponse, error) {
	if team == "" || rawWeek == "" {
		return nil, badRequest("Team and week are required")
	}
	requested, err := ParseWeek(rawWeek)
	if err != nil {
		return nil, err
	}

	rows := d.filter(team, requested)
	if len(rows) == 0 {
		available, err := d.TeamWeeks(team)
		if err != nil {
			return nil, err
		}
		rows = d.filter(team, FallbackWeek(available, requested))
		if len(rows) == 0 {
			return nil, notFound("No roster data available for %s", team)
		}
	}

	for _, r := range rows {
		if len(r.Values) != len(d.Columns) {
			return nil, internal("malformed roster row", fmt.Errorf("row has %d values, table has %d columns", len(r.Values), len(d.Columns)))
		}
	}

	actual := rows[0].Week
	return &models.RosterResponse{
		TeamInfo:      d.teamInfo(team, rows[0]),
		Week:          actual,
		RequestedWeek: requested,
		WeekAvailable: actual == requested,
		Roster:        d.group(rows),
	}, nil
}

func (d *Dataset) teamInfo(team string, first Row) models.TeamInfo {
	return models.TeamInfo{
		Name: team,
		Logo: d.text(first, ColLogo),
		Colors: models.Colors{
			Primary:    d.text(first, ColColor),
			Secondary:  d.text(first, ColColor2),
			Tertiary:   d.text(first, ColColor3),
			Quaternary: d.text(first, ColColor4),
		},
	}
}

func (d *Dataset) text(r Row, column string) *string {
	v := d.Value(r, column)
	if v == nil {
		return nil
	}
	s := csvdata.Format(v)
	return &s
}

// group buckets rows by position group, keeping source order within a group
// and dropping empty groups.
func (d *Dataset) group(rows []Row) models.Roster {
	buckets := make(map[string][]models.Player)
	for _, r := range rows {
		name := GroupFor(r.Position)
		buckets[name] = append(buckets[name], models.Player{Columns: d.Columns, Values: r.Values})
	}

	roster := models.Roster{}
	for _, name := range GroupNames() {
		if players := buckets[name]; len(players) > 0 {
			roster = append(roster, models.PositionGroup{Name: name, Players: players})
		}
	}
	return roster
}
