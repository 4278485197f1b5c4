// Package roster holds the in-memory roster table and the team/week lookups
// served by the web handlers.
package roster

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gridiron/csvdata"
)

// Column names the lookups depend on. Every other column passes through.
const (
	ColTeamName = "team_name"
	ColWeek     = "week"
	ColPosition = "position"
	ColLogo     = "team_logo_espn"
	ColColor    = "team_color"
	ColColor2   = "team_color2"
	ColColor3   = "team_color3"
	ColColor4   = "team_color4"
)

// Row is one player-week record. HasWeek is false when the week cell is
// missing or not a whole number; such rows never match a week lookup.
type Row struct {
	Team     string
	Week     int
	HasWeek  bool
	Position string
	Values   []any
}

// Dataset is an immutable roster table. It is never modified after
// construction, so one value can serve concurrent lookups.
type Dataset struct {
	Columns  []string
	Rows     []Row
	Source   string
	LoadedAt time.Time

	index map[string]int
}

func Empty() *Dataset {
	return &Dataset{index: map[string]int{}}
}

// FromTable builds a dataset from a loaded CSV table. The team_name, week and
// position columns are required.
func FromTable(t *csvdata.Table) (*Dataset, error) {
	d := &Dataset{
		Columns: t.Names(),
		index:   make(map[string]int, len(t.Columns)),
	}
	for i, c := range d.Columns {
		d.index[c] = i
	}

	iTeam, iWeek, iPos := t.Index(ColTeamName), t.Index(ColWeek), t.Index(ColPosition)
	if iTeam < 0 || iWeek < 0 || iPos < 0 {
		return nil, fmt.Errorf("required columns missing (need %s, %s, %s)", ColTeamName, ColWeek, ColPosition)
	}

	d.Rows = make([]Row, 0, len(t.Rows))
	for _, values := range t.Rows {
		week, ok := weekOf(values[iWeek])
		d.Rows = append(d.Rows, Row{
			Team:     textOf(values[iTeam]),
			Week:     week,
			HasWeek:  ok,
			Position: textOf(values[iPos]),
			Values:   values,
		})
	}
	return d, nil
}

func weekOf(v any) (int, bool) {
	switch x := v.(type) {
	case int64:
		return int(x), true
	case float64:
		if x == math.Trunc(x) {
			return int(x), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func textOf(v any) string {
	if v == nil {
		return ""
	}
	return csvdata.Format(v)
}

func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Value returns the named field of r, nil when the column does not exist.
func (d *Dataset) Value(r Row, column string) any {
	i, ok := d.index[column]
	if !ok || i >= len(r.Values) {
		return nil
	}
	return r.Values[i]
}

// Teams returns the sorted distinct team names.
func (d *Dataset) Teams() []string {
	seen := make(map[string]struct{})
	teams := []string{}
	for _, r := range d.Rows {
		if r.Team == "" {
			continue
		}
		if _, ok := seen[r.Team]; !ok {
			seen[r.Team] = struct{}{}
			teams = append(teams, r.Team)
		}
	}
	sort.Strings(teams)
	return teams
}

// Weeks returns the sorted distinct weeks across all teams.
func (d *Dataset) Weeks() []int {
	return distinctWeeks(d.Rows, func(Row) bool { return true })
}

// TeamWeeks returns the sorted distinct weeks that have rows for team.
func (d *Dataset) TeamWeeks(team string) ([]int, error) {
	if team == "" {
		return nil, badRequest("Team is required")
	}
	weeks := distinctWeeks(d.Rows, func(r Row) bool { return r.Team == team })
	if len(weeks) == 0 {
		return nil, notFound("No data found for team: %s", team)
	}
	return weeks, nil
}

func (d *Dataset) filter(team string, week int) []Row {
	var rows []Row
	for _, r := range d.Rows {
		if r.HasWeek && r.Team == team && r.Week == week {
			rows = append(rows, r)
		}
	}
	return rows
}

func distinctWeeks(rows []Row, keep func(Row) bool) []int {
	seen := make(map[int]struct{})
	weeks := []int{}
	for _, r := range rows {
		if !r.HasWeek || !keep(r) {
			continue
		}
		if _, ok := seen[r.Week]; !ok {
			seen[r.Week] = struct{}{}
			weeks = append(weeks, r.Week)
		}
	}
	sort.Ints(weeks)
	return weeks
}
