package models

import (
	"bytes"
	"encoding/json"
)

type Colors struct {
	Primary    *string `json:"primary"`
	Secondary  *string `json:"secondary"`
	Tertiary   *string `json:"tertiary"`
	Quaternary *string `json:"quaternary"`
}

type TeamInfo struct {
	Name   string  `json:"name"`
	Logo   *string `json:"logo"`
	Colors Colors  `json:"colors"`
}

// Player is one roster row with every source column, in file order.
// Values are nil, int64, float64, bool or string.
type Player struct {
	Columns []string
	Values  []any
}

// Get returns the value of the named field.
func (p Player) Get(name string) (any, bool) {
	for i, c := range p.Columns {
		if c == name {
			return p.Values[i], true
		}
	}
	return nil, false
}

func (p Player) MarshalJSON() ([]byte, error) {
	pairs := make([]pair, len(p.Columns))
	for i, c := range p.Columns {
		pairs[i] = pair{key: c, value: p.Values[i]}
	}
	return marshalObject(pairs)
}

type PositionGroup struct {
	Name    string
	Players []Player
}

// Roster marshals as a JSON object whose keys keep the group order.
type Roster []PositionGroup

// Group returns the players of the named group.
func (r Roster) Group(name string) ([]Player, bool) {
	for _, g := range r {
		if g.Name == name {
			return g.Players, true
		}
	}
	return nil, false
}

func (r Roster) MarshalJSON() ([]byte, error) {
	pairs := make([]pair, len(r))
	for i, g := range r {
		players := g.Players
		if players == nil {
			players = []Player{}
		}
		pairs[i] = pair{key: g.Name, value: players}
	}
	return marshalObject(pairs)
}

type RosterResponse struct {
	TeamInfo      TeamInfo `json:"team_info"`
	Week          int      `json:"week"`
	RequestedWeek int      `json:"requested_week"`
	WeekAvailable bool     `json:"week_available"`
	Roster        Roster   `json:"roster"`
}

type TeamWeeksResponse struct {
	AvailableWeeks []int `json:"available_weeks"`
}

type pair struct {
	key   string
	value any
}

func marshalObject(pairs []pair) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
