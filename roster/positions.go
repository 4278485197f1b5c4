package roster

// OtherGroup collects every position code not listed in PositionGroups.
const OtherGroup = "Other"

type PositionGroup struct {
	Name  string
	Codes []string
}

// PositionGroups is checked in order; the first group listing a code wins.
var PositionGroups = []PositionGroup{
	{Name: "Quarterbacks", Codes: []string{"QB"}},
	{Name: "Running Backs", Codes: []string{"RB", "FB"}},
	{Name: "Wide Receivers", Codes: []string{"WR"}},
	{Name: "Tight Ends", Codes: []string{"TE"}},
	{Name: "Offensive Line", Codes: []string{"OL", "C", "G", "T"}},
	{Name: "Defensive Line", Codes: []string{"DL", "DE", "DT", "NT"}},
	{Name: "Linebackers", Codes: []string{"LB", "ILB", "OLB"}},
	{Name: "Defensive Backs", Codes: []string{"DB", "CB", "S", "FS", "SS"}},
	{Name: "Special Teams", Codes: []string{"K", "P", "LS"}},
}

// GroupFor returns the group name for a raw position code.
func GroupFor(position string) string {
	for _, g := range PositionGroups {
		for _, code := range g.Codes {
			if code == position {
				return g.Name
			}
		}
	}
	return OtherGroup
}

// GroupNames lists every group in display order, Other last.
func GroupNames() []string {
	names := make([]string, 0, len(PositionGroups)+1)
	for _, g := range PositionGroups {
		names = append(names, g.Name)
	}
	return append(names, OtherGroup)
}
