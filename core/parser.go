package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Update line prefixes sent by the game engine.
const (
	prefixResearchPoints = "rp"
	prefixResource       = "r"
	prefixUnit           = "u"
	prefixCity           = "c"
	prefixCityTile       = "ct"
	prefixRoad           = "ccd"

	// DoneMarker terminates one turn's update block.
	DoneMarker = "D_DONE"
	// FinishMarker ends the agent's command output for a turn.
	FinishMarker = "D_FINISH"
)

// Init is the match header sent once before the first update.
type Init struct {
	Team   int
	Width  int
	Height int
}

// ResearchRecord is an "rp" line.
type ResearchRecord struct {
	Team   int
	Points int
}

// ResourceRecord is an "r" line.
type ResourceRecord struct {
	Type   string
	X, Y   int
	Amount int
}

// UnitRecord is a "u" line.
type UnitRecord struct {
	Type     int
	Team     int
	ID       string
	X, Y     int
	Cooldown float64
	Wood     int
	Coal     int
	Uranium  int
}

// CityRecord is a "c" line.
type CityRecord struct {
	Team        int
	ID          string
	Fuel        float64
	LightUpkeep float64
}

// CityTileRecord is a "ct" line.
type CityTileRecord struct {
	Team     int
	CityID   string
	X, Y     int
	Cooldown float64
}

// RoadRecord is a "ccd" line.
type RoadRecord struct {
	X, Y  int
	Level float64
}

// Update holds every record of one turn, in arrival order.
type Update struct {
	Research  []ResearchRecord
	Resources []ResourceRecord
	Units     []UnitRecord
	Cities    []CityRecord
	CityTiles []CityTileRecord
	Roads     []RoadRecord
}

// Parser provides methods for decoding protocol lines.
var Parser = &parser{}

type parser struct{}

// Init parses the two header lines: team id, then "width height".
func (p *parser) Init(teamLine, sizeLine string) (*Init, error) {
	team, err := strconv.Atoi(strings.TrimSpace(teamLine))
	if err != nil {
		return nil, fmt.Errorf("%w: bad team id %q", ErrProtocol, teamLine)
	}
	f := strings.Fields(sizeLine)
	if len(f) != 2 {
		return nil, fmt.Errorf("%w: bad map size %q", ErrProtocol, sizeLine)
	}
	header := &Init{Team: team}
	fields := fieldReader{line: sizeLine, fields: f}
	header.Width = fields.integer()
	header.Height = fields.integer()
	if fields.err != nil {
		return nil, fields.err
	}
	if header.Width <= 0 || header.Height <= 0 {
		return nil, fmt.Errorf("%w: non-positive map size %q", ErrProtocol, sizeLine)
	}
	return header, nil
}

// ParseLine decodes one update line into u.
func (p *parser) ParseLine(line string, u *Update) error {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}

	want := map[string]int{
		prefixResearchPoints: 3,
		prefixResource:       5,
		prefixUnit:           10,
		prefixCity:           5,
		prefixCityTile:       6,
		prefixRoad:           4,
	}
	n, ok := want[f[0]]
	if !ok {
		return fmt.Errorf("%w: unknown update %q", ErrProtocol, line)
	}
	if len(f) != n {
		return fmt.Errorf("%w: expected %d fields in %q", ErrProtocol, n, line)
	}

	r := fieldReader{line: line, fields: f[1:]}
	switch f[0] {
	case prefixResearchPoints:
		u.Research = append(u.Research, ResearchRecord{Team: r.integer(), Points: r.integer()})
	case prefixResource:
		u.Resources = append(u.Resources, ResourceRecord{Type: r.text(), X: r.integer(), Y: r.integer(), Amount: r.integer()})
	case prefixUnit:
		u.Units = append(u.Units, UnitRecord{
			Type: r.integer(), Team: r.integer(), ID: r.text(), X: r.integer(), Y: r.integer(),
			Cooldown: r.number(), Wood: r.integer(), Coal: r.integer(), Uranium: r.integer(),
		})
	case prefixCity:
		u.Cities = append(u.Cities, CityRecord{Team: r.integer(), ID: r.text(), Fuel: r.number(), LightUpkeep: r.number()})
	case prefixCityTile:
		u.CityTiles = append(u.CityTiles, CityTileRecord{Team: r.integer(), CityID: r.text(), X: r.integer(), Y: r.integer(), Cooldown: r.number()})
	case prefixRoad:
		u.Roads = append(u.Roads, RoadRecord{X: r.integer(), Y: r.integer(), Level: r.number()})
	}
	return r.err
}

// fieldReader consumes fields in order and keeps the first conversion error.
type fieldReader struct {
	line   string
	fields []string
	pos    int
	err    error
}

func (r *fieldReader) next() string {
	s := r.fields[r.pos]
	r.pos++
	return s
}

func (r *fieldReader) text() string {
	return r.next()
}

func (r *fieldReader) integer() int {
	s := r.next()
	v, err := strconv.Atoi(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%w: bad integer %q in %q", ErrProtocol, s, r.line)
	}
	return v
}

func (r *fieldReader) number() float64 {
	s := r.next()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%w: bad number %q in %q", ErrProtocol, s, r.line)
	}
	return v
}
