package game

import "fmt"

// ResourceType is a harvestable resource kind.
type ResourceType int

const (
	Wood ResourceType = iota
	Coal
	Uranium
)

// Research points needed before a resource can be harvested.
const (
	CoalResearchPoints    = 50
	UraniumResearchPoints = 200
)

func (rt ResourceType) String() string {
	switch rt {
	case Wood:
		return "wood"
	case Coal:
		return "coal"
	case Uranium:
		return "uranium"
	default:
		return fmt.Sprintf("resource(%d)", int(rt))
	}
}

// ParseResourceType maps a protocol name to a ResourceType.
func ParseResourceType(name string) (ResourceType, error) {
	switch name {
	case "wood":
		return Wood, nil
	case "coal":
		return Coal, nil
	case "uranium":
		return Uranium, nil
	}
	return 0, fmt.Errorf("unknown resource type %q", name)
}

// Resource is the deposit sitting on a cell.
type Resource struct {
	Type   ResourceType `json:"type"`
	Amount int          `json:"amount"`
}

// Cargo is what a unit carries.
type Cargo struct {
	Wood    int `json:"wood"`
	Coal    int `json:"coal"`
	Uranium int `json:"uranium"`
}

// Total returns the summed amount of all resources carried.
func (c Cargo) Total() int {
	return c.Wood + c.Coal + c.Uranium
}
