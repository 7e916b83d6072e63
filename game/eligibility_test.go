package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityFilter_Thresholds(t *testing.T) {
	filter := EligibilityFilter{WoodMinAmount: 400}
	testCases := []struct {
		name     string
		research int
		resource Resource
		expected bool
	}{
		{"wood at threshold", 0, Resource{Type: Wood, Amount: 400}, false},
		{"wood above threshold", 0, Resource{Type: Wood, Amount: 401}, true},
		{"coal unlocked", CoalResearchPoints, Resource{Type: Coal, Amount: 1}, true},
		{"coal locked", CoalResearchPoints - 1, Resource{Type: Coal, Amount: 10000}, false},
		{"uranium unlocked", UraniumResearchPoints, Resource{Type: Uranium, Amount: 1}, true},
		{"uranium locked", UraniumResearchPoints - 1, Resource{Type: Uranium, Amount: 10000}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			player := NewPlayer(0)
			player.ResearchPoints = tc.research
			assert.Equal(t, tc.expected, filter.IsEligible(player, &tc.resource))
		})
	}
}

func TestEligibilityFilter_RebuildScanOrder(t *testing.T) {
	state := stateWith(t, 4, 3, newUpdate().
		research(0, 60).
		resource("coal", 3, 0, 10).
		resource("wood", 0, 2, 900).
		resource("wood", 1, 1, 100).
		resource("uranium", 2, 2, 50).
		resource("coal", 0, 1, 5))

	eligible := EligibilityFilter{WoodMinAmount: 400}.Rebuild(state.Map, state.Player())

	positions := make([]Position, 0, len(eligible))
	for _, cell := range eligible {
		positions = append(positions, cell.Pos)
	}
	assert.Equal(t, []Position{{X: 3, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}, positions)
}

func TestEligibilityFilter_RebuildIsDeterministic(t *testing.T) {
	state := stateWith(t, 5, 5, newUpdate().
		research(0, 250).
		resource("wood", 4, 4, 1000).
		resource("uranium", 1, 3, 20).
		resource("coal", 2, 0, 10))
	filter := EligibilityFilter{WoodMinAmount: 400}

	first := filter.Rebuild(state.Map, state.Player())
	second := filter.Rebuild(state.Map, state.Player())
	require.Equal(t, first, second)

	first[0].Pos = Position{X: 99, Y: 99}
	assert.NotEqual(t, first[0].Pos, second[0].Pos, "each rebuild owns its slice")
}

func TestEligibilityFilter_EmptyBoard(t *testing.T) {
	state := newTestState(t, 3, 3)
	eligible := EligibilityFilter{WoodMinAmount: 400}.Rebuild(state.Map, state.Player())
	assert.NotNil(t, eligible)
	assert.Empty(t, eligible)
}
