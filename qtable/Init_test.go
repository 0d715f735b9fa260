package qtable

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestFromSliceAliasesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	table, err := FromSlice(data, 2, 1, 2)
	require.NoError(t, err)

	table.Set(0, 0, 0, -5)
	assert.Equal(t, -5.0, data[0])
}

func TestFromSliceBadLength(t *testing.T) {
	_, err := FromSlice(make([]float64, 5), 2, 1, 2)
	require.Error(t, err)
	assert.True(t, IsBadShape(err))
}

func TestFromMatrixBroadcast(t *testing.T) {
	// A (actions x states) matrix: transposed it matches the
	// (states, actions) trailing dims exactly and is replicated
	// across agents
	m := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	table, err := FromMatrix(m, 2, 2, 3)
	require.NoError(t, err)

	for agent := 0; agent < 2; agent++ {
		assert.Equal(t, []float64{1, 3, 5}, table.ActionValues(agent, 0))
		assert.Equal(t, []float64{2, 4, 6}, table.ActionValues(agent, 1))
	}
}

func TestFromMatrixBroadcastSingletonState(t *testing.T) {
	// A single-column matrix broadcasts across all states
	m := mat.NewDense(3, 1, []float64{1, 2, 3})

	table, err := FromMatrix(m, 1, 4, 3)
	require.NoError(t, err)

	for state := 0; state < 4; state++ {
		assert.Equal(t, []float64{1, 2, 3}, table.ActionValues(0, state))
	}
}

func TestFromMatrixNotBroadcastable(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := FromMatrix(m, 2, 2, 3)
	require.Error(t, err)
	assert.True(t, IsBadShape(err))
}

func TestFromRandomBounds(t *testing.T) {
	bounds := r1.Interval{Min: -2, Max: 3}
	table := FromRandom(4, 2, 3, bounds, rand.NewSource(42))

	for agent := 0; agent < 4; agent++ {
		for state := 0; state < 2; state++ {
			for action := 0; action < 3; action++ {
				value := table.At(agent, state, action)
				assert.GreaterOrEqual(t, value, -2.0)
				assert.Less(t, value, 3.0)
			}
		}
	}
}

func TestFromRandomDeterministicSeed(t *testing.T) {
	bounds := r1.Interval{Min: 0, Max: 1}
	a := FromRandom(2, 1, 2, bounds, rand.NewSource(7))
	b := FromRandom(2, 1, 2, bounds, rand.NewSource(7))

	assert.Equal(t, a.raw(), b.raw())
}

func TestFromTemplateAligned(t *testing.T) {
	table, err := FromTemplate(Aligned, 3, 1, 2)
	require.NoError(t, err)

	for agent := 0; agent < 3; agent++ {
		assert.Equal(t, -1.0, table.At(agent, 0, 0))
		assert.Equal(t, -2.0, table.At(agent, 0, 1))
	}
}

func TestFromTemplateMisaligned(t *testing.T) {
	table, err := FromTemplate(Misaligned, 3, 1, 2)
	require.NoError(t, err)

	for agent := 0; agent < 3; agent++ {
		assert.Equal(t, -2.0, table.At(agent, 0, 0))
		assert.Equal(t, -1.0, table.At(agent, 0, 1))
	}
}

func TestFromTemplateRowsFollowStates(t *testing.T) {
	table, err := FromTemplate(Aligned, 1, 3, 3)
	require.NoError(t, err)

	// Each state's preferred action lies on the diagonal
	assert.Equal(t, []float64{-1, -2, -2}, table.ActionValues(0, 0))
	assert.Equal(t, []float64{-2, -1, -2}, table.ActionValues(0, 1))
	assert.Equal(t, []float64{-2, -2, -1}, table.ActionValues(0, 2))
}

func TestFromTemplateUnsupportedActions(t *testing.T) {
	_, err := FromTemplate(Aligned, 2, 1, 4)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))

	_, err = FromTemplate(Misaligned, 2, 1, 1)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestConfigsCreate(t *testing.T) {
	src := rand.NewSource(1)

	table, err := UniformConfig{Bounds: r1.Interval{Min: 0, Max: 1}}.
		Create(2, 1, 2, src)
	require.NoError(t, err)
	assert.NoError(t, table.Validate(2, 1, 2))

	table, err = TemplateConfig{Kind: Aligned}.Create(2, 1, 3, src)
	require.NoError(t, err)
	assert.Equal(t, -1.0, table.At(1, 0, 0))

	table, err = SliceConfig{Data: []float64{1, 2}}.Create(1, 1, 2, src)
	require.NoError(t, err)
	assert.Equal(t, 2.0, table.At(0, 0, 1))

	m := mat.NewDense(1, 1, []float64{3})
	table, err = MatrixConfig{M: m}.Create(2, 2, 2, src)
	require.NoError(t, err)
	assert.Equal(t, 3.0, table.At(1, 1, 1))
}
