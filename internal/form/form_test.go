package form

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/stoich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func fillLimitingReactant(t *testing.T, x *Controller) {
	require.NoError(t, x.UpdateField(0, FieldMW, "100"))
	require.NoError(t, x.UpdateField(0, FieldWeight, "500"))
}

func TestInitialState(t *testing.T) {
	x := New()
	s := x.State()
	require.Len(t, s.Records, 1)
	assert.Equal(t, stoich.DefaultLimitingReactant(), s.Records[0])
	assert.Equal(t, 0, s.Editing)
	assert.False(t, s.ShowTable)
	assert.Equal(t, []stoich.Result{{}}, x.Results())
}

func TestAddRowRejectedWhenLimitingReactantBlank(t *testing.T) {
	x := New()
	err := x.AddRow()
	assert.True(t, merry.Is(err, ErrIncompleteLimitingReactant))
	assert.Equal(t, "Please enter the weight and molecular weight for the Limiting Reactant first.", merry.UserMessage(err))
	assert.Len(t, x.State().Records, 1)

	require.NoError(t, x.UpdateField(0, FieldMW, "100"))
	assert.Error(t, x.AddRow())
	require.NoError(t, x.UpdateField(0, FieldWeight, "  "))
	assert.Error(t, x.HandleKey(KeyEnter))
	assert.Len(t, x.State().Records, 1)
}

func TestAddRowAndCompute(t *testing.T) {
	x := New()
	fillLimitingReactant(t, x)
	x.ShowTable()
	require.NoError(t, x.AddRow())

	s := x.State()
	require.Len(t, s.Records, 2)
	assert.Equal(t, 1, s.Editing)
	assert.False(t, s.ShowTable)
	assert.Equal(t, stoich.Record{}, s.Records[1])

	require.NoError(t, x.UpdateField(1, FieldMW, "50"))
	require.NoError(t, x.UpdateField(1, FieldEq, "2"))
	rs := x.Results()
	require.Len(t, rs, 2)
	assert.InDelta(t, 0.01, rs[1].Moles, 1e-12)
	assert.InDelta(t, 500, rs[1].Weight, 1e-9)
}

func TestUpdateFieldErrors(t *testing.T) {
	x := New()
	before := x.State()
	assert.True(t, merry.Is(x.UpdateField(1, FieldMW, "1"), ErrNoRow))
	assert.True(t, merry.Is(x.UpdateField(-1, FieldMW, "1"), ErrNoRow))
	assert.True(t, merry.Is(x.UpdateField(0, Field("colour"), "red"), ErrUnknownField))
	assert.Equal(t, before, x.State())
}

func TestUpdateEveryField(t *testing.T) {
	x := New()
	values := map[Field]string{
		FieldName:    "Benzaldehyde",
		FieldMW:      "106.12",
		FieldWeight:  "2",
		FieldUnit:    "g",
		FieldEq:      "1",
		FieldDensity: "1.044",
	}
	for _, f := range Fields {
		require.NoError(t, x.UpdateField(0, f, values[f]))
	}
	assert.Equal(t, stoich.Record{
		Name: "Benzaldehyde", MW: "106.12", Weight: "2", Unit: stoich.UnitG, Eq: "1", Density: "1.044",
	}, x.State().Records[0])
	assert.Equal(t, stoich.UnitG, x.State().Unit())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	x := New()
	fillLimitingReactant(t, x)
	require.NoError(t, x.AddRow())
	old := x.State()
	require.NoError(t, x.UpdateField(1, FieldName, "B"))
	require.NoError(t, x.AddRow())
	assert.Equal(t, "", old.Records[1].Name)
	assert.Len(t, old.Records, 2)
	assert.Equal(t, "B", x.State().Records[1].Name)
}

func TestResetAll(t *testing.T) {
	x := New()
	fillLimitingReactant(t, x)
	require.NoError(t, x.AddRow())
	require.NoError(t, x.AddRow())
	x.ShowTable()
	x.ResetAll()
	assert.Equal(t, InitialState(), x.State())
	assert.Equal(t, []stoich.Result{{}}, x.Results())
}

func TestSelectFromRegistry(t *testing.T) {
	x := New()
	fillLimitingReactant(t, x)
	require.NoError(t, x.AddRow())
	require.NoError(t, x.UpdateField(1, FieldEq, "3"))
	require.NoError(t, x.SelectFromRegistry(1, registry.Entry{Name: "Water", MW: "18.015", Density: "1"}))

	r := x.State().Records[1]
	assert.Equal(t, stoich.Record{Name: "Water", MW: "18.015", Eq: "3", Density: "1"}, r)
	assert.True(t, x.Results()[1].HasVolume)

	assert.True(t, merry.Is(x.SelectFromRegistry(5, registry.Entry{Name: "x"}), ErrNoRow))
}

func TestSelectEditing(t *testing.T) {
	x := New()
	fillLimitingReactant(t, x)
	require.NoError(t, x.AddRow())
	require.NoError(t, x.SelectEditing(0))
	assert.Equal(t, 0, x.State().Editing)
	assert.Error(t, x.SelectEditing(2))
	assert.Equal(t, 0, x.State().Editing)
}

func TestHandleKey(t *testing.T) {
	x := New(WithResetOnEscape(true))
	fillLimitingReactant(t, x)
	require.NoError(t, x.HandleKey(KeyEnter))
	assert.Len(t, x.State().Records, 2)
	require.NoError(t, x.HandleKey(KeyShiftEnter))
	assert.True(t, x.State().ShowTable)
	require.NoError(t, x.HandleKey(KeyEscape))
	assert.Equal(t, InitialState(), x.State())

	y := New()
	fillLimitingReactant(t, y)
	require.NoError(t, y.HandleKey(KeyEscape))
	assert.Equal(t, "100", y.State().Records[0].MW)
}

func TestOnChange(t *testing.T) {
	var calls int
	var last []stoich.Result
	x := New(WithOnChange(func(_ State, rs []stoich.Result) {
		calls++
		last = rs
	}))
	assert.Equal(t, 1, calls)
	fillLimitingReactant(t, x)
	assert.Equal(t, 3, calls)
	assert.True(t, last[0].Computed)

	_ = x.UpdateField(9, FieldMW, "1")
	assert.Equal(t, 3, calls)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Shift+Enter", KeyShiftEnter.String())
	assert.Equal(t, "?", Key(42).String())
}
