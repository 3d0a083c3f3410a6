package form

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/stoich"
)

type Field string

const (
	FieldName    Field = "name"
	FieldMW      Field = "mw"
	FieldWeight  Field = "weight"
	FieldUnit    Field = "unit"
	FieldEq      Field = "eq"
	FieldDensity Field = "density"
)

var Fields = []Field{FieldName, FieldMW, FieldWeight, FieldUnit, FieldEq, FieldDensity}

var (
	ErrIncompleteLimitingReactant = merry.New("limiting reactant weight or molecular weight is blank").
					WithUserMessage("Please enter the weight and molecular weight for the Limiting Reactant first.")
	ErrNoRow        = merry.New("no such row")
	ErrUnknownField = merry.New("unknown field")
)

// State is an immutable snapshot of the form. Records[0] is the limiting reactant.
type State struct {
	Records   []stoich.Record
	Editing   int
	ShowTable bool
}

func InitialState() State {
	return State{
		Records: []stoich.Record{stoich.DefaultLimitingReactant()},
	}
}

func (s State) Unit() stoich.Unit {
	return s.Records[0].Unit
}

type Option func(*Controller)

func WithResetOnEscape(enable bool) Option {
	return func(x *Controller) {
		x.resetOnEscape = enable
	}
}

// WithOnChange sets the observer called after every mutation.
func WithOnChange(f func(State, []stoich.Result)) Option {
	return func(x *Controller) {
		x.onChange = f
	}
}

// Controller owns the list of records. Every mutation replaces the state
// with a new one and recomputes results.
type Controller struct {
	state         State
	results       []stoich.Result
	resetOnEscape bool
	onChange      func(State, []stoich.Result)
}

func New(opts ...Option) *Controller {
	x := &Controller{}
	for _, o := range opts {
		o(x)
	}
	x.set(InitialState())
	return x
}

func (x *Controller) State() State {
	return x.state
}

func (x *Controller) Results() []stoich.Result {
	return x.results
}

func (x *Controller) AddRow() error {
	lr := x.state.Records[0]
	if stoich.IsBlank(lr.Weight) || stoich.IsBlank(lr.MW) {
		return ErrIncompleteLimitingReactant.Here()
	}
	s := x.state.clone()
	s.Records = append(s.Records, stoich.Record{})
	s.Editing = len(s.Records) - 1
	s.ShowTable = false
	x.set(s)
	return nil
}

func (x *Controller) UpdateField(row int, field Field, raw string) error {
	if err := x.checkRow(row); err != nil {
		return err
	}
	s := x.state.clone()
	r := &s.Records[row]
	switch field {
	case FieldName:
		r.Name = raw
	case FieldMW:
		r.MW = raw
	case FieldWeight:
		r.Weight = raw
	case FieldUnit:
		r.Unit = stoich.Unit(raw)
	case FieldEq:
		r.Eq = raw
	case FieldDensity:
		r.Density = raw
	default:
		return merry.Appendf(ErrUnknownField, "%q", field)
	}
	x.set(s)
	return nil
}

func (x *Controller) ResetAll() {
	x.set(InitialState())
}

func (x *Controller) SelectFromRegistry(row int, e registry.Entry) error {
	if err := x.checkRow(row); err != nil {
		return err
	}
	s := x.state.clone()
	s.Records[row].Name = e.Name
	s.Records[row].MW = e.MW
	s.Records[row].Density = e.Density
	x.set(s)
	return nil
}

func (x *Controller) SelectEditing(row int) error {
	if err := x.checkRow(row); err != nil {
		return err
	}
	s := x.state.clone()
	s.Editing = row
	x.set(s)
	return nil
}

func (x *Controller) ShowTable() {
	s := x.state.clone()
	s.ShowTable = true
	x.set(s)
}

func (x *Controller) checkRow(row int) error {
	if row < 0 || row >= len(x.state.Records) {
		return merry.Appendf(ErrNoRow, "row %d of %d", row+1, len(x.state.Records))
	}
	return nil
}

func (x *Controller) set(s State) {
	x.state = s
	x.results = stoich.Compute(s.Records)
	if x.onChange != nil {
		x.onChange(x.state, x.results)
	}
}

func (s State) clone() State {
	r := s
	r.Records = make([]stoich.Record, len(s.Records), len(s.Records)+1)
	copy(r.Records, s.Records)
	return r
}
