package seed

import (
	"context"
	"fmt"
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/hashicorp/go-multierror"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"
)

// Compound as written in seed file. Zero number means not given.
type Compound struct {
	Name    string
	MW      float64
	Density float64
}

const floatPrecision = 6

func (c Compound) Entry() registry.Entry {
	e := registry.Entry{Name: c.Name}
	if c.MW != 0 {
		e.MW = pkg.FormatFloat(c.MW, floatPrecision)
	}
	if c.Density != 0 {
		e.Density = pkg.FormatFloat(c.Density, floatPrecision)
	}
	return e
}

// Seed collects compounds declared by a lua script. A script may call
//   Compound{ name = "Water", mw = 18.015, density = 1 }
//   Add("Ethanol", 46.07, 0.789)
// or assign a global table `compounds` of tables shaped as in Compound{...}.
type Seed struct {
	Entries []registry.Entry
	errs    *multierror.Error
}

func LoadFile(filename string) (Seed, error) {
	return load(func(L *lua.LState) error { return L.DoFile(filename) })
}

func LoadString(source string) (Seed, error) {
	return load(func(L *lua.LState) error { return L.DoString(source) })
}

// load returns the valid entries together with an error listing the invalid ones.
func load(do func(*lua.LState) error) (Seed, error) {
	L := lua.NewState()
	defer L.Close()

	var x Seed
	L.SetGlobal("Compound", L.NewFunction(func(L *lua.LState) int {
		x.addTable(L.CheckTable(1))
		return 0
	}))
	L.SetGlobal("Add", luar.New(L, func(name string, mw, density float64) {
		x.add(Compound{Name: name, MW: mw, Density: density})
	}))

	if err := do(L); err != nil {
		return Seed{}, merry.Prepend(err, "seed script")
	}

	switch v := L.GetGlobal("compounds").(type) {
	case *lua.LTable:
		v.ForEach(func(k lua.LValue, item lua.LValue) {
			t, ok := item.(*lua.LTable)
			if !ok {
				x.errs = multierror.Append(x.errs, merry.Errorf("compounds[%s]: table expected, got %s", k, item.Type()))
				return
			}
			x.addTable(t)
		})
	case *lua.LNilType:
	default:
		x.errs = multierror.Append(x.errs, merry.Errorf("compounds: table expected, got %s", v.Type()))
	}
	return x, x.errs.ErrorOrNil()
}

func (x *Seed) addTable(t *lua.LTable) {
	var c Compound
	if err := gluamapper.Map(t, &c); err != nil {
		x.errs = multierror.Append(x.errs, merry.Prepend(err, "compound"))
		return
	}
	x.add(c)
}

func (x *Seed) add(c Compound) {
	e := c.Entry()
	if err := e.Validate(); err != nil {
		x.errs = multierror.Append(x.errs, err)
		return
	}
	x.Entries = append(x.Entries, e)
}

// Import adds entries to the registry one by one, calling progress after each.
// Failed entries do not stop the import.
func Import(ctx context.Context, reg *registry.Registry, entries []registry.Entry, progress func(registry.Entry)) error {
	var errs *multierror.Error
	for i, e := range entries {
		if err := reg.Add(ctx, e); err != nil {
			errs = multierror.Append(errs, merry.Prepend(err, fmt.Sprintf("%d: %s", i+1, e.Name)))
		}
		if progress != nil {
			progress(e)
		}
	}
	return errs.ErrorOrNil()
}
