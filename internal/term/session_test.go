package term

import (
	"bytes"
	"context"
	"github.com/fpawel/molcal/internal/config"
	"github.com/fpawel/molcal/internal/data"
	"github.com/fpawel/molcal/internal/form"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/stoich"
	"github.com/powerman/structlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fixture struct {
	ctrl *form.Controller
	reg  *registry.Registry
	out  *bytes.Buffer
	s    *Session
	dir  string
}

func newFixture(t *testing.T) (*fixture, func()) {
	db, err := data.Open(":memory:")
	require.NoError(t, err)
	dir, err := ioutil.TempDir("", "molcal-term")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.ExportFile = filepath.Join(dir, cfg.ExportFile)
	log := structlog.New()

	x := &fixture{
		ctrl: form.New(form.WithResetOnEscape(cfg.ResetOnEscape)),
		reg:  registry.Open(context.Background(), data.NewStorage(db), cfg.StorageKey, log),
		out:  new(bytes.Buffer),
		dir:  dir,
	}
	x.s = New(x.ctrl, x.reg, cfg, x.out, log)
	return x, func() {
		_ = db.Close()
		_ = os.RemoveAll(dir)
	}
}

func (x *fixture) run(t *testing.T, lines ...string) {
	require.NoError(t, x.s.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n")))
}

func TestSessionScenario(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()

	x.run(t,
		"set mw 100",
		"set weight 500",
		"",
		"set name B",
		"set mw 50",
		"set eq 2",
		"!",
		"export",
		"quit",
		"set name never",
	)
	s := x.ctrl.State()
	require.Len(t, s.Records, 2)
	assert.Equal(t, "B", s.Records[1].Name)
	assert.True(t, s.ShowTable)
	assert.Contains(t, x.out.String(), "=> 500.0000 mg, 0.010000 mol")
	assert.Contains(t, x.out.String(), "Calculation Summary")

	_, err := xlsx.OpenFile(filepath.Join(x.dir, "MolCal.xlsx"))
	assert.NoError(t, err)
}

func TestSessionAddBlocked(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()

	x.run(t, "", "add")
	assert.Len(t, x.ctrl.State().Records, 1)
	assert.Equal(t, 2, strings.Count(x.out.String(),
		"! Please enter the weight and molecular weight for the Limiting Reactant first."))
}

func TestSessionEscapeResets(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()

	x.run(t, "set mw 100", "set weight 1", "", "", "esc")
	assert.Equal(t, form.InitialState(), x.ctrl.State())
}

func TestSessionRegistry(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()

	x.run(t,
		"db add 18.015 1 Water",
		"db add - 1.33 Dichloromethane",
		"db add - - Nothing",
		"db",
		"set mw 100",
		"set weight 1",
		"set unit g",
		"",
		"set eq 2",
		"use 1",
		"row 1",
		"db rm 2",
	)
	assert.Equal(t, []registry.Entry{{Name: "Water", MW: "18.015", Density: "1"}}, x.reg.List())
	s := x.ctrl.State()
	assert.Equal(t, 0, s.Editing)
	assert.Equal(t, stoich.Record{Name: "Water", MW: "18.015", Eq: "2", Density: "1"}, s.Records[1])
	assert.Contains(t, x.out.String(), "2. Dichloromethane  mw=- density=1.33")
	assert.Contains(t, x.out.String(), "! Enter a name and at least one of molecular weight or density.")

	rs := x.ctrl.Results()
	assert.InDelta(t, 0.36030, rs[1].Weight, 1e-9)
	assert.True(t, rs[1].HasVolume)
}

func TestSessionErrors(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()

	x.run(t, "frobnicate", "set colour red", "row x", "row 7", "use 1", "set", "db zap")
	out := x.out.String()
	assert.Contains(t, out, `! unknown command "frobnicate", type help`)
	assert.Contains(t, out, `! number expected: "x"`)
	assert.Contains(t, out, "! usage: set <name|mw|weight|unit|eq|density> <value>")
	assert.Equal(t, 7, strings.Count(out, "> ! "))
}

func TestSessionHelp(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()
	x.run(t, "help")
	assert.Contains(t, x.out.String(), "esc  reset (Escape)")
	assert.Contains(t, x.out.String(), "export [file]  write xlsx")
}

func TestSessionCanceled(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, x.s.Run(ctx, strings.NewReader("set mw 1\n")))
	assert.Equal(t, "", x.ctrl.State().Records[0].MW)
}

func TestSessionEOFEndsLine(t *testing.T) {
	x, cleanup := newFixture(t)
	defer cleanup()
	require.NoError(t, x.s.Run(context.Background(), strings.NewReader("set mw 100\n")))
	out := x.out.String()
	assert.True(t, strings.HasSuffix(out, "> \n"), "%q", out[len(out)-10:])
	assert.Equal(t, "100", x.ctrl.State().Records[0].MW)
}
