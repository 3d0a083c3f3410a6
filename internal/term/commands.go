package term

import (
	"context"
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/form"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/sheet"
	"sort"
	"strconv"
	"strings"
)

type command struct {
	usage string
	run   func(x *Session, ctx context.Context, args string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"set": {"set <name|mw|weight|unit|eq|density> <value>  edit current row", cmdSet},
		"row": {"row <n>  make row n current", cmdRow},
		"add": {"add  add compound (Enter)", func(x *Session, _ context.Context, _ string) error {
			return x.key(form.KeyEnter)
		}},
		"table": {"table  show calculation summary (Shift+Enter, or !)", func(x *Session, _ context.Context, _ string) error {
			return x.key(form.KeyShiftEnter)
		}},
		"reset": {"reset  start over with the limiting reactant only", func(x *Session, _ context.Context, _ string) error {
			x.ctrl.ResetAll()
			x.printForm()
			return nil
		}},
		"use":    {"use <n>  fill current row from saved compound n", cmdUse},
		"db":     {"db | db add <mw> <density> <name> | db rm <n>  saved compounds, - for blank", cmdDB},
		"export": {"export [file]  write xlsx", cmdExport},
		"help":   {"help", cmdHelp},
		"quit": {"quit", func(*Session, context.Context, string) error {
			return errQuit
		}},
	}
}

func cmdSet(x *Session, _ context.Context, args string) error {
	field, value := splitWord(args)
	if field == "" {
		return usageErr("set")
	}
	s := x.ctrl.State()
	if err := x.ctrl.UpdateField(s.Editing, form.Field(field), value); err != nil {
		return err
	}
	x.printForm()
	return nil
}

func cmdRow(x *Session, _ context.Context, args string) error {
	n, err := parseIndex(args)
	if err != nil {
		return err
	}
	if err := x.ctrl.SelectEditing(n); err != nil {
		return err
	}
	x.printForm()
	return nil
}

func cmdUse(x *Session, _ context.Context, args string) error {
	n, err := parseIndex(args)
	if err != nil {
		return err
	}
	e, err := x.reg.Get(n)
	if err != nil {
		return err
	}
	if err := x.ctrl.SelectFromRegistry(x.ctrl.State().Editing, e); err != nil {
		return err
	}
	x.printForm()
	return nil
}

func cmdDB(x *Session, ctx context.Context, args string) error {
	sub, rest := splitWord(args)
	switch sub {
	case "", "ls":
		for i, e := range x.reg.List() {
			x.printf("%3d. %s  mw=%s density=%s\n", i+1, e.Name, orDash(e.MW), orDash(e.Density))
		}
		return nil
	case "add":
		mw, rest := splitWord(rest)
		density, name := splitWord(rest)
		e := registry.Entry{Name: name, MW: blankDash(mw), Density: blankDash(density)}
		if err := x.reg.Add(ctx, e); err != nil {
			return err
		}
		x.log.Info("compound saved", "name", e.Name)
		return nil
	case "rm":
		n, err := parseIndex(rest)
		if err != nil {
			return err
		}
		return x.reg.Remove(ctx, n)
	default:
		return usageErr("db")
	}
}

func cmdExport(x *Session, _ context.Context, args string) error {
	filename := args
	if filename == "" {
		filename = x.cfg.ExportFile
	}
	s := x.ctrl.State()
	t := sheet.Build(s.Records, x.ctrl.Results(), x.cfg.Precision)
	if err := sheet.WriteXlsx(filename, x.cfg.SheetName, t); err != nil {
		return err
	}
	x.log.Info("exported", "file", filename, "rows", len(t.Rows))
	x.printf("saved %s\n", filename)
	return nil
}

func cmdHelp(x *Session, _ context.Context, _ string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	x.printf("<empty line>  add compound (Enter)\n!  show table (Shift+Enter)\n")
	if x.cfg.ResetOnEscape {
		x.printf("esc  reset (Escape)\n")
	}
	for _, name := range names {
		x.printf("%s\n", commands[name].usage)
	}
	return nil
}

// parseIndex converts 1-based number typed by user to index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, merry.Errorf("number expected: %q", s).WithUserMessagef("number expected: %q", s)
	}
	return n - 1, nil
}

func usageErr(name string) error {
	return merry.Errorf("usage: %s", name).WithUserMessage("usage: " + commands[name].usage)
}

func blankDash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
