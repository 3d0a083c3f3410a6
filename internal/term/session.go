package term

import (
	"bufio"
	"context"
	"fmt"
	"github.com/ansel1/merry"
	"github.com/fpawel/molcal/internal/config"
	"github.com/fpawel/molcal/internal/form"
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/sheet"
	"github.com/fpawel/molcal/internal/stoich"
	"github.com/powerman/structlog"
	"io"
	"strings"
)

// Session reads commands line by line and drives the form. An empty line is
// Enter, "!" is Shift+Enter and "esc" is Escape.
type Session struct {
	ctrl  *form.Controller
	reg   *registry.Registry
	cfg   config.Config
	out   io.Writer
	log   *structlog.Logger
	width func() int
}

var errQuit = merry.New("quit")

func New(ctrl *form.Controller, reg *registry.Registry, cfg config.Config, out io.Writer, log *structlog.Logger) *Session {
	return &Session{
		ctrl:  ctrl,
		reg:   reg,
		cfg:   cfg,
		out:   out,
		log:   log,
		width: func() int { return 0 },
	}
}

// SetWidth sets the function giving terminal width for the results table.
func (x *Session) SetWidth(f func() int) {
	x.width = f
}

func (x *Session) Run(ctx context.Context, in io.Reader) error {
	x.printForm()
	scanner := bufio.NewScanner(in)
	for {
		x.printf("> ")
		if !scanner.Scan() {
			x.printf("\n")
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		err := x.Exec(ctx, scanner.Text())
		if merry.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			x.printf("! %s\n", pkg.UserMessage(err))
			x.log.Debug("command failed", "line", scanner.Text(), "err", err)
		}
	}
	return scanner.Err()
}

// Exec runs one command line.
func (x *Session) Exec(ctx context.Context, line string) error {
	line = strings.TrimRight(line, "\r\n")
	name, rest := splitWord(strings.TrimSpace(line))
	switch name {
	case "":
		return x.key(form.KeyEnter)
	case "!":
		return x.key(form.KeyShiftEnter)
	case "esc", "\x1b":
		return x.key(form.KeyEscape)
	}
	c, ok := commands[name]
	if !ok {
		return merry.Errorf("unknown command %q", name).WithUserMessagef("unknown command %q, type help", name)
	}
	return c.run(x, ctx, rest)
}

func (x *Session) key(k form.Key) error {
	if err := x.ctrl.HandleKey(k); err != nil {
		return err
	}
	x.log.Debug("key", "key", k)
	x.printForm()
	return nil
}

func (x *Session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(x.out, format, args...)
}

func (x *Session) printForm() {
	s := x.ctrl.State()
	ds := stoich.Format(x.ctrl.Results(), x.cfg.Precision)
	unit := s.Unit().String()
	for i, r := range s.Records {
		mark := " "
		if i == s.Editing {
			mark = "*"
		}
		title := fmt.Sprintf("Compound %d", i+1)
		if i == 0 {
			title = stoich.LimitingReactantName
		}
		x.printf("%s %d. %-18s name=%q mw=%q density=%q", mark, i+1, title, r.Name, r.MW, r.Density)
		if i == 0 {
			x.printf(" weight=%q unit=%s", r.Weight, unit)
		} else {
			x.printf(" eq=%q", r.Eq)
		}
		if d := ds[i]; d.Weight != "" {
			x.printf("  => %s %s", d.Weight, unit)
			if d.Volume != "" {
				x.printf(", %s mL", d.Volume)
			}
			x.printf(", %s mol", d.Moles)
		}
		x.printf("\n")
	}
	if s.ShowTable {
		x.printTable()
	}
}

func (x *Session) printTable() {
	s := x.ctrl.State()
	x.printf("\nCalculation Summary\n")
	t := sheet.Build(s.Records, x.ctrl.Results(), x.cfg.Precision)
	if err := sheet.WriteText(x.out, t, x.width()); err != nil {
		x.log.PrintErr(err)
	}
	x.printf("\n")
}

func splitWord(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
