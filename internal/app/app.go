package app

import (
	"context"
	"github.com/ansel1/merry"
	"github.com/containerd/console"
	"github.com/fpawel/molcal/internal/config"
	"github.com/fpawel/molcal/internal/data"
	"github.com/fpawel/molcal/internal/form"
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/term"
	"github.com/powerman/structlog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

type BuildInfo struct {
	Commit string
	Date   string
}

func Main(buildInfo BuildInfo) error {
	log.Debug("start", "commit", buildInfo.Commit, "date", buildInfo.Date)

	cfg, err := config.LoadOrDefault(config.File())
	if err != nil {
		log.PrintErr(merry.Prepend(err, "config"), "using", "defaults")
	}

	// application context, canceled by system signal
	ctx, interrupt := context.WithCancel(context.Background())
	defer interrupt()
	go func() {
		done := make(chan os.Signal, 1)
		signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
		sig := <-done
		log.Debug("system signal: " + sig.String())
		interrupt()
		_ = os.Stdin.Close()
	}()

	dbFilename := DataFilename(cfg.Database)
	log.Debug("open database: " + dbFilename)
	db, err := data.Open(dbFilename)
	if err != nil {
		return log.Err(merry.Prepend(err, "open database"), "file", dbFilename)
	}
	defer log.ErrIfFail(db.Close)

	reg := registry.Open(ctx, data.NewStorage(db), cfg.StorageKey,
		pkg.LogPrependSuffixKeys(log.New(structlog.KeyUnit, "registry"), "key", cfg.StorageKey))
	ctrl := form.New(form.WithResetOnEscape(cfg.ResetOnEscape))

	session := term.New(ctrl, reg, cfg, os.Stdout, log.New(structlog.KeyUnit, "term"))
	session.SetWidth(terminalWidth)

	if err := session.Run(ctx, os.Stdin); err != nil && !merry.Is(err, context.Canceled) {
		log.PrintErr(err)
		pkg.PrintMerryStacktrace(log, err)
		return err
	}
	log.Debug("all canceled and closed")
	return nil
}

// DataFilename resolves relative file name against the executable's directory.
func DataFilename(name string) string {
	if name == ":memory:" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(pkg.ExeDir(), name)
}

func terminalWidth() int {
	c, err := console.ConsoleFromFile(os.Stdout)
	if err != nil {
		return 0
	}
	size, err := c.Size()
	if err != nil {
		return 0
	}
	return int(size.Width)
}

var log = structlog.New()
