package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/fpawel/molcal/internal/app"
	"github.com/fpawel/molcal/internal/config"
	"github.com/fpawel/molcal/internal/data"
	"github.com/fpawel/molcal/internal/pkg"
	"github.com/fpawel/molcal/internal/pkg/must"
	"github.com/fpawel/molcal/internal/registry"
	"github.com/fpawel/molcal/internal/seed"
	"github.com/powerman/structlog"
	"github.com/schollz/progressbar/v3"
	"os"
)

func main() {
	pkg.InitLog()
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-db file] compounds.lua\n", os.Args[0])
		flag.PrintDefaults()
	}

	cfg, err := config.LoadOrDefault(config.File())
	if err != nil {
		log.PrintErr(err, "using", "defaults")
	}
	dbFilename := flag.String("db", app.DataFilename(cfg.Database), "sqlite database")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	x, err := seed.LoadFile(flag.Arg(0))
	if err != nil {
		// the valid entries are imported anyway
		log.PrintErr(err, "file", flag.Arg(0))
	}

	db, err := data.Open(*dbFilename)
	must.PanicIf(err)
	defer log.ErrIfFail(db.Close)

	ctx := context.Background()
	reg := registry.Open(ctx, data.NewStorage(db), cfg.StorageKey, log)

	bar := progressbar.NewOptions(len(x.Entries), progressbar.OptionSetPredictTime(true))
	err = seed.Import(ctx, reg, x.Entries, func(e registry.Entry) {
		must.PanicIf(bar.Add(1))
		bar.Describe(e.Name)
	})
	must.PanicIf(bar.Finish())
	if err != nil {
		log.PrintErr(err)
	}
	log.Info("saved compounds", "count", reg.Len(), "db", *dbFilename)
}

var log = structlog.New()
