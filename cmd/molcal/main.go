package main

import (
	"github.com/fpawel/molcal/internal/app"
	"github.com/fpawel/molcal/internal/pkg"
	"os"
)

var (
	GitCommit string
	BuildDate string
)

func main() {
	pkg.InitLog()
	if err := app.Main(app.BuildInfo{
		Commit: GitCommit,
		Date:   BuildDate,
	}); err != nil {
		os.Exit(1)
	}
}
