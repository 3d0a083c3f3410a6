package pkg

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
	"path/filepath"
	"runtime"
)

// PrintMerryStacktrace prints the error's stacktrace line by line, formatted
// the same way as golangs runtime package. Nothing is printed if e has no stacktrace.
func PrintMerryStacktrace(log *structlog.Logger, e error) {
	for i, fp := range merry.Stack(e) {
		fnc := runtime.FuncForPC(fp)
		if fnc == nil {
			continue
		}
		f, l := fnc.FileLine(fp)
		name := filepath.Base(fnc.Name())
		if name == "runtime.goexit" {
			continue
		}
		ident := " "
		if i > 0 {
			ident = "\t"
		}
		log.PrintErr(fmt.Sprintf("%s%s:%d %s", ident, f, l, name))
	}
}

// UserMessage returns text suitable to show to the operator.
func UserMessage(err error) string {
	if s := merry.UserMessage(err); s != "" {
		return s
	}
	return err.Error()
}
