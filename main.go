package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/datatug/filescope/pkg/explorer"
	"github.com/datatug/filescope/pkg/fsutils"
	"github.com/datatug/filescope/pkg/profiling"
)

var (
	rootDir    = flag.String("root", "", "directory to browse (defaults to the current directory)")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

func main() {
	app := newFileScopeApp()
	run(app)
}

func newFileScopeApp() (app application) {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	app = newApp()
	return
}

// browseRoot resolves the directory to open: -root flag, then the first
// positional argument, then the working directory.
func browseRoot() string {
	dir := *rootDir
	if dir == "" && flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "/"
		}
		dir = wd
	}
	return fsutils.ExpandHome(dir)
}

var newExplorer = func(dir string) (application, error) {
	return explorer.New(dir)
}

var newApp = func() application {
	app, err := newExplorer(browseRoot())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
