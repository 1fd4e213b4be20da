package profiling

import (
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	memProfilingInterval  = 30 * time.Second
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoMemProfiling writes heap profiles to the named file on an interval
// and returns a function that writes one on demand.
func DoMemProfiling(fileName string) func() {
	writeMemProfile := func() {
		f, err := osCreate(fileName)
		if err != nil {
			logrus.WithError(err).Error("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logrus.WithError(err).Error("could not write memory profile")
		}
	}

	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()

	return writeMemProfile
}
