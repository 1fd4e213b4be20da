package profiling

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var (
	osCreate             = os.Create
	pprofStartCPUProfile = pprof.StartCPUProfile
)

// DoCPUProfiling starts CPU profiling into the named file. The returned
// stop function is never nil, so callers can defer it unconditionally.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		logrus.WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logrus.WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
