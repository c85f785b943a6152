package cli

import (
	"flag"
	"io"
	"sync"

	"k8s.io/klog/v2"
)

var (
	logMu    sync.Mutex
	logFlags *flag.FlagSet
)

// setupLogging routes klog to w. Verbose raises the level to 2, which shows
// blueprint loading and fetch retries.
func setupLogging(w io.Writer, verbose bool) error {
	logMu.Lock()
	defer logMu.Unlock()

	if logFlags == nil {
		logFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(logFlags)
	}
	level := "0"
	if verbose {
		level = "2"
	}
	settings := map[string]string{
		"logtostderr":     "false",
		"alsologtostderr": "false",
		"one_output":      "true",
		"v":               level,
	}
	for name, value := range settings {
		if err := logFlags.Set(name, value); err != nil {
			return err
		}
	}
	klog.SetOutput(w)
	return nil
}
