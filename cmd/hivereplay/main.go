// Command hivereplay loads a recorded Hive game history from disk, replays
// it turn by turn through the rules engine, and reports whether the
// history's own recorded result agrees with the result the rules compute.
// It exists for the same reason the original engine's small main.rs does:
// a cheap way to catch a divergence between a stored game log and the
// current rules without standing up anything server-shaped.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	hive "github.com/IlikeChooros/hive"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		klog.Exit("usage: hivereplay <history-file>")
	}

	if err := run(path); err != nil {
		klog.Exitf("hivereplay: %v", err)
	}
}

func run(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	reported, text := extractReportedResult(string(raw))
	h, err := hive.ParseHistory(text)
	if err != nil {
		return errors.Wrap(err, "parsing history")
	}

	state, err := hive.FromHistory(h)
	if err != nil {
		return errors.Wrap(err, "replaying history")
	}

	actual := "Unknown"
	if state.Status() == hive.Finished {
		actual = state.Result().String()
	}

	klog.Infof("replayed %d turns, result: %s", state.Turn, actual)

	if reported != "" && reported != actual {
		return &hive.ResultMismatch{Reported: reported, Actual: actual}
	}
	return nil
}

// extractReportedResult pulls a trailing "White won" / "Black won" /
// "It's a draw" annotation line out of raw history text, if one is
// present, returning the remaining text unchanged for ParseHistory (which
// already knows how to skip such lines on its own, but the reported value
// itself is only useful to the caller).
func extractReportedResult(text string) (reported, rest string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "White won", "Black won", "It's a draw":
			return line, text
		}
	}
	return "", text
}
