package misc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger()

var (
	ErrLogger  = Log.WithField("tag", "FAIL")
	WarnLogger = Log.WithField("tag", "WARN")
	InfoLogger = Log.WithField("tag", "INFO")
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log
}

// SetVerbose switches between info and debug logging.
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}

// SetQuiet drops everything below warnings, used by the terminal front end
// which owns stdout and stderr.
func SetQuiet(w io.Writer) {
	Log.SetOutput(w)
	Log.SetLevel(logrus.WarnLevel)
}

func CheckFileExists(path string) (bool, error) {
	// check if file exists
	info, err := os.Stat(path)

	if err == nil { // file exists
		mode := info.Mode()
		if !mode.IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) { // file does not exists
		return false, nil
	} else { // unable to check if file exists or not
		return false, err
	}
}
