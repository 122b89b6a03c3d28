package log

import (
	"io/ioutil"
	"os"

	logging "github.com/op/go-logging"
)

var (
	logger      = logging.MustGetLogger("awxinv")
	logfile     *os.File
	initialized = false

	// Debug proxy
	Debug = logger.Debug
	// Debugf proxy
	Debugf = logger.Debugf
	// Warningf proxy
	Warningf = logger.Warningf
)

// Initialize logger. An empty filename discards all the messages so
// nothing but the inventory ever reaches stdout. Unless debug is set
// only warnings and errors are written.
func Initialize(logFilename string, debug bool) error {
	if logFilename == "" {
		setupNullLogger()
		return nil
	}

	f, err := os.OpenFile(logFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		setupNullLogger()
		return err
	}
	logfile = f

	backend := logging.NewLogBackend(logfile, "", 0)
	format := logging.MustStringFormatter(
		`[%{time:15:04:05.000}] %{level:.4s} %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
	logger.Debug("logger initialized")
	initialized = true
	return nil
}

// Finalize closes the log file if one was opened
func Finalize() {
	if logfile != nil {
		logfile.Close()
		logfile = nil
	}
	initialized = false
}

func setupNullLogger() {
	backend := logging.NewLogBackend(ioutil.Discard, "", 0)
	logging.SetBackend(backend)
}
