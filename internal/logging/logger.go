package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type SetupParams struct {
	Level      string
	FormatJSON bool
	// Output defaults to stderr so logs never mix with command output.
	Output io.Writer
}

func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.Output == nil {
		params.Output = os.Stderr
	}
	logrus.SetOutput(params.Output)
}

// GetLevel maps a config string to a logrus level. Unknown values fall back
// to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
