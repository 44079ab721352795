package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv selects the logger level, e.g. "debug" or "trace". Unset or invalid means info.
const LogLevelEnv = "LINKED_CONTAINERS_LOG_LEVEL"

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}
	msg := entry.Message
	if id, ok := entry.Data["container"]; ok {
		msg = fmt.Sprintf("[%v] %s", id, msg)
	}
	return []byte(fmt.Sprintf("%s %-5s %s - %s\n", timestamp, level, function, msg)), nil
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(levelFromEnv())
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv(LogLevelEnv))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
