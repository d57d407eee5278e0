package logging

import (
	"fmt"
	"log"
	"os"
	"time"
)

// writeLog formats and routes one log record.
// DEBUG/INFO/WARN go to stdout via log.Println, ERROR/FATAL to stderr.
func (l *Logger) writeLog(level, msg string, fields map[string]interface{}) {
	logMsg := fmt.Sprintf("[%s] [%s] %s: %s", GetTimestamp(), level, l.name, msg)

	if len(fields) > 0 {
		logMsg += " |"
		for k, v := range fields {
			logMsg += fmt.Sprintf(" %s=%v", k, v)
		}
	}

	if level == strError || level == levelFatal {
		fmt.Fprintf(os.Stderr, "%s\n", logMsg)
	} else {
		log.Println(logMsg)
	}
}

// logf writes a printf-formatted message with the logger's persistent fields.
func (l *Logger) logf(level, msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)

	var fields map[string]interface{}
	if len(l.fields) > 0 {
		fields = cloneFields(l.fields)
	}

	l.writeLog(level, formattedMsg, fields)
}

// GetTimestamp returns an RFC3339 timestamp.
// Can be overridden via the LOG_TIMESTAMP env var for deterministic tests.
func GetTimestamp() string {
	if override := os.Getenv("LOG_TIMESTAMP"); override != "" {
		return override
	}
	return time.Now().Format(time.RFC3339)
}
