package logger

import (
	"fmt"
	"time"
)

// LogAndMeasureExecutionTime logs the start of the named operation at trace
// level and returns a function that logs its end together with the elapsed
// time. Usage: defer LogAndMeasureExecutionTime(log, "name")()
func LogAndMeasureExecutionTime(log *Logger, functionName string, args ...interface{}) (onEnd func()) {
	if len(args) > 0 {
		functionName = fmt.Sprintf(functionName, args...)
	}
	start := time.Now()
	log.Tracef("%s start", functionName)
	return func() {
		log.Tracef("%s end. Took: %s", functionName, time.Since(start))
	}
}
