package shared

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// Trace runs do and returns its wall time. Start and end are logged at
// V(1) under tag.
func Trace(tag string, do func()) time.Duration {
	return trace(tag, func() string {
		do()
		return ""
	})
}

// TraceWithReturn runs do and returns its result and wall time. The result
// is included in the end log line.
func TraceWithReturn[R any](tag string, do func() R) (result R, elapsed time.Duration) {
	elapsed = trace(tag, func() string {
		result = do()
		return fmt.Sprintf(" = %v", result)
	})
	return
}

func trace(tag string, do func() string) time.Duration {
	start := time.Now()
	glog.V(1).Infof("[%-8s]%s (%d)\n", "start", tag, start.UnixMilli())
	doTag := do()
	end := time.Now()
	elapsed := end.Sub(start)
	millis := float32(elapsed) / float32(time.Millisecond)
	glog.V(1).Infof("[%-8s]%s (%.2fms) (%d)%s\n", "end", tag, millis, end.UnixMilli(), doTag)
	return elapsed
}
