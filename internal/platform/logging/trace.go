package logging

import (
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})$`)

var (
	projectIDOnce sync.Once
	projectID     string
)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

// parseTraceparent extracts the trace context from a traceparent header.
// All-zero trace and span IDs are invalid.
func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil || m[1] == "ff" {
		return traceContext{}, false
	}
	if m[2] == "00000000000000000000000000000000" || m[3] == "0000000000000000" {
		return traceContext{}, false
	}
	return traceContext{
		traceID: m[2],
		spanID:  m[3],
		sampled: m[4] == "01",
	}, true
}

func (tc traceContext) resource(project string) string {
	return "projects/" + project + "/traces/" + tc.traceID
}

func (tc traceContext) fields(project string) []zap.Field {
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", tc.resource(project)),
		zap.String("logging.googleapis.com/spanId", tc.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", tc.sampled),
	}
}

// gcpProjectID returns the first project ID found in the environment, cached for the process lifetime.
func gcpProjectID() string {
	projectIDOnce.Do(func() {
		for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT", "PROJECT_ID"} {
			if v := os.Getenv(key); v != "" {
				projectID = v
				return
			}
		}
	})
	return projectID
}
