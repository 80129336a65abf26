package gs1decode

import (
	"time"

	"github.com/google/uuid"

	"github.com/mohammedfouly1/PharmaInventory/internal/obslog"
	"github.com/mohammedfouly1/PharmaInventory/internal/obsmetrics"
)

// DecodeWithLog wraps Decode with a structured start/complete log pair
// under a per-call correlation id, so every line from one decode
// groups together in log search across a batch job's output.
func DecodeWithLog(log *obslog.Logger, raw string, opts Options) DecodeResult {
	correlationID := uuid.NewString()
	scoped := log.DecodeLogger(correlationID)
	start := time.Now()

	scoped.LogDecodeStart(correlationID, len(raw), false)
	result := Decode(raw, opts)

	validCount, invalidCount := 0, 0
	for _, e := range result.Elements {
		if e.Valid {
			validCount++
		} else {
			invalidCount++
		}
	}

	scoped.LogDecodeComplete(correlationID, time.Since(start), validCount, invalidCount, len(result.Errors), result.Confidence, result.UsedReconstructor)

	return result
}

// DecodeWithMetrics wraps Decode with Prometheus instrumentation:
// in-flight gauge, duration histogram by path, confidence histogram,
// and the ambiguous-parse / validation-failure counters.
func DecodeWithMetrics(m *obsmetrics.Metrics, raw string, opts Options) DecodeResult {
	m.DecodesInFlight.Inc()
	defer m.DecodesInFlight.Dec()

	start := time.Now()
	result := Decode(raw, opts)
	duration := time.Since(start)

	path := "fast_path"
	if result.UsedReconstructor {
		path = "reconstructor"
		m.RecordReconstructorRun(len(result.Alternatives)+1, result.HasErrorCode(CodeAmbiguousParse), len(result.Elements) == 0)
	}

	status := "ok"
	if len(result.Errors) > 0 {
		status = "error"
	}
	m.RecordDecode(path, status, duration, result.Confidence)

	for _, e := range result.Elements {
		if !e.Valid {
			m.RecordValidationFailure(e.AI)
		}
	}
	for _, diag := range result.Errors {
		if diag.Code == CodeUnknownAI {
			m.RecordUnknownAI(diag.AI)
		}
	}

	return result
}
