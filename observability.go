package arc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

type noopLogger struct{}

func (noopLogger) With(string, any) Logger { return noopLogger{} }
func (noopLogger) Info(string, ...any)     {}
func (noopLogger) Error(string, ...any)    {}

type noopObserver struct{}

func (noopObserver) SystemCompleted(UpdateSummary) {}

type compositeObserver struct {
	observers []UpdateObserver
}

func (c compositeObserver) SystemCompleted(summary UpdateSummary) {
	for _, observer := range c.observers {
		observer.SystemCompleted(summary)
	}
}

type loggingObserver struct {
	logger Logger
	format LogFormat
}

func newLoggingObserver(logger Logger, format LogFormat) UpdateObserver {
	if logger == nil {
		return noopObserver{}
	}
	if format != LogFormatKeyValue {
		format = LogFormatJSON
	}
	return loggingObserver{logger: logger, format: format}
}

func (o loggingObserver) SystemCompleted(summary UpdateSummary) {
	switch o.format {
	case LogFormatKeyValue:
		o.logKeyValue(summary)
	default:
		o.logJSON(summary)
	}
}

func (o loggingObserver) logJSON(summary UpdateSummary) {
	payload := map[string]any{
		"system":            summary.System,
		"tick":              summary.Tick,
		"delta":             summary.Delta,
		"duration_ms":       float64(summary.Duration) / float64(time.Millisecond),
		"entities_matched":  summary.EntitiesMatched,
		"entities_live":     summary.EntitiesLive,
		"commands_deferred": summary.CommandsDeferred,
	}
	if summary.Error != nil {
		payload["error"] = summary.Error.Error()
	}
	data, err := json.Marshal(payload)
	if err != nil {
		o.logger.With("system", summary.System).Error("update summary marshal error", "err", err)
		return
	}
	o.logger.Info(string(data))
}

func (o loggingObserver) logKeyValue(summary UpdateSummary) {
	builder := o.logger.With("system", summary.System)
	args := []any{
		"tick", summary.Tick,
		"delta", summary.Delta,
		"duration", summary.Duration,
		"entities_matched", summary.EntitiesMatched,
		"entities_live", summary.EntitiesLive,
		"commands_deferred", summary.CommandsDeferred,
	}
	if summary.Error != nil {
		args = append(args, "error", summary.Error.Error())
	}
	builder.Info("update summary", args...)
}

type metricsObserver struct {
	collector MetricsCollector
}

func newMetricsObserver(collector MetricsCollector) UpdateObserver {
	if collector == nil {
		return noopObserver{}
	}
	return metricsObserver{collector: collector}
}

func (o metricsObserver) SystemCompleted(summary UpdateSummary) {
	o.collector.ObserveSystem(summary)
}

type spanObserver struct {
	exporter SpanExporter
}

func newSpanObserver(exporter SpanExporter) UpdateObserver {
	if exporter == nil {
		return noopObserver{}
	}
	return spanObserver{exporter: exporter}
}

func (o spanObserver) SystemCompleted(summary UpdateSummary) {
	o.exporter.ExportSystem(summary)
}

func buildObserverChain(logger Logger, cfg InstrumentationConfig) UpdateObserver {
	var observers []UpdateObserver

	if cfg.Observer != nil {
		observers = append(observers, cfg.Observer)
	}

	if cfg.EnableLogging {
		structuredLogger := cfg.StructuredLogger
		if structuredLogger == nil {
			structuredLogger = logger
		}
		observers = append(observers, newLoggingObserver(structuredLogger, cfg.LoggingFormat))
	}

	if cfg.EnableMetrics {
		collector := cfg.MetricsCollector
		if collector == nil {
			collector = NewSystemMetricsCollector(cfg.MetricsOptions)
		}
		if collector != nil {
			observers = append(observers, newMetricsObserver(collector))
		}
	}

	if cfg.EnableSpans {
		exporter := cfg.SpanExporter
		if exporter == nil {
			exporter = NewJSONSpanExporter(cfg.SpanOptions)
		}
		if exporter != nil {
			observers = append(observers, newSpanObserver(exporter))
		}
	}

	if len(observers) == 0 {
		return noopObserver{}
	}
	if len(observers) == 1 {
		return observers[0]
	}
	return compositeObserver{observers: observers}
}

// SystemMetricsCollector aggregates per-system samples and renders them in
// Prometheus text exposition format.
type SystemMetricsCollector struct {
	options *MetricsCollectorOptions
	samples map[string]*metricsSample
}

type metricsSample struct {
	durationSum   float64
	durationCount float64
	buckets       []float64
	matched       float64
	errors        float64
}

// NewSystemMetricsCollector constructs a collector. When options carry a
// Writer the metrics are rewritten after every observation.
func NewSystemMetricsCollector(opts *MetricsCollectorOptions) *SystemMetricsCollector {
	if opts == nil {
		opts = &MetricsCollectorOptions{}
	}
	return &SystemMetricsCollector{
		options: opts,
		samples: make(map[string]*metricsSample),
	}
}

// ObserveSystem folds one summary into the aggregates.
func (c *SystemMetricsCollector) ObserveSystem(summary UpdateSummary) {
	sample, ok := c.samples[summary.System]
	if !ok {
		sample = &metricsSample{}
		if buckets := c.options.DurationBuckets; len(buckets) > 0 {
			sample.buckets = make([]float64, len(buckets))
		}
		c.samples[summary.System] = sample
	}
	durSeconds := summary.Duration.Seconds()
	sample.durationSum += durSeconds
	sample.durationCount++
	for i := range sample.buckets {
		if durSeconds <= c.options.DurationBuckets[i].Seconds() {
			sample.buckets[i]++
		}
	}
	sample.matched += float64(summary.EntitiesMatched)
	if summary.Error != nil {
		sample.errors++
	}

	if writer := c.options.Writer; writer != nil {
		_ = c.WriteMetrics(writer)
	}
}

// WriteMetrics renders the current aggregates to w.
func (c *SystemMetricsCollector) WriteMetrics(w io.Writer) error {
	if w == nil {
		return nil
	}
	var buf bytes.Buffer
	names := make([]string, 0, len(c.samples))
	for name := range c.samples {
		names = append(names, name)
	}
	sort.Strings(names)

	buf.WriteString("# HELP arc_system_duration_seconds System update duration.\n")
	buf.WriteString("# TYPE arc_system_duration_seconds summary\n")
	for _, name := range names {
		sample := c.samples[name]
		labels := fmt.Sprintf("system=%q", name)
		buf.WriteString(fmt.Sprintf("arc_system_duration_seconds_sum{%s} %s\n", labels, strconv.FormatFloat(sample.durationSum, 'g', -1, 64)))
		buf.WriteString(fmt.Sprintf("arc_system_duration_seconds_count{%s} %s\n", labels, strconv.FormatFloat(sample.durationCount, 'g', -1, 64)))
		for i, bucket := range sample.buckets {
			le := c.options.DurationBuckets[i].Seconds()
			buf.WriteString(fmt.Sprintf("arc_system_duration_seconds_bucket{%s,le=%q} %s\n", labels, strconv.FormatFloat(le, 'g', -1, 64), strconv.FormatFloat(bucket, 'g', -1, 64)))
		}
	}

	buf.WriteString("# HELP arc_system_entities_matched_total Entities matched per system.\n")
	buf.WriteString("# TYPE arc_system_entities_matched_total counter\n")
	for _, name := range names {
		buf.WriteString(fmt.Sprintf("arc_system_entities_matched_total{system=%q} %s\n", name, strconv.FormatFloat(c.samples[name].matched, 'g', -1, 64)))
	}

	buf.WriteString("# HELP arc_system_errors_total Deferred command errors per system.\n")
	buf.WriteString("# TYPE arc_system_errors_total counter\n")
	for _, name := range names {
		buf.WriteString(fmt.Sprintf("arc_system_errors_total{system=%q} %s\n", name, strconv.FormatFloat(c.samples[name].errors, 'g', -1, 64)))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// JSONSpanExporter writes one JSON span per system per update, newline
// delimited, suitable for ingestion by tracing backends.
type JSONSpanExporter struct {
	opts *SpanExporterOptions
}

// NewJSONSpanExporter constructs an exporter. Without a Writer it exports
// nothing.
func NewJSONSpanExporter(opts *SpanExporterOptions) *JSONSpanExporter {
	if opts == nil {
		opts = &SpanExporterOptions{}
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "arc-world"
	}
	return &JSONSpanExporter{opts: opts}
}

// ExportSystem renders one summary as a span.
func (e *JSONSpanExporter) ExportSystem(summary UpdateSummary) {
	if e.opts.Writer == nil {
		return
	}
	span := map[string]any{
		"service_name": e.opts.ServiceName,
		"name":         fmt.Sprintf("system:%s", summary.System),
		"timestamp":    time.Now().UnixNano(),
		"duration_ms":  float64(summary.Duration) / float64(time.Millisecond),
		"attributes": map[string]any{
			"system":            summary.System,
			"tick":              summary.Tick,
			"delta":             summary.Delta,
			"entities_matched":  summary.EntitiesMatched,
			"entities_live":     summary.EntitiesLive,
			"commands_deferred": summary.CommandsDeferred,
		},
	}
	if summary.Error != nil {
		span["error"] = summary.Error.Error()
	}
	payload, err := json.Marshal(span)
	if err != nil {
		return
	}
	_, _ = e.opts.Writer.Write(append(payload, '\n'))
}

var (
	_ MetricsCollector = (*SystemMetricsCollector)(nil)
	_ SpanExporter     = (*JSONSpanExporter)(nil)
	_ UpdateObserver   = compositeObserver{}
	_ Logger           = noopLogger{}
)
