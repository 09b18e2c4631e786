// Package metrics collects and exposes Prometheus metrics for the runtime.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds every metric instrument. One instance per process; the
// scheduler, the object store and the worker each update the subset that
// applies to them.
type Collector struct {
	// Scheduler counters
	tasksSubmitted  prometheus.Counter
	tasksDispatched prometheus.Counter
	tasksCompleted  prometheus.Counter
	tasksFailed     prometheus.Counter
	objectsReady    prometheus.Counter
	objectsRetired  prometheus.Counter

	// Delivery counters
	deliveriesStarted   prometheus.Counter
	deliveriesCompleted prometheus.Counter
	deliveriesFailed    prometheus.Counter

	// Performance
	taskLatency prometheus.Histogram

	// State gauges
	tasksQueued prometheus.Gauge
	workersIdle prometheus.Gauge

	// Object store
	storeObjects prometheus.Gauge
	storeBytes   prometheus.Gauge
}

// NewCollector builds and registers every instrument with the default
// registerer.
func NewCollector() *Collector {
	c := &Collector{
		tasksSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_tasks_submitted_total",
			Help: "Total number of tasks submitted",
		}),
		tasksDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_tasks_dispatched_total",
			Help: "Total number of tasks dispatched to workers",
		}),
		tasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_tasks_completed_total",
			Help: "Total number of tasks completed successfully",
		}),
		tasksFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_tasks_failed_total",
			Help: "Total number of tasks failed",
		}),
		objectsReady: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_objects_ready_total",
			Help: "Total number of object readiness reports",
		}),
		objectsRetired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_objects_retired_total",
			Help: "Total number of object references retired by the garbage collector",
		}),
		deliveriesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_deliveries_started_total",
			Help: "Total number of object transfers started",
		}),
		deliveriesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_deliveries_completed_total",
			Help: "Total number of object transfers completed",
		}),
		deliveriesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ray_deliveries_failed_total",
			Help: "Total number of object transfers that ran out of sources or attempts",
		}),
		taskLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ray_task_latency_seconds",
			Help:    "Task latency from submission to completion in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		tasksQueued: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ray_tasks_queued",
			Help: "Current number of queued tasks",
		}),
		workersIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ray_workers_idle",
			Help: "Current number of idle workers",
		}),
		storeObjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ray_objstore_objects",
			Help: "Current number of payloads held by the local object store",
		}),
		storeBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ray_objstore_bytes",
			Help: "Current payload bytes held by the local object store",
		}),
	}

	prometheus.MustRegister(
		c.tasksSubmitted,
		c.tasksDispatched,
		c.tasksCompleted,
		c.tasksFailed,
		c.objectsReady,
		c.objectsRetired,
		c.deliveriesStarted,
		c.deliveriesCompleted,
		c.deliveriesFailed,
		c.taskLatency,
		c.tasksQueued,
		c.workersIdle,
		c.storeObjects,
		c.storeBytes,
	)
	return c
}

func (c *Collector) RecordTaskSubmitted()  { c.tasksSubmitted.Inc() }
func (c *Collector) RecordTaskDispatched() { c.tasksDispatched.Inc() }

func (c *Collector) RecordTaskCompleted(latencySeconds float64) {
	c.tasksCompleted.Inc()
	c.taskLatency.Observe(latencySeconds)
}

func (c *Collector) RecordTaskFailed()         { c.tasksFailed.Inc() }
func (c *Collector) RecordObjectReady()        { c.objectsReady.Inc() }
func (c *Collector) RecordObjectRetired()      { c.objectsRetired.Inc() }
func (c *Collector) RecordDeliveryStarted()    { c.deliveriesStarted.Inc() }
func (c *Collector) RecordDeliveryCompleted()  { c.deliveriesCompleted.Inc() }
func (c *Collector) RecordDeliveryFailed()     { c.deliveriesFailed.Inc() }

// UpdateSchedulerStats refreshes the queue and worker gauges.
func (c *Collector) UpdateSchedulerStats(queued, idleWorkers int) {
	c.tasksQueued.Set(float64(queued))
	c.workersIdle.Set(float64(idleWorkers))
}

// UpdateStoreStats refreshes the local object store gauges.
func (c *Collector) UpdateStoreStats(objects int, bytes int64) {
	c.storeObjects.Set(float64(objects))
	c.storeBytes.Set(float64(bytes))
}

// StartServer exposes /metrics on the given port.
func StartServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, nil)
}
