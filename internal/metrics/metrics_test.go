package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNewCollector(t *testing.T) {
	// Reset Prometheus registry to avoid duplicate registration
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	c := NewCollector()
	assert.NotNil(t, c)
	assert.NotNil(t, c.tasksSubmitted)
	assert.NotNil(t, c.tasksDispatched)
	assert.NotNil(t, c.tasksCompleted)
	assert.NotNil(t, c.tasksFailed)
	assert.NotNil(t, c.objectsReady)
	assert.NotNil(t, c.objectsRetired)
	assert.NotNil(t, c.deliveriesStarted)
	assert.NotNil(t, c.deliveriesCompleted)
	assert.NotNil(t, c.deliveriesFailed)
	assert.NotNil(t, c.taskLatency)
	assert.NotNil(t, c.tasksQueued)
	assert.NotNil(t, c.workersIdle)
	assert.NotNil(t, c.storeObjects)
	assert.NotNil(t, c.storeBytes)
}

func TestRecordersDoNotPanic(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	c := NewCollector()

	assert.NotPanics(t, func() {
		c.RecordTaskSubmitted()
		c.RecordTaskDispatched()
		c.RecordTaskCompleted(0.05)
		c.RecordTaskFailed()
		c.RecordObjectReady()
		c.RecordObjectRetired()
		c.RecordDeliveryStarted()
		c.RecordDeliveryCompleted()
		c.RecordDeliveryFailed()
		c.UpdateSchedulerStats(3, 2)
		c.UpdateStoreStats(4, 1024)
	})
}

func TestLatencyBuckets(t *testing.T) {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	c := NewCollector()

	for _, latency := range []float64{0.001, 0.01, 0.1, 1.0, 5.0} {
		assert.NotPanics(t, func() {
			c.RecordTaskCompleted(latency)
		}, "latency %f", latency)
	}
}
