package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "gym_booking"

// Registry owns every collector the service exports on /metrics.
type Registry struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookings       *prometheus.CounterVec
	creditsUsed    prometheus.Counter
	creditsIssued  prometheus.Counter
	creditsBack    prometheus.Counter
	orderMoves     *prometheus.CounterVec
	redeemRejected *prometheus.CounterVec

	outboxDelivered *prometheus.CounterVec
	outboxFailed    *prometheus.CounterVec
	sweepSettled    prometheus.Counter
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "bookings_created_total",
			Help: "Bookings created by funding source.",
		}, []string{"funding"}),
		creditsUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "credits_consumed_total",
			Help: "Credits consumed by redemptions.",
		}),
		creditsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "credits_issued_total",
			Help: "Credits issued for paid packages.",
		}),
		creditsBack: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "credits_restored_total",
			Help: "Credits restored by booking cancellations.",
		}),
		orderMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "order_transitions_total",
			Help: "Order status transitions by trigger.",
		}, []string{"from", "to", "trigger"}),
		redeemRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "redemptions_rejected_total",
			Help: "Credit redemptions rejected by reason.",
		}, []string{"reason"}),
		outboxDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "outbox", Name: "delivered_total",
			Help: "Outbox jobs delivered to the broker.",
		}, []string{"topic"}),
		outboxFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "outbox", Name: "failed_total",
			Help: "Outbox delivery attempts that failed.",
		}, []string{"topic", "final"}),
		sweepSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "orders_settled_total",
			Help: "Stale orders settled by the sweeper.",
		}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests, r.httpDuration,
		r.bookings, r.creditsUsed, r.creditsIssued, r.creditsBack, r.orderMoves, r.redeemRejected,
		r.outboxDelivered, r.outboxFailed, r.sweepSettled,
	)
	return r
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (r *Registry) BookingsCreated(funding string, n int) {
	r.bookings.WithLabelValues(funding).Add(float64(n))
}

func (r *Registry) CreditsConsumed(n int) { r.creditsUsed.Add(float64(n)) }
func (r *Registry) CreditsIssued(n int)   { r.creditsIssued.Add(float64(n)) }
func (r *Registry) CreditsRestored(n int) { r.creditsBack.Add(float64(n)) }

func (r *Registry) OrderTransition(from, to, trigger string) {
	r.orderMoves.WithLabelValues(from, to, trigger).Inc()
}

func (r *Registry) RedemptionRejected(reason string) {
	r.redeemRejected.WithLabelValues(reason).Inc()
}

func (r *Registry) OutboxDelivered(topic string) {
	r.outboxDelivered.WithLabelValues(topic).Inc()
}

func (r *Registry) OutboxFailed(topic string, final bool) {
	r.outboxFailed.WithLabelValues(topic, strconv.FormatBool(final)).Inc()
}

func (r *Registry) SweepSettled(n int) { r.sweepSettled.Add(float64(n)) }
