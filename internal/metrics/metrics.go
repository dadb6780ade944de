package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classbot", Name: "updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classbot", Name: "handler_errors_total", Help: "Handler errors",
	})
	ClassesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classbot", Name: "classes_created_total", Help: "Classes created via the bot",
	})
	ClassJoins = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classbot", Name: "class_joins_total", Help: "Successful class joins",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classbot", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(BotUpdates, HandlerErrors, ClassesCreated, ClassJoins, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
