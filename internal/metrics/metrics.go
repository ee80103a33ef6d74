package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cookit/internal/feed"
)

// Collector records feed activity. It implements feed.Recorder.
type Collector struct {
	pagesLoaded   *prometheus.CounterVec
	recipesLoaded *prometheus.CounterVec
	pagesBusy     *prometheus.CounterVec
	pagesFailed   *prometheus.CounterVec
}

var _ feed.Recorder = (*Collector)(nil)

// NewCollector registers the feed metrics with reg. sessions reports the
// number of live feed sessions and may be nil.
func NewCollector(reg prometheus.Registerer, sessions func() int) *Collector {
	c := &Collector{
		pagesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookit_feed_pages_loaded_total",
			Help: "Recipe feed pages loaded from the store.",
		}, []string{"mode"}),
		recipesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookit_feed_recipes_loaded_total",
			Help: "Recipes handed out by feed pages.",
		}, []string{"mode"}),
		pagesBusy: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookit_feed_pages_busy_total",
			Help: "Page requests rejected because a fetch was in flight.",
		}, []string{"mode"}),
		pagesFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookit_feed_pages_failed_total",
			Help: "Page requests that failed at the store.",
		}, []string{"mode"}),
	}

	reg.MustRegister(
		c.pagesLoaded,
		c.recipesLoaded,
		c.pagesBusy,
		c.pagesFailed,
	)

	if sessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "cookit_feed_sessions",
			Help: "Live feed sessions held for API clients.",
		}, func() float64 {
			return float64(sessions())
		}))
	}

	return c
}

func (c *Collector) PageLoaded(mode feed.Mode, recipes int) {
	c.pagesLoaded.WithLabelValues(string(mode)).Inc()
	c.recipesLoaded.WithLabelValues(string(mode)).Add(float64(recipes))
}

func (c *Collector) PageBusy(mode feed.Mode) {
	c.pagesBusy.WithLabelValues(string(mode)).Inc()
}

func (c *Collector) PageFailed(mode feed.Mode) {
	c.pagesFailed.WithLabelValues(string(mode)).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
