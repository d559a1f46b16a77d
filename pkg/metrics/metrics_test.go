package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

func gather(reg *prometheus.Registry, name string) []*dto.Metric {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()
		}
	}
	return nil
}

func TestManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(reg),
			)
			m.scoresResolved.WithLabelValues("ladder").Inc()

			Convey("Then metrics carry the namespace and const labels", func() {
				metrics := gather(reg, "test_unit_scores_resolved_total")
				So(len(metrics), ShouldEqual, 1)
				labels := map[string]string{}
				for _, lp := range metrics[0].GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				So(labels["env"], ShouldEqual, "test")
				So(labels["test"], ShouldEqual, "ladder")
				So(metrics[0].GetCounter().GetValue(), ShouldEqual, 1)
			})
		})

		Convey("When two managers share a registry", func() {
			NewManager(WithPrometheusRegistry(reg))

			Convey("Then registering again panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(reg)) }, ShouldPanic)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		reg := GetRegistry()
		So(reg, ShouldNotBeNil)

		Convey("When recording domain events", func() {
			before := 0.0
			if ms := gather(reg, "hermes_scoring_composites_recomputed_total"); len(ms) == 1 {
				before = ms[0].GetCounter().GetValue()
			}
			RecordCompositeRecompute()
			RecordSubmission("accepted")
			RecordScoreResolved("jet")
			RecordScoringError("invalid_level")
			UpdateQueueSize(3)

			Convey("Then they show up in the custom registry", func() {
				ms := gather(reg, "hermes_scoring_composites_recomputed_total")
				So(len(ms), ShouldEqual, 1)
				So(ms[0].GetCounter().GetValue(), ShouldEqual, before+1)
				So(gather(reg, "hermes_scoring_submissions_total"), ShouldNotBeEmpty)
				So(gather(reg, "hermes_scoring_queue_size")[0].GetGauge().GetValue(), ShouldEqual, 3)
			})
		})

		Convey("When recording is disabled", func() {
			SetEnabled(false)
			defer SetEnabled(true)

			Convey("Then recorders are no-ops", func() {
				So(func() {
					RecordHTTPRequest("/x", "GET", "200")
					RecordHTTPRequestDuration("/x", "GET", "200", 1)
					RecordAuthFailure("bad_password")
					RecordErrorByComponent("api", "test")
				}, ShouldNotPanic)
			})
		})
	})
}
