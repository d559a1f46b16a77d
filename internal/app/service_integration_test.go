package service_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/adapters/repository"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service backed by sqlite", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := repository.OpenSQL(ctx, repository.DriverSQLite, filepath.Join(t.TempDir(), "hermes.db"))
		So(err, ShouldBeNil)
		svc := service.New(
			service.WithStore(store),
			service.WithWorkerCount(4),
			service.WithQueueSize(1000),
			service.WithDedupeSize(500),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		for i := 1; i <= 5; i++ {
			So(svc.PutAthlete(ctx, athlete(fmt.Sprintf("a-%d", i))), ShouldBeNil)
		}

		Convey("When every athlete submits all eight tests", func() {
			tests := []scoring.Measurement{
				scoring.LadderTimes{Time1: f(2.9)},
				scoring.BraceTimes{Time1: f(15)},
				scoring.HexagonTimes{Clockwise: f(2.0)},
				scoring.MedicimbalThrows{Throw1: f(9.0)},
				scoring.TripleJumpDistances{Jump1: f(6.5)},
				scoring.JetShuttle{Laps: scoring.Ptr(5), Sides: scoring.Ptr(3)},
				scoring.BeepTestRun{Level: scoring.Ptr(6), Laps: scoring.Ptr(4)},
				scoring.YBalance{Height: 160, Reaches: reaches(80)},
			}
			for i := 1; i <= 5; i++ {
				for j, m := range tests {
					sub := submission(fmt.Sprintf("s-%d-%d", i, j), fmt.Sprintf("a-%d", i), m)
					receipt, err := svc.Submit(ctx, sub)
					So(err, ShouldBeNil)
					So(receipt.Duplicate, ShouldBeFalse)
				}
			}

			Convey("Then every result ends up complete", func() {
				So(waitForComplete(ctx, svc, 5), ShouldBeTrue)

				r, err := svc.Result(ctx, "a-3", "o-1")
				So(err, ShouldBeNil)
				So(len(r.Scores), ShouldEqual, len(tests))
				So(r.Scores[scoring.Ladder], ShouldEqual, 10)
				So(r.Scores[scoring.YTest], ShouldEqual, 11)
				So(*r.Derived.JetDistance, ShouldEqual, 230)
				So(*r.Derived.BeepTotalLaps, ShouldEqual, 55)
				So(r.Composites.Complete(), ShouldBeTrue)
				So(svc.GetStats()["totalResults"], ShouldEqual, 5)
			})
		})
	})
}

func reaches(v float64) [scoring.ReachCount]*float64 {
	var out [scoring.ReachCount]*float64
	for i := range out {
		out[i] = f(v)
	}
	return out
}

func waitForComplete(ctx context.Context, svc *service.Service, want int) bool {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		rs, err := svc.Results(ctx, "o-1")
		if err == nil && countComplete(rs) == want {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func countComplete(rs []model.Result) int {
	n := 0
	for _, r := range rs {
		if r.Composites.Complete() {
			n++
		}
	}
	return n
}
