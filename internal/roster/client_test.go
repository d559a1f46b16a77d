package roster_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/adapters/http/api"
	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/internal/roster"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const uploadRoster = `
occasion = "autumn"
date = 2025-03-03

[[athletes]]
id = "a-1"
name = "Jan"
gender = "M"
birth_date = 2010-01-02

[athletes.ladder]
time_1 = 2.9

[athletes.hexagon]
time_ccw = 2.0

[[athletes]]
id = "a-2"
name = "Petr"
gender = "M"
birth_date = 2010-01-02

[athletes.ladder]
time_1 = 2.0
`

func TestUpload(t *testing.T) {
	Convey("Given a running server and a roster", t, func() {
		svc := service.New(service.WithWorkerCount(2))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer func() { _ = svc.Stop(context.Background()) }()
		srv := httptest.NewServer(api.NewServer(svc).Handler())
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "roster.toml")
		So(os.WriteFile(path, []byte(uploadRoster), 0o600), ShouldBeNil)
		r, err := roster.Load(path)
		So(err, ShouldBeNil)

		client := roster.NewClient(srv.URL, roster.WithWorkers(2), roster.WithTimeout(5*time.Second))
		ctx := context.Background()

		Convey("When the roster is uploaded", func() {
			stats, err := client.Upload(ctx, r, time.Now())

			Convey("Then every input is accepted and scored", func() {
				So(err, ShouldBeNil)
				So(stats.Athletes, ShouldEqual, 2)
				So(stats.Submitted, ShouldEqual, 3)
				So(stats.Accepted, ShouldEqual, 3)
				So(stats.Failed, ShouldEqual, 0)

				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					if res, err := svc.Result(ctx, "a-1", "autumn"); err == nil && len(res.Scores) == 2 {
						break
					}
					time.Sleep(5 * time.Millisecond)
				}
				res, err := svc.Result(ctx, "a-1", "autumn")
				So(err, ShouldBeNil)
				So(res.Scores[scoring.Ladder], ShouldEqual, 10)
				So(*res.Composites.Speed, ShouldEqual, 15.0)
			})

			Convey("Then uploading it again only yields duplicates", func() {
				again, err := client.Upload(ctx, r, time.Now())
				So(err, ShouldBeNil)
				So(again.Duplicate, ShouldEqual, 3)
				So(again.Accepted, ShouldEqual, 0)
			})
		})

		Convey("When the server rejects an athlete", func() {
			r.Athletes[0].Gender = "X"
			_, err := client.Upload(ctx, r, time.Now())

			Convey("Then the upload stops with the server's message", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "400")
			})
		})
	})
}
