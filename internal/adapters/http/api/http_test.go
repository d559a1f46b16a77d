package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/DaalbuCZ/Hermes/internal/adapters/http/api"
	"github.com/DaalbuCZ/Hermes/internal/adapters/http/swagger"
	service "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/domain/model"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var testDay = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

// backpressured answers every submission with a full queue.
type backpressured struct {
	api.Dependencies
}

func (backpressured) Submit(context.Context, model.Submission) (service.Receipt, error) {
	return service.Receipt{}, service.ErrBackpressure
}

func startService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithWorkerCount(2),
		service.WithQueueSize(64),
		service.WithClock(func() time.Time { return testDay }),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Stop(context.Background()) })
	return svc
}

func do(h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var v T
	_ = json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&v)
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const athleteJSON = `{"id":"a-1","name":"Jan","surname":"Novak","gender":"M","birth_date":"2010-01-02","height_cm":160}`

func TestAthleteRoutes(t *testing.T) {
	Convey("Given an API over a running service", t, func() {
		h := api.NewServer(startService(t)).Handler()

		Convey("When an athlete is posted", func() {
			w := do(h, http.MethodPost, "/athletes", athleteJSON)

			Convey("Then it is stored and can be read back", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				got := do(h, http.MethodGet, "/athletes/a-1", "")
				So(got.Code, ShouldEqual, http.StatusOK)
				a := decode[model.Athlete](got)
				So(a.FullName(), ShouldEqual, "Jan Novak")
				So(a.Gender, ShouldEqual, scoring.Male)

				list := decode[[]model.Athlete](do(h, http.MethodGet, "/athletes", ""))
				So(len(list), ShouldEqual, 1)
			})
		})

		Convey("When the birth date is malformed", func() {
			w := do(h, http.MethodPost, "/athletes", `{"id":"a-1","name":"Jan","gender":"M","birth_date":"02.01.2010"}`)

			Convey("Then it is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decode[errorBody](w).Code, ShouldEqual, "bad_request")
			})
		})

		Convey("When the gender is unsupported", func() {
			w := do(h, http.MethodPost, "/athletes", `{"id":"a-1","name":"Jan","gender":"U","birth_date":"2010-01-02"}`)

			Convey("Then it is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When an unknown athlete is requested", func() {
			w := do(h, http.MethodGet, "/athletes/ghost", "")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decode[errorBody](w).Code, ShouldEqual, "not_found")
			})
		})

		Convey("When the list is empty", func() {
			w := do(h, http.MethodGet, "/athletes", "")

			Convey("Then an empty array is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
			})
		})
	})
}

func TestSubmissionRoutes(t *testing.T) {
	Convey("Given an API with a registered athlete", t, func() {
		h := api.NewServer(startService(t)).Handler()
		So(do(h, http.MethodPost, "/athletes", athleteJSON).Code, ShouldEqual, http.StatusCreated)

		Convey("When a ladder measurement is submitted", func() {
			body := `{"id":"s-1","athlete_id":"a-1","occasion_id":"spring","test":"ladder","input":{"time_1":3.1,"time_2":2.9}}`
			w := do(h, http.MethodPost, "/submissions", body)

			Convey("Then it is accepted and eventually scored", func() {
				So(w.Code, ShouldEqual, http.StatusAccepted)
				ack := decode[map[string]any](w)
				So(ack["id"], ShouldEqual, "s-1")
				So(ack["status"], ShouldEqual, "accepted")

				var res model.Result
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					r := do(h, http.MethodGet, "/results/a-1/spring", "")
					if r.Code == http.StatusOK {
						res = decode[model.Result](r)
						break
					}
					time.Sleep(5 * time.Millisecond)
				}
				So(res.Scores[scoring.Ladder], ShouldEqual, 10)

				list := decode[[]model.Result](do(h, http.MethodGet, "/results?occasion=spring", ""))
				So(len(list), ShouldEqual, 1)
			})

			Convey("And the same id again is reported as a duplicate", func() {
				again := do(h, http.MethodPost, "/submissions", body)
				So(again.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](again)["status"], ShouldEqual, "duplicate")
			})
		})

		Convey("When required fields are missing", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete_id":"a-1","test":"ladder","input":{"time_1":3}}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decode[errorBody](w).Message, ShouldContainSubstring, "occasion_id")
			})
		})

		Convey("When the test type is unknown", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete_id":"a-1","occasion_id":"o","test":"sprint","input":{}}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the beep level is out of range", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete_id":"a-1","occasion_id":"o","test":"beep_test","input":{"level":99,"laps":1}}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the athlete does not exist", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete_id":"ghost","occasion_id":"o","test":"ladder","input":{"time_1":3}}`)

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the body has unknown fields", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete":"a-1"}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})

	Convey("Given a service whose queue is full", t, func() {
		h := api.NewServer(backpressured{}).Handler()

		Convey("When a submission arrives", func() {
			w := do(h, http.MethodPost, "/submissions", `{"athlete_id":"a-1","occasion_id":"o","test":"ladder","input":{"time_1":3}}`)

			Convey("Then 429 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusTooManyRequests)
				So(decode[errorBody](w).Code, ShouldEqual, "backpressure")
			})
		})
	})
}

func TestScoreRoutes(t *testing.T) {
	Convey("Given an API over a running service", t, func() {
		h := api.NewServer(startService(t)).Handler()

		Convey("When a quick score is requested with age and gender", func() {
			w := do(h, http.MethodPost, "/scores/quick", `{"test":"ladder","value":2.9,"age":15,"gender":"M"}`)

			Convey("Then the table bucket is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				res := decode[map[string]any](w)
				So(res["test"], ShouldEqual, "ladder")
				So(res["score"], ShouldEqual, 10.0)
			})
		})

		Convey("When the gender is sent in lower case", func() {
			w := do(h, http.MethodPost, "/scores/quick", `{"test":"ladder","value":2.9,"age":15,"gender":"m"}`)

			Convey("Then it is read like the CLI reads it", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](w)["score"], ShouldEqual, 10.0)
			})
		})

		Convey("When a quick score is requested for an athlete", func() {
			So(do(h, http.MethodPost, "/athletes", athleteJSON).Code, ShouldEqual, http.StatusCreated)
			w := do(h, http.MethodPost, "/scores/quick", `{"test":"ladder","value":2.0,"athlete_id":"a-1"}`)

			Convey("Then the athlete's age and gender are used", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](w)["score"], ShouldEqual, 20.0)
			})
		})

		Convey("When the value is missing", func() {
			w := do(h, http.MethodPost, "/scores/quick", `{"test":"ladder","age":15,"gender":"M"}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When raw values are computed", func() {
			w := do(h, http.MethodPost, "/scores/compute", `{"test":"medicimbal","age":10,"gender":"M","values":[7.5,null,9.0]}`)

			Convey("Then the best attempt is scored", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](w)["score"], ShouldEqual, 20.0)
			})
		})

		Convey("When the gender is unsupported", func() {
			w := do(h, http.MethodPost, "/scores/compute", `{"test":"ladder","age":15,"gender":"X","values":[3]}`)

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestAthleteAndTeamResultRoutes(t *testing.T) {
	Convey("Given results of two teams over two occasions", t, func() {
		svc := startService(t)
		h := api.NewServer(svc).Handler()
		ctx := context.Background()
		for _, body := range []string{
			`{"id":"a-1","name":"Jan","gender":"M","birth_date":"2010-01-02","team_id":"red"}`,
			`{"id":"a-2","name":"Petr","gender":"m","birth_date":"2010-01-02","team_id":"red"}`,
			`{"id":"a-3","name":"Eva","gender":"F","birth_date":"2010-01-02","team_id":"blue"}`,
		} {
			So(do(h, http.MethodPost, "/athletes", body).Code, ShouldEqual, http.StatusCreated)
		}
		for _, k := range [][2]string{{"a-1", "o-1"}, {"a-1", "o-2"}, {"a-2", "o-1"}, {"a-3", "o-1"}} {
			sub := model.Submission{
				ID: k[0] + k[1], AthleteID: k[0], OccasionID: k[1], At: testDay,
				Measurement: scoring.LadderTimes{Time1: scoring.Ptr(2.9)},
			}
			So(svc.Apply(ctx, sub), ShouldBeNil)
		}

		Convey("When one athlete's results are requested", func() {
			w := do(h, http.MethodGet, "/athletes/a-1/results", "")

			Convey("Then every occasion is listed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				rs := decode[[]model.Result](w)
				So(len(rs), ShouldEqual, 2)
				So(rs[0].OccasionID, ShouldEqual, "o-1")
				So(rs[1].OccasionID, ShouldEqual, "o-2")
			})
		})

		Convey("When the athlete is unknown", func() {
			w := do(h, http.MethodGet, "/athletes/ghost/results", "")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When teams are listed", func() {
			w := do(h, http.MethodGet, "/teams", "")

			Convey("Then each team is listed once with its size", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode[[]model.Team](w), ShouldResemble, []model.Team{{ID: "blue", Athletes: 1}, {ID: "red", Athletes: 2}})
			})
		})

		Convey("When a team's results are requested", func() {
			all := do(h, http.MethodGet, "/teams/red/results", "")
			one := do(h, http.MethodGet, "/teams/red/results?occasion=o-1", "")

			Convey("Then only its athletes are included", func() {
				So(all.Code, ShouldEqual, http.StatusOK)
				So(len(decode[[]model.Result](all)), ShouldEqual, 3)
				rs := decode[[]model.Result](one)
				So(len(rs), ShouldEqual, 2)
				So(rs[0].AthleteID, ShouldEqual, "a-1")
				So(rs[1].AthleteID, ShouldEqual, "a-2")
			})
		})

		Convey("When the team has no athletes", func() {
			w := do(h, http.MethodGet, "/teams/green/results", "")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestStandingsAndRecalculate(t *testing.T) {
	Convey("Given an API over a running service", t, func() {
		h := api.NewServer(startService(t)).Handler()

		Convey("When standings are requested without a key", func() {
			w := do(h, http.MethodGet, "/standings/spring", "")

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When standings are requested by an unknown key", func() {
			w := do(h, http.MethodGet, "/standings/spring?by=charisma", "")

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When standings are requested for an empty occasion", func() {
			w := do(h, http.MethodGet, "/standings/spring?by=speed", "")

			Convey("Then an empty array is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When a recalculation runs on an empty store", func() {
			w := do(h, http.MethodPost, "/recalculate", "")

			Convey("Then a zero report is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(decode[service.RecalcReport](w), ShouldResemble, service.RecalcReport{})
			})
		})
	})
}

func TestAuth(t *testing.T) {
	Convey("Given an API protected by bearer tokens", t, func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		So(err, ShouldBeNil)
		auth := api.NewAuthenticator("signing-key", map[string]string{"judge": string(hash)}, time.Hour)
		h := api.NewServer(startService(t), api.WithAuth(auth)).Handler()

		Convey("When a protected route is called without a token", func() {
			w := do(h, http.MethodGet, "/athletes", "")

			Convey("Then 401 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusUnauthorized)
				So(decode[errorBody](w).Code, ShouldEqual, "unauthorized")
			})
		})

		Convey("When the password is wrong", func() {
			w := do(h, http.MethodPost, "/token", `{"username":"judge","password":"nope"}`)

			Convey("Then no token is issued", func() {
				So(w.Code, ShouldEqual, http.StatusUnauthorized)
			})
		})

		Convey("When a token is obtained with valid credentials", func() {
			w := do(h, http.MethodPost, "/token", `{"username":"judge","password":"secret"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			tok := decode[map[string]any](w)
			So(tok["token_type"], ShouldEqual, "Bearer")
			bearer := "Bearer " + tok["access_token"].(string)

			Convey("Then protected routes accept it", func() {
				So(do(h, http.MethodGet, "/athletes", "", "Authorization", bearer).Code, ShouldEqual, http.StatusOK)
			})

			Convey("Then a token signed with another key is rejected", func() {
				other := api.NewAuthenticator("other-key", nil, time.Hour)
				forged, _, err := other.Issue("judge")
				So(err, ShouldBeNil)
				So(do(h, http.MethodGet, "/athletes", "", "Authorization", "Bearer "+forged).Code, ShouldEqual, http.StatusUnauthorized)
			})
		})

		Convey("When public routes are called without a token", func() {
			Convey("Then they are served", func() {
				So(do(h, http.MethodGet, "/stats", "").Code, ShouldEqual, http.StatusOK)
				So(do(h, http.MethodGet, "/healthz", "").Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestSubjectFromContext(t *testing.T) {
	Convey("Given a context", t, func() {
		Convey("Then the subject round trips", func() {
			So(api.SubjectFromContext(context.Background()), ShouldEqual, "")
			So(api.SubjectFromContext(api.WithSubject(context.Background(), "judge")), ShouldEqual, "judge")
		})
	})
}

func TestStatsAndDocs(t *testing.T) {
	Convey("Given an API with docs mounted", t, func() {
		h := api.NewServer(startService(t), api.WithDocs(swagger.Register)).Handler()

		Convey("Then stats report a running pipeline", func() {
			w := do(h, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			stats := decode[map[string]any](w)
			So(stats, ShouldContainKey, "queueLength")
			So(stats["started"], ShouldEqual, true)
		})

		Convey("Then the OpenAPI document is served", func() {
			w := do(h, http.MethodGet, "/openapi.yaml", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Hermes API")
		})
	})
}

func TestNotStarted(t *testing.T) {
	Convey("Given a service that was never started", t, func() {
		h := api.NewServer(service.New()).Handler()

		Convey("When results are requested", func() {
			w := do(h, http.MethodGet, "/results", "")

			Convey("Then 503 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			})
		})
	})
}
