package roster

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

const springRoster = `
occasion = "spring-2025"
date = 2025-03-03

[[athletes]]
id = "a-1"
name = "Jan"
surname = "Novak"
gender = "M"
birth_date = 2010-01-02
height_cm = 160.0

[athletes.ladder]
time_1 = 3.1
time_2 = 2.9

[athletes.hexagon]
time_cw = 2.0

[athletes.jet]
laps = 5
sides = 3

[athletes.beep_test]
level = 6
laps = 4

[athletes.y_test]
height = 160.0
reaches = [80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0, 80.0]

[[athletes]]
id = "a-2"
name = "Eva"
surname = "Dvorak"
gender = "F"
birth_date = 2011-06-01
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Given a roster file", t, func() {
		Convey("When it is well formed", func() {
			r, err := Load(writeRoster(t, springRoster))

			Convey("Then athletes and their inputs are decoded", func() {
				So(err, ShouldBeNil)
				So(r.Occasion, ShouldEqual, "spring-2025")
				So(len(r.Athletes), ShouldEqual, 2)
				So(r.Athletes[0].Gender, ShouldEqual, scoring.Male)
				So(r.Athletes[0].Ladder, ShouldNotBeNil)
				So(*r.Athletes[0].Ladder.Time2, ShouldEqual, 2.9)
				So(*r.Athletes[0].YTest.Reaches[11], ShouldEqual, 80.0)
				So(len(r.Athletes[0].Measurements()), ShouldEqual, 5)
				So(r.Athletes[1].Measurements(), ShouldBeEmpty)
			})
		})

		Convey("When a test name is misspelled", func() {
			_, err := Load(writeRoster(t, springRoster+"\n[athletes.ladderr]\ntime_1 = 3.0\n"))

			Convey("Then the roster is rejected", func() {
				So(errors.Is(err, ErrInvalidRoster), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "ladderr")
			})
		})

		Convey("When the occasion is missing", func() {
			_, err := Load(writeRoster(t, "[[athletes]]\nid = \"a\"\n"))

			Convey("Then the roster is rejected", func() {
				So(errors.Is(err, ErrInvalidRoster), ShouldBeTrue)
			})
		})

		Convey("When an athlete appears twice", func() {
			dup := "occasion = \"o\"\n" +
				"[[athletes]]\nid = \"a\"\nname = \"A\"\ngender = \"M\"\nbirth_date = 2010-01-01\n" +
				"[[athletes]]\nid = \"a\"\nname = \"B\"\ngender = \"M\"\nbirth_date = 2010-01-01\n"
			_, err := Load(writeRoster(t, dup))

			Convey("Then the roster is rejected", func() {
				So(errors.Is(err, ErrInvalidRoster), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "duplicate")
			})
		})

		Convey("When the gender is unsupported", func() {
			_, err := Load(writeRoster(t, "occasion = \"o\"\n[[athletes]]\nid = \"a\"\nname = \"A\"\ngender = \"X\"\nbirth_date = 2010-01-01\n"))

			Convey("Then the roster is rejected", func() {
				So(errors.Is(err, scoring.ErrInvalidGender), ShouldBeTrue)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

			Convey("Then a load error is returned", func() {
				So(errors.Is(err, ErrLoadRoster), ShouldBeTrue)
			})
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given a loaded roster", t, func() {
		r, err := Load(writeRoster(t, springRoster))
		So(err, ShouldBeNil)

		Convey("When it is scored offline", func() {
			results, err := r.Score(time.Now())
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 2)
			jan := results[0]

			Convey("Then every recorded test has a score", func() {
				So(jan.AthleteID, ShouldEqual, "a-1")
				So(jan.OccasionID, ShouldEqual, "spring-2025")
				So(jan.Scores[scoring.Ladder], ShouldEqual, 10)
				So(jan.Scores[scoring.Hexagon], ShouldEqual, 20)
				So(jan.Scores[scoring.BeepTest], ShouldEqual, 4)
				So(jan.Scores[scoring.YTest], ShouldEqual, 11)
			})

			Convey("Then derived values and composites follow", func() {
				So(*jan.Derived.JetDistance, ShouldEqual, 230)
				So(*jan.Derived.BeepTotalLaps, ShouldEqual, 55)
				So(*jan.Composites.Speed, ShouldEqual, 15.0)
				So(jan.Composites.Strength, ShouldBeNil)
			})

			Convey("Then an athlete without inputs has no scores", func() {
				So(results[1].Scores, ShouldBeEmpty)
			})
		})

		Convey("When a y-balance run leaves out the height", func() {
			r, err := Load(writeRoster(t, strings.Replace(springRoster, "height = 160.0\n", "", 1)))
			So(err, ShouldBeNil)
			So(r.Athletes[0].YTest.Height, ShouldEqual, 0.0)
			results, err := r.Score(time.Now())

			Convey("Then the athlete's height_cm is used", func() {
				So(err, ShouldBeNil)
				So(results[0].Scores[scoring.YTest], ShouldEqual, 11)
				So(results[0].Raw.YTest.Height, ShouldEqual, 0.0)
			})
		})

		Convey("When the roster has no date", func() {
			r.Date = time.Time{}
			now := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

			Convey("Then the given time is used", func() {
				So(r.TestedOn(now), ShouldEqual, now)
			})
		})
	})
}

func TestSubmissionID(t *testing.T) {
	Convey("Given an occasion, an athlete and a test", t, func() {
		Convey("Then the id joins them", func() {
			So(SubmissionID("spring", "a-1", scoring.TripleJump), ShouldEqual, "spring/a-1/triple_jump")
		})
	})
}
