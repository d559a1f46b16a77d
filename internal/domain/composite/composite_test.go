package composite_test

import (
	"errors"
	"testing"

	"github.com/DaalbuCZ/Hermes/internal/domain/composite"
	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompute(t *testing.T) {
	Convey("Given per-test scores", t, func() {
		Convey("When both inputs of a category are present", func() {
			set := composite.Compute(composite.Scores{
				scoring.Medicimbal: 12,
				scoring.TripleJump: 9,
			})

			Convey("Then the composite is their mean", func() {
				So(set.Strength, ShouldNotBeNil)
				So(*set.Strength, ShouldEqual, 10.5)
			})

			Convey("Then the other categories stay nil", func() {
				So(set.Speed, ShouldBeNil)
				So(set.Endurance, ShouldBeNil)
				So(set.Agility, ShouldBeNil)
				So(set.Complete(), ShouldBeFalse)
			})
		})

		Convey("When only one input is present", func() {
			set := composite.Compute(composite.Scores{scoring.Ladder: 15})

			Convey("Then the composite is nil", func() {
				So(set.Speed, ShouldBeNil)
			})
		})

		Convey("When a score is zero", func() {
			set := composite.Compute(composite.Scores{scoring.Brace: 0, scoring.YTest: 0})

			Convey("Then it still counts as measured", func() {
				So(set.Agility, ShouldNotBeNil)
				So(*set.Agility, ShouldEqual, 0)
			})
		})

		Convey("When every test is present", func() {
			scores := composite.Scores{
				scoring.Ladder: 10, scoring.Hexagon: 20,
				scoring.Medicimbal: 4, scoring.TripleJump: 5,
				scoring.BeepTest: 7, scoring.Jet: 7,
				scoring.Brace: 1, scoring.YTest: 2,
			}
			first := composite.Compute(scores)
			second := composite.Compute(scores)

			Convey("Then all four composites are set", func() {
				So(first.Complete(), ShouldBeTrue)
				So(*first.Speed, ShouldEqual, 15)
				So(*first.Strength, ShouldEqual, 4.5)
				So(*first.Endurance, ShouldEqual, 7)
				So(*first.Agility, ShouldEqual, 1.5)
			})

			Convey("Then recomputing is idempotent", func() {
				for _, c := range composite.Categories {
					So(*second.Get(c), ShouldEqual, *first.Get(c))
				}
			})
		})
	})
}

func TestCategories(t *testing.T) {
	Convey("Given the categories", t, func() {
		Convey("Then every test belongs to exactly one category", func() {
			seen := map[scoring.TestType]int{}
			for _, c := range composite.Categories {
				a, b := c.Inputs()
				seen[a]++
				seen[b]++
			}
			for _, tt := range scoring.TestTypes {
				So(seen[tt], ShouldEqual, 1)
				c, ok := composite.Of(tt)
				So(ok, ShouldBeTrue)
				a, b := c.Inputs()
				So(tt == a || tt == b, ShouldBeTrue)
			}
		})

		Convey("Then names are lower-case", func() {
			So(composite.Strength.String(), ShouldEqual, "strength")
			So(composite.Agility.String(), ShouldEqual, "agility")
			So(composite.Category(9).String(), ShouldEqual, "Category(9)")
		})

		Convey("Then names parse back to their category", func() {
			for _, c := range composite.Categories {
				got, err := composite.ParseCategory(c.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c)
			}
			c, err := composite.ParseCategory(" Speed ")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, composite.Speed)

			_, err = composite.ParseCategory("power")
			So(errors.Is(err, composite.ErrUnknownCategory), ShouldBeTrue)
		})
	})
}
