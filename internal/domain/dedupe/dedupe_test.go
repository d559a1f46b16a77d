package dedupe_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	dedupe "github.com/DaalbuCZ/Hermes/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should have default configuration", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When creating a deduper with custom options", func() {
			d := dedupe.NewInMemoryDeduper(
				dedupe.WithMaxSize(100),
			)

			Convey("Then it should have custom configuration", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording submissions", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the submission is new", func() {
				seen := d.SeenAndRecord(context.Background(), "sub-1")

				Convey("Then it should return false and record the submission", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the submission was already seen", func() {
				// First time
				d.SeenAndRecord(context.Background(), "sub-1")

				// Second time
				seen := d.SeenAndRecord(context.Background(), "sub-1")

				Convey("Then it should return true", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And multiple submissions are recorded", func() {
				submissions := []string{"sub-1", "sub-2", "sub-3", "sub-4", "sub-5"}

				for _, submission := range submissions {
					seen := d.SeenAndRecord(context.Background(), submission)
					So(seen, ShouldBeFalse)
				}

				Convey("Then all submissions should be recorded", func() {
					So(d.Size(), ShouldEqual, int64(len(submissions)))

					// Check that all submissions are seen
					for _, submission := range submissions {
						seen := d.SeenAndRecord(context.Background(), submission)
						So(seen, ShouldBeTrue)
					}
				})
			})
		})

		Convey("When unrecording submissions", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the submission exists", func() {
				// Record the submission
				d.SeenAndRecord(context.Background(), "sub-1")
				So(d.Size(), ShouldEqual, 1)

				// Unrecord the submission
				d.Unrecord(context.Background(), "sub-1")

				Convey("Then it should be removed", func() {
					So(d.Size(), ShouldEqual, 0)

					// Should not be seen anymore
					seen := d.SeenAndRecord(context.Background(), "sub-1")
					So(seen, ShouldBeFalse)
				})
			})

			Convey("And the submission doesn't exist", func() {
				// Try to unrecord non-existent submission
				d.Unrecord(context.Background(), "nonexistent")

				Convey("Then it should not affect the size", func() {
					So(d.Size(), ShouldEqual, 0)
				})
			})

			Convey("And multiple submissions are unrecorded", func() {
				submissions := []string{"sub-1", "sub-2", "sub-3"}

				// Record all submissions
				for _, submission := range submissions {
					d.SeenAndRecord(context.Background(), submission)
				}
				So(d.Size(), ShouldEqual, int64(len(submissions)))

				// Unrecord all submissions
				for _, submission := range submissions {
					d.Unrecord(context.Background(), submission)
				}

				Convey("Then all submissions should be removed", func() {
					So(d.Size(), ShouldEqual, 0)

					// Check that none are seen
					for _, submission := range submissions {
						seen := d.SeenAndRecord(context.Background(), submission)
						So(seen, ShouldBeFalse)
					}
				})
			})
		})

		Convey("When using bounded mode with eviction", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

			Convey("And the deduper is at capacity", func() {
				// Fill to capacity
				submissions := []string{"sub-1", "sub-2", "sub-3"}
				for _, submission := range submissions {
					seen := d.SeenAndRecord(context.Background(), submission)
					So(seen, ShouldBeFalse)
				}
				So(d.Size(), ShouldEqual, 3)

				// Add one more submission
				seen := d.SeenAndRecord(context.Background(), "sub-4")

				Convey("Then it should evict the oldest and add the new one", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 3)

					for _, id := range []string{"sub-2", "sub-3", "sub-4"} {
						So(d.SeenAndRecord(context.Background(), id), ShouldBeTrue)
					}
					So(d.SeenAndRecord(context.Background(), "sub-1"), ShouldBeFalse)
					So(d.Size(), ShouldEqual, 3)
				})
			})

			Convey("And an entry is unrecorded before eviction", func() {
				for _, id := range []string{"sub-1", "sub-2", "sub-3"} {
					d.SeenAndRecord(context.Background(), id)
				}
				d.Unrecord(context.Background(), "sub-2")
				d.SeenAndRecord(context.Background(), "sub-4")

				Convey("Then nothing else is evicted", func() {
					So(d.Size(), ShouldEqual, 3)
					So(d.SeenAndRecord(context.Background(), "sub-1"), ShouldBeTrue)
					So(d.SeenAndRecord(context.Background(), "sub-3"), ShouldBeTrue)
				})
			})
		})

		Convey("When using unbounded mode", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

			Convey("And many submissions are recorded", func() {
				const numSubmissions = 1000
				for i := 0; i < numSubmissions; i++ {
					subID := fmt.Sprintf("sub-%d", i)
					seen := d.SeenAndRecord(context.Background(), subID)
					So(seen, ShouldBeFalse)
				}

				Convey("Then all submissions should be recorded without eviction", func() {
					So(d.Size(), ShouldEqual, int64(numSubmissions))

					// Check that all submissions are seen
					for i := 0; i < numSubmissions; i++ {
						subID := fmt.Sprintf("sub-%d", i)
						seen := d.SeenAndRecord(context.Background(), subID)
						So(seen, ShouldBeTrue)
					}
				})
			})
		})
	})
}

func TestDedupeConcurrency(t *testing.T) {
	Convey("Given a deduper with concurrent access", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(1000))
		const numGoroutines = 10
		const submissionsPerGoroutine = 100

		Convey("When multiple goroutines record submissions concurrently", func() {
			var wg sync.WaitGroup
			errors := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(goroutineID int) {
					defer wg.Done()
					for j := 0; j < submissionsPerGoroutine; j++ {
						subID := fmt.Sprintf("sub-%d-%d", goroutineID, j)
						// This should not panic or cause race conditions
						d.SeenAndRecord(context.Background(), subID)
					}
				}(i)
			}

			wg.Wait()
			close(errors)

			Convey("Then all submissions should be recorded successfully", func() {
				So(d.Size(), ShouldEqual, int64(numGoroutines*submissionsPerGoroutine))

				// Check for any errors
				for err := range errors {
					So(err, ShouldBeNil)
				}
			})
		})

		Convey("When multiple goroutines unrecord submissions concurrently", func() {
			// First, record some submissions
			const numSubmissions = 500
			for i := 0; i < numSubmissions; i++ {
				subID := fmt.Sprintf("sub-%d", i)
				d.SeenAndRecord(context.Background(), subID)
			}

			So(d.Size(), ShouldEqual, int64(numSubmissions))

			// Now unrecord them concurrently
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(goroutineID int) {
					defer wg.Done()
					for j := 0; j < numSubmissions/numGoroutines; j++ {
						subID := fmt.Sprintf("sub-%d", goroutineID*(numSubmissions/numGoroutines)+j)
						d.Unrecord(context.Background(), subID)
					}
				}(i)
			}

			wg.Wait()

			Convey("Then all submissions should be unrecorded successfully", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestDedupeEdgeCases(t *testing.T) {
	Convey("Given a deduper with edge cases", t, func() {
		Convey("When recording empty string", func() {
			d := dedupe.NewInMemoryDeduper()

			seen := d.SeenAndRecord(context.Background(), "")

			Convey("Then it should handle empty string", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)

				// Should be seen on second call
				seen2 := d.SeenAndRecord(context.Background(), "")
				So(seen2, ShouldBeTrue)
			})
		})

		Convey("When recording very long strings", func() {
			d := dedupe.NewInMemoryDeduper()

			longString := strings.Repeat("a", 10000)
			seen := d.SeenAndRecord(context.Background(), longString)

			Convey("Then it should handle long strings", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)

				// Should be seen on second call
				seen2 := d.SeenAndRecord(context.Background(), longString)
				So(seen2, ShouldBeTrue)
			})
		})

		Convey("When using nil context", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should not panic", func() {
				So(func() { d.SeenAndRecord(nil, "sub-1") }, ShouldNotPanic)
				So(func() { d.Unrecord(nil, "sub-1") }, ShouldNotPanic)
			})
		})

		Convey("When using very small max size", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(1))

			Convey("And adding multiple submissions", func() {
				// First submission
				seen1 := d.SeenAndRecord(context.Background(), "sub-1")
				So(seen1, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)

				// Second submission should evict the first
				seen2 := d.SeenAndRecord(context.Background(), "sub-2")
				So(seen2, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)

				So(d.SeenAndRecord(context.Background(), "sub-2"), ShouldBeTrue)
				So(d.SeenAndRecord(context.Background(), "sub-1"), ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When using negative max size", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(-1))

			Convey("Then it should be unbounded", func() {
				const numSubmissions = 1000
				for i := 0; i < numSubmissions; i++ {
					subID := fmt.Sprintf("sub-%d", i)
					seen := d.SeenAndRecord(context.Background(), subID)
					So(seen, ShouldBeFalse)
				}

				So(d.Size(), ShouldEqual, int64(numSubmissions))
			})
		})
	})
}

func TestDedupeOptions(t *testing.T) {
	Convey("Given dedupe options", t, func() {
		Convey("When using WithMaxSize", func() {
			Convey("Then it should set the max size", func() {
				d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(500))
				So(d, ShouldNotBeNil)
			})

			Convey("And when max size is zero", func() {
				d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))
				So(d, ShouldNotBeNil)
			})

			Convey("And when max size is negative", func() {
				d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(-100))
				So(d, ShouldNotBeNil)
			})
		})
	})
}
