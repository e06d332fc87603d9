package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/scoutgen/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh tracker", t, func() {
		ctx := context.Background()
		tracker := dedupe.NewInMemoryTracker()

		Convey("Then a first sighting should not count as seen", func() {
			So(tracker.SeenAndRecord(ctx, "Jamie Carter"), ShouldBeFalse)
			So(tracker.Size(), ShouldEqual, 1)
		})

		Convey("Then a repeat sighting should count as seen", func() {
			So(tracker.SeenAndRecord(ctx, "Jamie Carter"), ShouldBeFalse)
			So(tracker.SeenAndRecord(ctx, "Jamie Carter"), ShouldBeTrue)
			So(tracker.Size(), ShouldEqual, 1)
		})

		Convey("Then distinct names should be tracked independently", func() {
			So(tracker.SeenAndRecord(ctx, "Jamie Carter"), ShouldBeFalse)
			So(tracker.SeenAndRecord(ctx, "Luca Romano"), ShouldBeFalse)
			So(tracker.Size(), ShouldEqual, 2)
		})
	})
}

func TestUnrecord(t *testing.T) {
	Convey("Given a tracker with a recorded name", t, func() {
		ctx := context.Background()
		tracker := dedupe.NewInMemoryTracker()
		tracker.SeenAndRecord(ctx, "Jamie Carter")

		Convey("When the name is unrecorded", func() {
			tracker.Unrecord(ctx, "Jamie Carter")

			Convey("Then it should be free for reuse", func() {
				So(tracker.Size(), ShouldEqual, 0)
				So(tracker.SeenAndRecord(ctx, "Jamie Carter"), ShouldBeFalse)
			})
		})

		Convey("When an unknown name is unrecorded", func() {
			tracker.Unrecord(ctx, "Nobody Atall")

			Convey("Then nothing should change", func() {
				So(tracker.Size(), ShouldEqual, 1)
			})
		})
	})
}

func TestEviction(t *testing.T) {
	Convey("Given a tracker bounded to three names", t, func() {
		ctx := context.Background()
		tracker := dedupe.NewInMemoryTracker(dedupe.WithMaxSize(3))
		tracker.SeenAndRecord(ctx, "a")
		tracker.SeenAndRecord(ctx, "b")
		tracker.SeenAndRecord(ctx, "c")

		Convey("When a fourth name arrives", func() {
			tracker.SeenAndRecord(ctx, "d")

			Convey("Then the oldest name should be evicted", func() {
				So(tracker.Size(), ShouldEqual, 3)
				So(tracker.SeenAndRecord(ctx, "a"), ShouldBeFalse)
			})

			Convey("Then the newer names should still be seen", func() {
				So(tracker.SeenAndRecord(ctx, "c"), ShouldBeTrue)
				So(tracker.SeenAndRecord(ctx, "d"), ShouldBeTrue)
			})
		})
	})
}

func TestConcurrentRecording(t *testing.T) {
	Convey("Given many workers recording the same names", t, func() {
		ctx := context.Background()
		tracker := dedupe.NewInMemoryTracker()

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					tracker.SeenAndRecord(ctx, fmt.Sprintf("player-%d", i))
				}
			}()
		}
		wg.Wait()

		Convey("Then each name should be tracked exactly once", func() {
			So(tracker.Size(), ShouldEqual, 100)
		})
	})
}
