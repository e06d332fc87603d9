package rng_test

import (
	"sync"
	"testing"

	"github.com/okian/scoutgen/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeededSource(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := rng.New(42)
		b := rng.New(42)

		Convey("Then they should replay the same sequence", func() {
			for i := 0; i < 100; i++ {
				So(a.Float64(), ShouldEqual, b.Float64())
			}
		})
	})

	Convey("Given a seeded source", t, func() {
		src := rng.New(7)

		Convey("Then draws should lie in [0,1)", func() {
			for i := 0; i < 1000; i++ {
				v := src.Float64()
				So(v, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(v, ShouldBeLessThan, 1.0)
			}
		})

		Convey("Then concurrent draws should not race", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						_ = src.Float64()
					}
				}()
			}
			wg.Wait()
			So(src.Float64(), ShouldBeLessThan, 1.0)
		})
	})
}

func TestIntBetween(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.New(99)

		Convey("Then draws should stay inclusive of both bounds", func() {
			seen := map[int]bool{}
			for i := 0; i < 2000; i++ {
				v := rng.IntBetween(src, 3, 9)
				So(v, ShouldBeGreaterThanOrEqualTo, 3)
				So(v, ShouldBeLessThanOrEqualTo, 9)
				seen[v] = true
			}

			Convey("And every value in the range should appear", func() {
				for v := 3; v <= 9; v++ {
					So(seen[v], ShouldBeTrue)
				}
			})
		})

		Convey("Then a degenerate range should return the lower bound", func() {
			So(rng.IntBetween(src, 5, 5), ShouldEqual, 5)
			So(rng.IntBetween(src, 5, 2), ShouldEqual, 5)
		})
	})
}

func TestCoinAndPick(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.New(123)

		Convey("Then the coin should land on both sides over many flips", func() {
			heads := 0
			for i := 0; i < 1000; i++ {
				if rng.Coin(src) {
					heads++
				}
			}
			So(heads, ShouldBeGreaterThan, 0)
			So(heads, ShouldBeLessThan, 1000)
		})

		Convey("Then Pick should only return elements of the slice", func() {
			items := []string{"a", "b", "c"}
			for i := 0; i < 100; i++ {
				So(rng.Pick(src, items), ShouldBeIn, items)
			}
		})

		Convey("Then Pick on an empty slice should return the zero value", func() {
			So(rng.Pick(src, []string{}), ShouldEqual, "")
		})
	})
}
