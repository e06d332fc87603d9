package report_test

import (
	"testing"

	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/report"
	"github.com/okian/scoutgen/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func somePlayer(position model.Position) model.Player {
	return model.Player{
		Name:     "Test Player",
		RegionID: "england",
		Age:      21,
		Position: position,
		Attributes: model.Attributes{
			Technical: 6,
			Physical:  5,
			Mental:    7,
		},
		Potential: 8,
	}
}

func TestEngineBounds(t *testing.T) {
	Convey("Given a report engine", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(42)))

		Convey("Then perceived values should stay inside [1,10] for any input", func() {
			for _, p := range model.Positions() {
				player := somePlayer(p)
				for i := 0; i < 300; i++ {
					rep := engine.Generate(player, nil)
					for _, v := range []int{
						rep.Perceived.Technical,
						rep.Perceived.Physical,
						rep.Perceived.Mental,
						rep.PerceivedPotential,
					} {
						So(v, ShouldBeGreaterThanOrEqualTo, 1)
						So(v, ShouldBeLessThanOrEqualTo, 10)
					}
				}
			}
		})

		Convey("Then confidence should stay inside [0,95]", func() {
			profiles := []model.SkillProfile{
				nil,
				{model.SkillTalentSpotting: 10},
				{model.SkillTalentSpotting: 10, model.SkillMidfielderKnowledge: 10, model.SkillPlayerPotential: 10},
			}
			for _, skills := range profiles {
				rep := engine.Generate(somePlayer(model.CM), skills)
				So(rep.Confidence.Attributes, ShouldBeGreaterThanOrEqualTo, model.MinConfidence)
				So(rep.Confidence.Attributes, ShouldBeLessThanOrEqualTo, model.MaxConfidence)
				So(rep.Confidence.Potential, ShouldBeGreaterThanOrEqualTo, model.MinConfidence)
				So(rep.Confidence.Potential, ShouldBeLessThanOrEqualTo, model.MaxConfidence)
			}
		})
	})
}

func TestBaseAccuracy(t *testing.T) {
	Convey("Given an empty skill profile", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(7)))

		Convey("Then both confidence figures should sit at the 70 base", func() {
			rep := engine.Generate(somePlayer(model.GK), nil)
			So(rep.Confidence.Attributes, ShouldEqual, 70)
			So(rep.Confidence.Potential, ShouldEqual, 70)
		})

		Convey("Then the noise should never exceed the maxError of 3", func() {
			player := somePlayer(model.GK)
			for i := 0; i < 2000; i++ {
				rep := engine.Generate(player, nil)

				diff := rep.Perceived.Technical - player.Attributes.Technical
				So(diff, ShouldBeGreaterThanOrEqualTo, -3)
				So(diff, ShouldBeLessThanOrEqualTo, 3)
			}
		})
	})
}

func TestAccuracyCaps(t *testing.T) {
	Convey("Given a fully skilled scout", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(3)))
		skills := model.SkillProfile{
			model.SkillTalentSpotting:      10,
			model.SkillGoalkeeperKnowledge: 10,
			model.SkillPlayerPotential:     10,
		}

		Convey("Then confidence should cap at 95", func() {
			rep := engine.Generate(somePlayer(model.GK), skills)
			So(rep.Confidence.Attributes, ShouldEqual, 95)
			So(rep.Confidence.Potential, ShouldEqual, 95)
		})

		Convey("Then noise should shrink to at most one point", func() {
			player := somePlayer(model.GK)
			for i := 0; i < 2000; i++ {
				rep := engine.Generate(player, skills)
				diff := rep.Perceived.Physical - player.Attributes.Physical
				So(diff, ShouldBeGreaterThanOrEqualTo, -1)
				So(diff, ShouldBeLessThanOrEqualTo, 1)
			}
		})
	})

	Convey("Given knowledge for the wrong role", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(3)))
		skills := model.SkillProfile{model.SkillForwardKnowledge: 10}

		Convey("Then a goalkeeper report should ignore it", func() {
			rep := engine.Generate(somePlayer(model.GK), skills)
			So(rep.Confidence.Attributes, ShouldEqual, 70)
		})
	})
}

func TestConfidenceMonotonicity(t *testing.T) {
	Convey("Given rising talent spotting", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(1)))
		player := somePlayer(model.ST)

		Convey("Then attribute confidence should never decrease", func() {
			prev := -1
			for level := 0; level <= 10; level++ {
				rep := engine.Generate(player, model.SkillProfile{model.SkillTalentSpotting: level})
				So(rep.Confidence.Attributes, ShouldBeGreaterThanOrEqualTo, prev)
				prev = rep.Confidence.Attributes
			}
		})
	})

	Convey("Given rising role knowledge", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(1)))
		player := somePlayer(model.CB)

		Convey("Then attribute confidence should never decrease", func() {
			prev := -1
			for level := 0; level <= 10; level++ {
				rep := engine.Generate(player, model.SkillProfile{model.SkillDefenderKnowledge: level})
				So(rep.Confidence.Attributes, ShouldBeGreaterThanOrEqualTo, prev)
				prev = rep.Confidence.Attributes
			}
		})
	})

	Convey("Given rising potential assessment", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(1)))
		player := somePlayer(model.LW)

		Convey("Then potential confidence should never decrease", func() {
			prev := -1
			for level := 0; level <= 10; level++ {
				rep := engine.Generate(player, model.SkillProfile{model.SkillPlayerPotential: level})
				So(rep.Confidence.Potential, ShouldBeGreaterThanOrEqualTo, prev)
				prev = rep.Confidence.Potential
			}
		})
	})
}

func TestReportIsFresh(t *testing.T) {
	Convey("Given the same player evaluated twice", t, func() {
		engine := report.NewEngine(report.WithSource(rng.New(5)))
		player := somePlayer(model.CM)

		Convey("Then the ground truth should never change", func() {
			before := player
			_ = engine.Generate(player, nil)
			_ = engine.Generate(player, model.SkillProfile{model.SkillTalentSpotting: 10})
			So(player, ShouldResemble, before)
		})
	})
}
