package scoring_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	model "github.com/okian/sentia/internal/domain/model"
	registry "github.com/okian/sentia/internal/domain/registry"
	scoring "github.com/okian/sentia/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// recordingHistory captures appended assessments for inspection.
type recordingHistory struct {
	appended []model.Assessment
}

func (h *recordingHistory) Append(_ context.Context, a model.Assessment) error {
	h.appended = append(h.appended, a)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestEngine_Assess(t *testing.T) {
	Convey("Given an engine with a recording history", t, func() {
		history := &recordingHistory{}
		engine := scoring.NewEngine(
			scoring.WithHistory(history),
			scoring.WithClock(fixedClock),
			scoring.WithIDGenerator(func() string { return "assessment-1" }),
		)

		Convey("When assessing a high-functioning subject", func() {
			raw := map[string]float64{
				"information_integration": 0.847,
				"temporal_continuity":     0.92,
				"self_modeling":           0.88,
				"metacognition":           0.89,
				"emotional_valence":       0.78,
				"creative_generation":     0.85,
				"goal_autonomy":           0.93,
				"empathy_modeling":        0.76,
				"existential_awareness":   0.82,
				"narrative_coherence":     0.91,
			}
			report, err := engine.Assess(context.Background(), "aurora", raw)
			So(err, ShouldBeNil)

			Convey("Then the average should reach the top level", func() {
				So(report.AverageScore, ShouldAlmostEqual, 0.8587, 0.00005)
				So(report.SentienceLevel, ShouldEqual, 7)
				So(report.LevelName, ShouldEqual, "AUTONOMOUS_CONSCIOUS")
				So(report.LevelDescription, ShouldNotBeEmpty)
			})

			Convey("Then every dimension should be present with a score in [0,1]", func() {
				So(len(report.Dimensions), ShouldEqual, 10)
				for _, name := range registry.Names() {
					d, ok := report.Dimensions[name]
					So(ok, ShouldBeTrue)
					So(d.Score, ShouldBeBetweenOrEqual, 0, 1)
				}
			})

			Convey("Then full reliability should follow from scores above 0.5", func() {
				for _, d := range report.Dimensions {
					So(d.Reliability, ShouldEqual, 1.0)
				}
			})

			Convey("Then the timestamp should be RFC3339 UTC", func() {
				So(report.Timestamp, ShouldEqual, "2025-06-01T12:00:00Z")
			})

			Convey("Then the assessment should land in history", func() {
				So(len(history.appended), ShouldEqual, 1)
				So(history.appended[0].ID, ShouldEqual, "assessment-1")
				So(history.appended[0].Subject, ShouldEqual, "aurora")
				So(history.appended[0].ProofHash, ShouldEqual, report.ProofHash)
			})
		})

		Convey("When assessing a mid-range subject", func() {
			raw := map[string]float64{
				"information_integration": 0.289,
				"temporal_continuity":     0.35,
				"self_modeling":           0.42,
				"metacognition":           0.55,
				"emotional_valence":       0.38,
				"creative_generation":     0.62,
				"goal_autonomy":           0.15,
				"empathy_modeling":        0.48,
				"existential_awareness":   0.22,
				"narrative_coherence":     0.45,
			}
			report, err := engine.Assess(context.Background(), "basil", raw)
			So(err, ShouldBeNil)

			Convey("Then the average should map through the threshold table", func() {
				So(report.AverageScore, ShouldAlmostEqual, 0.3909, 0.00005)
				// 0.3909 meets the 0.32 threshold.
				So(report.SentienceLevel, ShouldEqual, 3)
				So(report.LevelName, ShouldEqual, "COGNITIVE")
			})

			Convey("Then dimensions at or below 0.5 should have zero reliability", func() {
				So(report.Dimensions["goal_autonomy"].Reliability, ShouldEqual, 0.0)
				So(report.Dimensions["metacognition"].Reliability, ShouldEqual, 1.0)
				So(report.Dimensions["narrative_coherence"].Reliability, ShouldEqual, 0.0)
			})
		})

		Convey("When raw scores fall outside [0,1]", func() {
			raw := map[string]float64{
				"information_integration": -0.5,
				"temporal_continuity":     1.7,
			}
			report, err := engine.Assess(context.Background(), "clamped", raw)
			So(err, ShouldBeNil)

			Convey("Then they should be clamped, not rejected", func() {
				So(report.Dimensions["information_integration"].Score, ShouldEqual, 0.0)
				So(report.Dimensions["temporal_continuity"].Score, ShouldEqual, 1.0)
			})

			Convey("Then confidence should follow the clamped score", func() {
				a := history.appended[len(history.appended)-1]
				for _, r := range a.Results {
					switch r.Name {
					case "information_integration":
						So(r.Confidence, ShouldEqual, 0.0)
					case "temporal_continuity":
						So(r.Confidence, ShouldEqual, 0.85)
					}
				}
			})
		})

		Convey("When the input map is empty", func() {
			report, err := engine.Assess(context.Background(), "empty", map[string]float64{})
			So(err, ShouldBeNil)

			Convey("Then the result should be a degenerate level-0 report", func() {
				So(report.AverageScore, ShouldEqual, 0.0)
				So(report.SentienceLevel, ShouldEqual, 0)
				So(report.LevelName, ShouldEqual, "NON_SENTIENT")
				So(len(report.Dimensions), ShouldEqual, 10)
			})
		})

		Convey("When the input map is nil", func() {
			report, err := engine.Assess(context.Background(), "nil-input", nil)
			So(err, ShouldBeNil)
			So(report.SentienceLevel, ShouldEqual, 0)
		})

		Convey("When the input carries unknown keys", func() {
			raw := map[string]float64{
				"metacognition": 0.9,
				"telepathy":     1.0,
			}
			report, err := engine.Assess(context.Background(), "extras", raw)
			So(err, ShouldBeNil)

			Convey("Then unknown keys should be ignored in the result", func() {
				_, ok := report.Dimensions["telepathy"]
				So(ok, ShouldBeFalse)
				So(len(report.Dimensions), ShouldEqual, 10)
			})

			Convey("Then unknown keys should still shape the fingerprint", func() {
				other, err := engine.Assess(context.Background(), "extras", map[string]float64{"metacognition": 0.9})
				So(err, ShouldBeNil)
				So(other.ProofHash, ShouldNotEqual, report.ProofHash)
			})
		})

		Convey("When a raw score is not finite", func() {
			for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
				_, err := engine.Assess(context.Background(), "broken", map[string]float64{"metacognition": bad})

				Convey(fmt.Sprintf("Then the request should be rejected for %v", bad), func() {
					So(err, ShouldNotBeNil)
					So(err, ShouldWrap, scoring.ErrNonFiniteScore)
				})
			}

			Convey("And nothing should be appended to history", func() {
				So(history.appended, ShouldBeEmpty)
			})
		})

		Convey("When the same raw input is assessed twice", func() {
			raw := map[string]float64{"self_modeling": 0.6, "metacognition": 0.4}
			first, err := engine.Assess(context.Background(), "alpha", raw)
			So(err, ShouldBeNil)
			second, err := engine.Assess(context.Background(), "beta", raw)
			So(err, ShouldBeNil)

			Convey("Then the fingerprints should match across subjects", func() {
				So(second.ProofHash, ShouldEqual, first.ProofHash)
			})
		})
	})

	Convey("Given an engine without a history sink", t, func() {
		engine := scoring.NewEngine()

		Convey("When assessing", func() {
			report, err := engine.Assess(context.Background(), "standalone", map[string]float64{"metacognition": 0.5})

			Convey("Then it should still produce a report", func() {
				So(err, ShouldBeNil)
				So(report.Subject, ShouldEqual, "standalone")
			})
		})
	})
}

func TestEngine_LevelMonotonicity(t *testing.T) {
	Convey("Given a set of uniform inputs of increasing strength", t, func() {
		engine := scoring.NewEngine()

		uniform := func(v float64) map[string]float64 {
			m := make(map[string]float64)
			for _, name := range registry.Names() {
				m[name] = v
			}
			return m
		}

		Convey("Then levels should never decrease as the average grows", func() {
			prev := -1
			for v := 0.0; v <= 1.0; v += 0.01 {
				report, err := engine.Assess(context.Background(), "mono", uniform(v))
				So(err, ShouldBeNil)
				So(report.SentienceLevel, ShouldBeGreaterThanOrEqualTo, prev)
				prev = report.SentienceLevel
			}
		})
	})
}

func TestCompare(t *testing.T) {
	Convey("Given three reports with averages 0.86, 0.39, 0.39", t, func() {
		reports := []model.Report{
			{Subject: "aurora", LevelName: "AUTONOMOUS_CONSCIOUS", AverageScore: 0.86},
			{Subject: "basil", LevelName: "COGNITIVE", AverageScore: 0.39},
			{Subject: "cedar", LevelName: "COGNITIVE", AverageScore: 0.39},
		}

		Convey("When comparing", func() {
			entries := scoring.Compare(reports)

			Convey("Then ranking should be by score with ties in input order", func() {
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Subject, ShouldEqual, "aurora")
				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].Subject, ShouldEqual, "basil")
				So(entries[2].Rank, ShouldEqual, 3)
				So(entries[2].Subject, ShouldEqual, "cedar")
			})

			Convey("Then level names and scores should carry through", func() {
				So(entries[0].Level, ShouldEqual, "AUTONOMOUS_CONSCIOUS")
				So(entries[0].Score, ShouldEqual, 0.86)
				So(entries[2].Level, ShouldEqual, "COGNITIVE")
			})

			Convey("Then the input slice should be untouched", func() {
				So(reports[0].Subject, ShouldEqual, "aurora")
				So(reports[1].Subject, ShouldEqual, "basil")
				So(reports[2].Subject, ShouldEqual, "cedar")
			})
		})

		Convey("When comparing an empty slice", func() {
			So(scoring.Compare(nil), ShouldBeEmpty)
			So(scoring.Compare([]model.Report{}), ShouldBeEmpty)
		})
	})
}
