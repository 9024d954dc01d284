package probe

import (
	"testing"

	"github.com/okian/sentia/internal/domain/registry"
	"github.com/okian/sentia/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateSubjects(t *testing.T) {
	Convey("Given a fixed seed", t, func() {
		const seed = 42

		Convey("When generating subjects", func() {
			subjects := generateSubjects(20, seed)

			Convey("Then every subject should score all registered dimensions", func() {
				So(len(subjects), ShouldEqual, 20)
				for _, s := range subjects {
					So(s.Name, ShouldStartWith, "probe-")
					So(len(s.Scores), ShouldEqual, registry.Count())
					for _, v := range s.Scores {
						So(v, ShouldBeBetweenOrEqual, 0, 1)
					}
				}
			})

			Convey("Then regenerating with the same seed should reproduce the scores", func() {
				again := generateSubjects(20, seed)
				for i := range subjects {
					So(again[i].Scores, ShouldResemble, subjects[i].Scores)
				}
			})
		})
	})
}

func TestVerifyRanking(t *testing.T) {
	Convey("Given ranking entries", t, func() {
		Convey("When the ranking is well formed", func() {
			entries := []types.RankEntry{
				{Rank: 1, Subject: "a", Score: 0.9},
				{Rank: 2, Subject: "b", Score: 0.5},
				{Rank: 3, Subject: "c", Score: 0.5},
			}
			So(verifyRanking(entries), ShouldBeNil)
		})

		Convey("When scores are out of order", func() {
			entries := []types.RankEntry{
				{Rank: 1, Subject: "a", Score: 0.4},
				{Rank: 2, Subject: "b", Score: 0.9},
			}
			So(verifyRanking(entries), ShouldWrap, ErrRankingOrder)
		})

		Convey("When rank positions skip", func() {
			entries := []types.RankEntry{
				{Rank: 1, Subject: "a", Score: 0.9},
				{Rank: 3, Subject: "b", Score: 0.5},
			}
			So(verifyRanking(entries), ShouldWrap, ErrRankingGap)
		})

		Convey("When the ranking is empty", func() {
			So(verifyRanking(nil), ShouldBeNil)
		})
	})
}
