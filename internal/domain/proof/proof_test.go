package proof_test

import (
	"regexp"
	"testing"

	proof "github.com/okian/sentia/internal/domain/proof"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFingerprint(t *testing.T) {
	Convey("Given a raw score map", t, func() {
		raw := map[string]float64{
			"metacognition":      0.89,
			"self_modeling":      0.88,
			"temporal_continuity": 0.92,
		}

		Convey("Then the fingerprint should be a lowercase 64-char hex digest", func() {
			hash := proof.Fingerprint(raw)
			So(hash, ShouldHaveLength, 64)
			So(regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(hash), ShouldBeTrue)
		})

		Convey("When the same map is fingerprinted twice", func() {
			Convey("Then the digests should be identical", func() {
				So(proof.Fingerprint(raw), ShouldEqual, proof.Fingerprint(raw))
			})
		})

		Convey("When an equal map is built in a different insertion order", func() {
			other := map[string]float64{}
			other["temporal_continuity"] = 0.92
			other["metacognition"] = 0.89
			other["self_modeling"] = 0.88

			Convey("Then the digests should be identical", func() {
				So(proof.Fingerprint(other), ShouldEqual, proof.Fingerprint(raw))
			})
		})

		Convey("When a value differs", func() {
			other := map[string]float64{
				"metacognition":      0.89,
				"self_modeling":      0.88,
				"temporal_continuity": 0.921,
			}

			Convey("Then the digests should differ", func() {
				So(proof.Fingerprint(other), ShouldNotEqual, proof.Fingerprint(raw))
			})
		})
	})
}

func TestCanonical(t *testing.T) {
	Convey("Given maps in various shapes", t, func() {
		Convey("Then keys should be sorted and floats kept in shortest form", func() {
			s := proof.Canonical(map[string]float64{"b": 1, "a": 0.847})
			So(s, ShouldEqual, `{"a":0.847,"b":1}`)
		})

		Convey("Then an empty map should canonicalize to an empty object", func() {
			So(proof.Canonical(map[string]float64{}), ShouldEqual, `{}`)
			So(proof.Canonical(nil), ShouldEqual, `{}`)
		})

		Convey("Then negative and sub-unit values should round-trip", func() {
			s := proof.Canonical(map[string]float64{"x": -0.5})
			So(s, ShouldEqual, `{"x":-0.5}`)
		})
	})
}
