package analytics_test

import (
	"testing"

	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSubjectAverage(t *testing.T) {
	Convey("Given a subject with weighted grades", t, func() {
		records := []model.GradeRecord{
			{Subject: "Maths", Grade: "12", Coefficient: 1},
			{Subject: "Maths", Grade: "16", Coefficient: 3},
		}

		Convey("When coefficients are honored", func() {
			a := analytics.New(records)
			avg, ok := a.SubjectAverage("Maths")
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 15.0) // (12*1 + 16*3) / 4
		})

		Convey("When coefficients are disabled", func() {
			a := analytics.New(records, analytics.WithoutCoefficients())
			avg, ok := a.SubjectAverage("Maths")
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 14.0)
		})

		Convey("When the subject is unknown", func() {
			a := analytics.New(records)
			_, ok := a.SubjectAverage("Latin")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given a subject whose grades are all sentinels", t, func() {
		records := []model.GradeRecord{
			{Subject: "EPS", Grade: "Dispensé"},
			{Subject: "EPS", Grade: "Absent"},
		}
		a := analytics.New(records)

		Convey("Then no average is computable", func() {
			_, ok := a.SubjectAverage("EPS")
			So(ok, ShouldBeFalse)
		})

		Convey("And the subject is omitted from the listing", func() {
			So(a.Averages(), ShouldBeEmpty)
		})
	})
}

func TestAverages(t *testing.T) {
	Convey("Given grades across several subjects", t, func() {
		records := []model.GradeRecord{
			{Subject: "Maths", Grade: "12"},
			{Subject: "Français", Grade: "14"},
			{Subject: "Maths", Grade: "16"},
			{Subject: "Anglais", Grade: "8", OutOf: 10},
		}

		Convey("When listing averages", func() {
			a := analytics.New(records)
			entries := a.Averages()

			Convey("Then every subject appears once, in first-appearance order", func() {
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Subject, ShouldEqual, "Maths")
				So(entries[0].Average, ShouldEqual, 14.0)
				So(entries[0].GradeCount, ShouldEqual, 2)
				So(entries[1].Subject, ShouldEqual, "Français")
				So(entries[2].Subject, ShouldEqual, "Anglais")
				So(entries[2].Average, ShouldEqual, 16.0) // rescaled from /10
			})
		})

		Convey("When the same records arrive in a different order", func() {
			reordered := []model.GradeRecord{records[3], records[2], records[1], records[0]}
			a := analytics.New(records)
			b := analytics.New(reordered)

			Convey("Then per-subject averages are unchanged", func() {
				byName := func(entries []analytics.SubjectAverageEntry) map[string]float64 {
					out := make(map[string]float64)
					for _, e := range entries {
						out[e.Subject] = e.Average
					}
					return out
				}
				So(byName(a.Averages()), ShouldResemble, byName(b.Averages()))
			})
		})
	})
}
