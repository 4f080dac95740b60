package analytics_test

import (
	"testing"

	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestImprovementRate(t *testing.T) {
	Convey("Given two months of grades ending above the start", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "Maths", Grade: "12", Date: "2025-01-01"},
			{Subject: "Maths", Grade: "16", Date: "2025-01-31"},
			{Subject: "Maths", Grade: "14", Date: "2025-03-02"},
		})

		Convey("When measuring improvement", func() {
			imp, ok := a.ImprovementRate("Maths")
			So(ok, ShouldBeTrue)

			Convey("Then only the endpoints matter", func() {
				So(imp.StartGrade, ShouldEqual, 12.0)
				So(imp.CurrentGrade, ShouldEqual, 14.0)
				So(imp.DaysElapsed, ShouldEqual, 60)
				So(imp.ImprovementRate, ShouldEqual, 2.0)
				So(imp.RatePerMonth, ShouldEqual, 1.0) // 2 points over 60 days
				So(imp.Trend, ShouldEqual, analytics.RateStrongImprovement)
			})
		})
	})

	Convey("Given a mild decline", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "Physique", Grade: "14", Date: "2025-01-01"},
			{Subject: "Physique", Grade: "13.5", Date: "2025-01-31"},
		})

		imp, ok := a.ImprovementRate("Physique")
		So(ok, ShouldBeTrue)
		So(imp.RatePerMonth, ShouldEqual, -0.5)
		So(imp.Trend, ShouldEqual, analytics.RateStrongDecline) // -0.5 is not > -0.5
	})

	Convey("Given grades on the same day", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "SVT", Grade: "12", Date: "2025-01-01"},
			{Subject: "SVT", Grade: "15", Date: "2025-01-01"},
		})

		Convey("Then a zero-day span yields a sentinel, not a division by zero", func() {
			imp, ok := a.ImprovementRate("SVT")
			So(ok, ShouldBeTrue)
			So(imp.Trend, ShouldEqual, analytics.TrendInsufficientTime)
		})
	})

	Convey("Given a single dated grade", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "Anglais", Grade: "12", Date: "2025-01-01"},
		})

		imp, ok := a.ImprovementRate("Anglais")
		So(ok, ShouldBeTrue)
		So(imp.Trend, ShouldEqual, analytics.TrendInsufficientData)
	})

	Convey("Given an unknown subject", t, func() {
		a := analytics.New(nil)
		_, ok := a.ImprovementRate("Latin")
		So(ok, ShouldBeFalse)
	})
}
