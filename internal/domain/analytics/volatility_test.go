package analytics_test

import (
	"testing"

	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVolatilityByStakes(t *testing.T) {
	Convey("Given grades spread across coefficient bands", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "Maths", Grade: "14", Coefficient: 1},
			{Subject: "Maths", Grade: "15", Coefficient: 1},
			{Subject: "Maths", Grade: "12", Coefficient: 2},
			{Subject: "Maths", Grade: "10", Coefficient: 3},
			{Subject: "Maths", Grade: "16", Coefficient: 4},
		})

		Convey("When bucketing by stakes", func() {
			v, ok := a.VolatilityByStakes("Maths")
			So(ok, ShouldBeTrue)

			Convey("Then each band aggregates its own grades", func() {
				So(v.LowStakes.Count, ShouldEqual, 2)
				So(v.LowStakes.Average, ShouldEqual, 14.5)
				So(v.MediumStakes.Count, ShouldEqual, 1)
				So(v.MediumStakes.Average, ShouldEqual, 12.0)
				So(v.HighStakes.Count, ShouldEqual, 2)
				So(v.HighStakes.Average, ShouldEqual, 13.0)
				So(v.HighStakes.Range, ShouldEqual, 6.0)
			})
		})
	})

	Convey("Given grades in only one band", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "EPS", Grade: "15", Coefficient: 1},
		})

		Convey("Then empty bands keep their label and zero counts", func() {
			v, ok := a.VolatilityByStakes("EPS")
			So(ok, ShouldBeTrue)
			So(v.LowStakes.Count, ShouldEqual, 1)
			So(v.MediumStakes.Count, ShouldEqual, 0)
			So(v.MediumStakes.Label, ShouldNotBeBlank)
			So(v.HighStakes.Count, ShouldEqual, 0)
		})
	})

	Convey("Given an unknown subject", t, func() {
		a := analytics.New(nil)
		_, ok := a.VolatilityByStakes("Latin")
		So(ok, ShouldBeFalse)
	})
}
