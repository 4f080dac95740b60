package grades_test

import (
	"testing"

	"github.com/carnet-app/carnet/internal/domain/grades"
	"github.com/carnet-app/carnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given grade records on different scales", t, func() {
		Convey("When the record is on the canonical scale", func() {
			v, ok := grades.Normalize(model.GradeRecord{Grade: "14"})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 14)
		})

		Convey("When the record is graded out of 10", func() {
			v, ok := grades.Normalize(model.GradeRecord{Grade: "8", OutOf: 10})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 16)
		})

		Convey("When out_of is absent the default scale applies", func() {
			v, ok := grades.Normalize(model.GradeRecord{Grade: "10", OutOf: 0})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 10)
		})

		Convey("When rescaling escapes the canonical range the record is dropped", func() {
			_, ok := grades.Normalize(model.GradeRecord{Grade: "15", OutOf: 10})
			So(ok, ShouldBeFalse)
		})

		Convey("When the grade is a sentinel", func() {
			_, ok := grades.Normalize(model.GradeRecord{Grade: "Absent"})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestBuildSeries(t *testing.T) {
	Convey("Given records with mixed dates", t, func() {
		records := []model.GradeRecord{
			{Subject: "Maths", Grade: "14", Date: "2025-03-01"},
			{Subject: "Maths", Grade: "10", Date: "2025-01-01"},
			{Subject: "Maths", Grade: "12", Date: "2025-02-01"},
			{Subject: "Maths", Grade: "16"},                          // undated
			{Subject: "Maths", Grade: "Absent", Date: "2025-04-01"},  // unparsable
			{Subject: "Maths", Grade: "11", Date: "not-a-date"},      // bad date
		}

		Convey("When building the series", func() {
			series := grades.BuildSeries(records)

			Convey("Then only dated, parseable records survive, sorted ascending", func() {
				So(len(series), ShouldEqual, 3)
				So(series[0].Value, ShouldEqual, 10)
				So(series[1].Value, ShouldEqual, 12)
				So(series[2].Value, ShouldEqual, 14)
				So(series[0].Date.Before(series[1].Date), ShouldBeTrue)
				So(series[1].Date.Before(series[2].Date), ShouldBeTrue)
			})
		})

		Convey("When building bare values", func() {
			values := grades.BuildValues(records)

			Convey("Then undated records count but unparsable ones do not", func() {
				So(values, ShouldResemble, []float64{14, 10, 12, 16, 11})
			})
		})
	})
}

func TestGroup(t *testing.T) {
	Convey("Given records across subjects", t, func() {
		records := []model.GradeRecord{
			{Subject: "Maths", Grade: "12"},
			{Subject: "Français", Grade: "14"},
			{Subject: "Maths", Grade: "16"},
		}
		g := grades.Group(records)

		Convey("Then subjects keep first-appearance order", func() {
			So(g.Subjects(), ShouldResemble, []string{"Maths", "Français"})
			So(g.Len(), ShouldEqual, 2)
		})

		Convey("Then a subject's records are retrievable", func() {
			maths, ok := g.Records("Maths")
			So(ok, ShouldBeTrue)
			So(len(maths), ShouldEqual, 2)
		})

		Convey("Then an unknown subject reports absence", func() {
			_, ok := g.Records("Latin")
			So(ok, ShouldBeFalse)
		})
	})
}
