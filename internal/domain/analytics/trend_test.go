package analytics_test

import (
	"testing"

	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func weekly(subject string, values ...string) []model.GradeRecord {
	dates := []string{
		"2025-01-01", "2025-01-08", "2025-01-15", "2025-01-22",
		"2025-01-29", "2025-02-05", "2025-02-12", "2025-02-19",
	}
	records := make([]model.GradeRecord, len(values))
	for i, v := range values {
		records[i] = model.GradeRecord{Subject: subject, Grade: v, Date: dates[i]}
	}
	return records
}

func TestPredictTrend(t *testing.T) {
	Convey("Given a steadily improving subject", t, func() {
		a := analytics.New(weekly("Maths", "10", "11", "12", "13"))

		Convey("When predicting the trend", func() {
			trend, ok := a.PredictTrend("Maths")
			So(ok, ShouldBeTrue)

			Convey("Then the fit is a perfect improving line", func() {
				So(trend.Trend, ShouldEqual, analytics.TrendImproving)
				So(trend.RSquared, ShouldAlmostEqual, 1.0, 1e-6)
				So(trend.Confidence, ShouldAlmostEqual, 100.0, 1e-6)
				So(trend.Slope, ShouldBeGreaterThan, 0)
				So(trend.DataPoints, ShouldEqual, 4)
			})

			Convey("And the prediction continues the line one interval ahead", func() {
				So(trend.Prediction, ShouldNotBeNil)
				So(*trend.Prediction, ShouldAlmostEqual, 14.0, 0.01)
			})
		})
	})

	Convey("Given a declining subject", t, func() {
		a := analytics.New(weekly("Physique", "16", "14", "12", "10"))

		trend, ok := a.PredictTrend("Physique")
		So(ok, ShouldBeTrue)
		So(trend.Trend, ShouldEqual, analytics.TrendDeclining)
		So(trend.Slope, ShouldBeLessThan, 0)
	})

	Convey("Given a subject already near the top of the scale", t, func() {
		a := analytics.New(weekly("Anglais", "16", "18", "20"))

		Convey("Then the prediction is clamped to the scale maximum", func() {
			trend, ok := a.PredictTrend("Anglais")
			So(ok, ShouldBeTrue)
			So(trend.Prediction, ShouldNotBeNil)
			So(*trend.Prediction, ShouldEqual, 20.0)
		})
	})

	Convey("Given a flat grade history", t, func() {
		a := analytics.New(weekly("Histoire", "13", "13", "13", "13"))

		Convey("Then the trend degenerates to stable with the mean as prediction", func() {
			trend, ok := a.PredictTrend("Histoire")
			So(ok, ShouldBeTrue)
			So(trend.Trend, ShouldEqual, analytics.TrendStable)
			So(trend.Reason, ShouldEqual, "insufficient variance in data")
			So(trend.Prediction, ShouldNotBeNil)
			So(*trend.Prediction, ShouldEqual, 13.0)
		})
	})

	Convey("Given too few dated grades", t, func() {
		a := analytics.New([]model.GradeRecord{
			{Subject: "SVT", Grade: "12", Date: "2025-01-01"},
			{Subject: "SVT", Grade: "14"}, // undated, excluded from the series
		})

		Convey("Then an insufficient-data sentinel is returned, not an error", func() {
			trend, ok := a.PredictTrend("SVT")
			So(ok, ShouldBeTrue)
			So(trend.Trend, ShouldEqual, analytics.TrendInsufficientData)
			So(trend.Prediction, ShouldBeNil)
			So(trend.DataPoints, ShouldEqual, 1)
			So(trend.Reason, ShouldContainSubstring, "need at least 2 dated grades")
		})
	})

	Convey("Given an unknown subject", t, func() {
		a := analytics.New(weekly("Maths", "10", "11"))
		_, ok := a.PredictTrend("Latin")
		So(ok, ShouldBeFalse)
	})
}
