package service_test

import (
	"context"
	"testing"

	app "github.com/carnet-app/carnet/internal/app"
	"github.com/carnet-app/carnet/internal/directory"
	"github.com/carnet-app/carnet/internal/domain/model"
	"github.com/carnet-app/carnet/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a service with default configuration", t, func() {
		svc := app.New()

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("Then stats report the running state", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["maxRecords"], ShouldEqual, 10_000)
				So(stats["useCoefficients"], ShouldBeTrue)
			})
		})

		Convey("When building an analyzer", func() {
			records := []model.GradeRecord{
				{Subject: "Maths", Grade: "12", Coefficient: 1},
				{Subject: "Maths", Grade: "16", Coefficient: 3},
			}
			a := svc.Analyzer(records)

			Convey("Then coefficients weigh in by default", func() {
				avg, ok := a.SubjectAverage("Maths")
				So(ok, ShouldBeTrue)
				So(avg, ShouldEqual, 15.0)
			})

			Convey("And the analysis counters advance", func() {
				stats := svc.GetStats()
				So(stats["analysesRun"], ShouldEqual, 1)
				So(stats["recordsSeen"], ShouldEqual, 2)
			})
		})

		Convey("When the snapshot carries unparsable grades", func() {
			a := svc.Analyzer([]model.GradeRecord{
				{Subject: "Maths", Grade: "Abs"},
				{Subject: "Maths", Grade: "garbage"},
				{Subject: "Maths", Grade: "12"},
			})

			Convey("Then they are dropped from aggregates", func() {
				avg, ok := a.SubjectAverage("Maths")
				So(ok, ShouldBeTrue)
				So(avg, ShouldEqual, 12.0)
			})
		})

		Convey("When looking up the directory", func() {
			So(len(svc.Regions(ctx)), ShouldBeGreaterThan, 0)

			matches := svc.SearchSchools(ctx, "henri")
			So(len(matches), ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given a service with a custom policy", t, func() {
		svc := app.New(
			app.WithCoefficientWeighting(false),
			app.WithMaxRecords(5),
			app.WithDirectory(directory.New(directory.WithMaxSearchResults(1))),
		)

		Convey("Then the analyzer ignores coefficients", func() {
			a := svc.Analyzer([]model.GradeRecord{
				{Subject: "Maths", Grade: "12", Coefficient: 1},
				{Subject: "Maths", Grade: "16", Coefficient: 3},
			})
			avg, ok := a.SubjectAverage("Maths")
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 14.0)
		})

		Convey("Then the record cap is applied", func() {
			So(svc.MaxRecords(), ShouldEqual, 5)
		})

		Convey("Then the injected directory is used", func() {
			So(len(svc.SearchSchools(ctx, "lycée")), ShouldEqual, 1)
		})
	})
}
