package directory_test

import (
	"context"
	"sort"
	"testing"

	"github.com/carnet-app/carnet/internal/directory"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given the built-in catalog", t, func() {
		store := directory.New()

		Convey("When listing regions", func() {
			regions := store.Regions(ctx)

			Convey("Then they are non-empty and sorted", func() {
				So(len(regions), ShouldBeGreaterThan, 0)
				So(sort.StringsAreSorted(regions), ShouldBeTrue)
				So(regions, ShouldContain, "Île-de-France")
			})
		})

		Convey("When listing cities of a known region", func() {
			cities, err := store.Cities(ctx, "Île-de-France")
			So(err, ShouldBeNil)
			So(cities, ShouldContain, "Paris")
			So(sort.StringsAreSorted(cities), ShouldBeTrue)
		})

		Convey("When listing cities of an unknown region", func() {
			_, err := store.Cities(ctx, "Atlantide")
			So(err, ShouldEqual, directory.ErrRegionNotFound)
		})

		Convey("When listing schools of a known city", func() {
			schools, err := store.Schools(ctx, "Île-de-France", "Paris")
			So(err, ShouldBeNil)
			So(len(schools), ShouldBeGreaterThan, 0)
			So(schools[0].URL, ShouldNotBeBlank)
		})

		Convey("When listing schools of an unknown city", func() {
			_, err := store.Schools(ctx, "Île-de-France", "Atlantis")
			So(err, ShouldEqual, directory.ErrCityNotFound)
		})
	})

	Convey("Given the search index", t, func() {
		store := directory.New()

		Convey("When searching with accents stripped", func() {
			matches := store.Search(ctx, "lycee henri")

			Convey("Then accented names still match", func() {
				So(len(matches), ShouldBeGreaterThan, 0)
				So(matches[0].Name, ShouldEqual, "Lycée Henri-IV")
				So(matches[0].Region, ShouldEqual, "Île-de-France")
				So(matches[0].City, ShouldEqual, "Paris")
			})
		})

		Convey("When searching case-insensitively", func() {
			So(len(store.Search(ctx, "LOUIS-LE-GRAND")), ShouldEqual, 1)
		})

		Convey("When the query is blank", func() {
			So(store.Search(ctx, "   "), ShouldBeEmpty)
		})

		Convey("When nothing matches", func() {
			So(store.Search(ctx, "zzzzz"), ShouldBeEmpty)
		})
	})

	Convey("Given a capped result limit", t, func() {
		store := directory.New(directory.WithMaxSearchResults(3))

		Convey("Then broad searches are truncated", func() {
			So(len(store.Search(ctx, "lycée")), ShouldEqual, 3)
		})
	})

	Convey("Given a custom catalog", t, func() {
		store := directory.New(directory.WithCatalog(directory.Catalog{
			"Testland": {
				"Testville": {
					{Name: "École Test", URL: "https://example.invalid"},
				},
			},
		}))

		Convey("Then it fully replaces the default one", func() {
			So(store.Regions(ctx), ShouldResemble, []string{"Testland"})
			matches := store.Search(ctx, "ecole")
			So(len(matches), ShouldEqual, 1)
			So(matches[0].Name, ShouldEqual, "École Test")
		})
	})
}
