package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carnet-app/carnet/internal/adapters/http/api"
	app "github.com/carnet-app/carnet/internal/app"
	"github.com/carnet-app/carnet/internal/domain/model"
	"github.com/carnet-app/carnet/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer(t *testing.T, opts ...app.Option) *httptest.Server {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	svc := app.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("service start: %v", err)
	}
	t.Cleanup(svc.Stop)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func sampleGrades() []model.GradeRecord {
	return []model.GradeRecord{
		{Subject: "Maths", Grade: "12", Date: "2025-01-01"},
		{Subject: "Maths", Grade: "14", Date: "2025-01-08"},
		{Subject: "Maths", Grade: "16", Date: "2025-01-15"},
		{Subject: "Français", Grade: "13", Date: "2025-01-01"},
	}
}

func TestAnalysisEndpoints(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given a grade snapshot", t, func() {
		payload := map[string]any{"grades": sampleGrades()}

		Convey("When posting to /analysis/averages", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/averages", payload)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			averages, ok := body["averages"].([]any)
			So(ok, ShouldBeTrue)
			So(len(averages), ShouldEqual, 2)

			first := averages[0].(map[string]any)
			So(first["subject"], ShouldEqual, "Maths")
			So(first["average"], ShouldEqual, 14.0)
		})

		Convey("When posting to /analysis/trends with a subject", func() {
			payload["subject"] = "Maths"
			resp, body := postJSON(t, ts.URL+"/analysis/trends", payload)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["trend"], ShouldEqual, "improving")
		})

		Convey("When posting to /analysis/trends without a subject", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/trends", map[string]any{"grades": sampleGrades()})

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "missing_subject")
		})

		Convey("When naming a subject absent from the snapshot", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/trends",
				map[string]any{"grades": sampleGrades(), "subject": "Latin"})

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(body["code"], ShouldEqual, "subject_not_found")
		})

		Convey("When a subject has too little data the result is 200 with a sentinel", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/trends",
				map[string]any{"grades": sampleGrades(), "subject": "Français"})

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["trend"], ShouldEqual, "insufficient_data")
		})

		Convey("When posting to /analysis/needed-grade", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/needed-grade", map[string]any{
				"grades":         sampleGrades(),
				"subject":        "Français",
				"target_average": 15,
			})

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["needed_grade"], ShouldEqual, 17.0)
			So(body["is_possible"], ShouldEqual, true)
		})

		Convey("When the target average is not positive", func() {
			resp, _ := postJSON(t, ts.URL+"/analysis/needed-grade", map[string]any{
				"grades":         sampleGrades(),
				"subject":        "Maths",
				"target_average": 0,
			})

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body is not JSON", func() {
			resp, err := http.Post(ts.URL+"/analysis/averages", "application/json",
				bytes.NewReader([]byte("{not json")))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Get(ts.URL + "/analysis/averages")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestAdvancedEndpoints(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given a grade snapshot", t, func() {
		subjectPayload := map[string]any{"grades": sampleGrades(), "subject": "Maths"}

		Convey("When posting to /advanced/consistency", func() {
			resp, body := postJSON(t, ts.URL+"/advanced/consistency", subjectPayload)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["stability"], ShouldNotBeNil)
		})

		Convey("When posting to /advanced/gpa-projection", func() {
			resp, body := postJSON(t, ts.URL+"/advanced/gpa-projection",
				map[string]any{"grades": sampleGrades()})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["subjects_analyzed"], ShouldEqual, 2)
		})

		Convey("When posting to /advanced/correlations", func() {
			resp, body := postJSON(t, ts.URL+"/advanced/correlations",
				map[string]any{"grades": sampleGrades()})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			_, hasRows := body["correlations"]
			So(hasRows, ShouldBeTrue)
		})

		Convey("When posting to /advanced/forecast", func() {
			resp, body := postJSON(t, ts.URL+"/advanced/forecast", map[string]any{
				"grades":           sampleGrades(),
				"subject":          "Maths",
				"confidence_level": 0.9,
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["prediction"], ShouldNotBeNil)
		})

		Convey("When posting to /advanced/temporal-decay with a custom window", func() {
			resp, body := postJSON(t, ts.URL+"/advanced/temporal-decay", map[string]any{
				"grades":      sampleGrades(),
				"subject":     "Maths",
				"window_days": 7,
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body, ShouldNotBeNil)
		})
	})
}

func TestRequestLimits(t *testing.T) {
	ts := newTestServer(t, app.WithMaxRecords(2))

	Convey("Given a service capped at 2 records per request", t, func() {
		Convey("When posting a larger snapshot", func() {
			resp, body := postJSON(t, ts.URL+"/analysis/averages",
				map[string]any{"grades": sampleGrades()})

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(body["code"], ShouldEqual, "too_many_records")
		})

		Convey("When posting within the cap", func() {
			resp, _ := postJSON(t, ts.URL+"/analysis/averages", map[string]any{
				"grades": sampleGrades()[:2],
			})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}

func TestSchoolsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given the built-in school directory", t, func() {
		Convey("When listing regions", func() {
			resp, body := getJSON(t, ts.URL+"/schools/regions")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			regions, ok := body["regions"].([]any)
			So(ok, ShouldBeTrue)
			So(len(regions), ShouldBeGreaterThan, 0)
		})

		Convey("When listing cities without a region", func() {
			resp, _ := getJSON(t, ts.URL+"/schools/cities")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When listing cities of an unknown region", func() {
			resp, body := getJSON(t, ts.URL+"/schools/cities?region=Atlantide")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(body["code"], ShouldEqual, "region_not_found")
		})

		Convey("When searching", func() {
			resp, body := getJSON(t, ts.URL+"/schools/search?q=henri")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			results, ok := body["results"].([]any)
			So(ok, ShouldBeTrue)
			So(len(results), ShouldBeGreaterThan, 0)
		})

		Convey("When searching without a query", func() {
			resp, _ := getJSON(t, ts.URL+"/schools/search")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatsAndMiddleware(t *testing.T) {
	ts := newTestServer(t)

	Convey("Given a running server", t, func() {
		Convey("When fetching /stats", func() {
			resp, body := getJSON(t, ts.URL+"/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["started"], ShouldEqual, true)
		})

		Convey("When no request ID is sent one is assigned", func() {
			resp, _ := getJSON(t, ts.URL+"/stats")
			So(resp.Header.Get("X-Request-ID"), ShouldNotBeBlank)
		})

		Convey("When a request ID is sent it is echoed", func() {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/stats", nil)
			So(err, ShouldBeNil)
			req.Header.Set("X-Request-ID", "test-id-123")

			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.Header.Get("X-Request-ID"), ShouldEqual, "test-id-123")
		})
	})
}
