// Package seed generates synthetic grade histories and drives every
// analysis endpoint of a running instance, as a smoke and load tool.
package seed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carnet-app/carnet/pkg/logger"
)

// job is one HTTP call against the target instance.
type job struct {
	method   string
	endpoint string
	payload  interface{}
}

// subjectTarget and futureGrades parameterize the solver endpoints.
const (
	subjectTarget = 14.0
	futureGrades  = 3
)

// Run generates a snapshot and submits it to every analysis endpoint.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	snapshot := buildSnapshot(config.NumSubjects, config.NumGrades)
	stats.GradesGenerated = len(snapshot.Grades)
	log.Info(ctx, "generated grade snapshot",
		logger.Int("grades", stats.GradesGenerated),
		logger.Int("subjects", config.NumSubjects))

	jobs := buildJobs(snapshot)

	client := newHTTPClient(config.Timeout)
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		sent     int64
		ok       int64
		notFound int64
		failed   int64
	)

	jobChan := make(chan job, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				status, err := execute(ctx, client, config.BaseURL, j)
				atomic.AddInt64(&sent, 1)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "request failed",
							logger.String("endpoint", j.endpoint), logger.Error(err))
					}
				case status == http.StatusNotFound:
					atomic.AddInt64(&notFound, 1)
				case status == http.StatusOK:
					atomic.AddInt64(&ok, 1)
				default:
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Warn(ctx, "unexpected status",
							logger.String("endpoint", j.endpoint), logger.Int("status", status))
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobChan <- j:
			}
		}
	}()

	wg.Wait()

	stats.RequestsSent = int(atomic.LoadInt64(&sent))
	stats.RequestsOK = int(atomic.LoadInt64(&ok))
	stats.RequestsNotFound = int(atomic.LoadInt64(&notFound))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))
	stats.Duration = time.Since(stats.StartTime)

	log.Info(ctx, "seed run completed",
		logger.Int("sent", stats.RequestsSent),
		logger.Int("ok", stats.RequestsOK),
		logger.Int("not_found", stats.RequestsNotFound),
		logger.Int("failed", stats.RequestsFailed),
		logger.String("duration", stats.Duration.String()))

	if stats.RequestsFailed > 0 {
		return fmt.Errorf("%d of %d requests failed", stats.RequestsFailed, stats.RequestsSent)
	}
	return nil
}

// buildJobs enumerates every endpoint once per applicable subject.
func buildJobs(snapshot Snapshot) []job {
	jobs := []job{
		{http.MethodPost, "/analysis/averages", snapshot},
		{http.MethodPost, "/analysis/comparison", snapshot},
		{http.MethodPost, "/analysis/statistics", snapshot},
		{http.MethodPost, "/advanced/gpa-projection", snapshot},
		{http.MethodPost, "/advanced/correlations", snapshot},
		{http.MethodGet, "/schools/regions", nil},
		{http.MethodGet, "/schools/search?q=" + url.QueryEscape("lycée"), nil},
	}

	type subjectPayload struct {
		Grades  interface{} `json:"grades"`
		Subject string      `json:"subject"`
	}
	type solverPayload struct {
		Grades        interface{} `json:"grades"`
		Subject       string      `json:"subject"`
		TargetAverage float64     `json:"target_average"`
		NumGrades     int         `json:"num_grades,omitempty"`
	}

	subjectEndpoints := []string{
		"/analysis/statistics",
		"/analysis/trends",
		"/advanced/consistency",
		"/advanced/improvement-rate",
		"/advanced/volatility",
		"/advanced/context-performance",
		"/advanced/benchmark",
		"/advanced/temporal-decay",
		"/advanced/forecast",
		"/advanced/learning-efficiency",
	}

	for _, subject := range subjectsOf(snapshot) {
		for _, ep := range subjectEndpoints {
			jobs = append(jobs, job{http.MethodPost, ep, subjectPayload{Grades: snapshot.Grades, Subject: subject}})
		}
		jobs = append(jobs,
			job{http.MethodPost, "/analysis/needed-grade", solverPayload{Grades: snapshot.Grades, Subject: subject, TargetAverage: subjectTarget}},
			job{http.MethodPost, "/analysis/simulate-grades", solverPayload{Grades: snapshot.Grades, Subject: subject, TargetAverage: subjectTarget, NumGrades: futureGrades}},
		)
	}

	return jobs
}

func subjectsOf(snapshot Snapshot) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, r := range snapshot.Grades {
		if !seen[r.Subject] {
			seen[r.Subject] = true
			subjects = append(subjects, r.Subject)
		}
	}
	return subjects
}

func execute(ctx context.Context, client *HTTPClient, baseURL string, j job) (int, error) {
	if j.method == http.MethodGet {
		return client.Get(ctx, baseURL+j.endpoint)
	}
	return client.Post(ctx, baseURL+j.endpoint, j.payload)
}
