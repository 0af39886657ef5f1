package apitests

import (
	"fmt"

	"github.com/jobhunter/integration-tests/client"
	"github.com/jobhunter/integration-tests/servicedef"
)

// routeCheck is one entry of the route catalogue: how to call the route and
// how to decide pass/fail from its response. Keeping the catalogue
// declarative means new routes can be covered without touching the runner
// logic in DoAPIRouteTests.
type routeCheck struct {
	method string
	path   string
	body   interface{}
	check  func(resp client.Response) (bool, string)
}

var routeChecks = []routeCheck{
	{"GET", "/health", nil, checkHealthShape},
	{"GET", "/users", nil, requireListField("users")},
	{"GET", "/jobs", nil, requireListField("items")},
	{"GET", "/candidates", nil, requireListField("items")},
	{"GET", "/recruiters", nil, requireListField("items")},
	{"POST", "/ranking", servicedef.RankingParams{
		UserSkills: []string{"python", "react"},
		JobSkills:  []string{"python", "django"},
	}, checkRankingShape},
	{"GET", "/resumes/test_user", nil, checkNoErrorIndicators},
	{"POST", "/api/scrape-jobs", servicedef.ScrapeJobsParams{
		Platform: "indeed",
		Keyword:  "software engineer",
		Location: "remote",
	}, checkScrapeTrigger},
}

func DoAPIRouteTests(t *T) {
	t.env.routesTotal = len(routeChecks)

	for _, rc := range routeChecks {
		rc := rc
		t.Run(rc.method+" "+rc.path, func(t *T) {
			resp := t.Request(rc.method, rc.path, client.RequestOpts{JSONBody: rc.body})
			if resp.TransportFailed() {
				t.Errorf("route failed: %s", resp.Describe())
				return
			}
			ok, msg := rc.check(resp)
			if !ok {
				t.Errorf("route failed: %s", msg)
				return
			}
			t.env.routesPassed++
			t.Notef("Route accessible - %s", msg)
		})
	}

	t.Run("overall", func(t *T) {
		if t.env.routesPassed == t.env.routesTotal {
			t.Notef("All %d routes working", t.env.routesTotal)
			return
		}
		t.Errorf("only %d/%d routes working", t.env.routesPassed, t.env.routesTotal)
	})
}

func hasErrorIndicators(resp client.Response) bool {
	return resp.HasField("detail") || resp.HasField("error")
}

func checkNoErrorIndicators(resp client.Response) (bool, string) {
	if hasErrorIndicators(resp) {
		return false, resp.Describe()
	}
	return true, "returned data"
}

func checkHealthShape(resp client.Response) (bool, string) {
	if !resp.HasField("status") || !resp.HasField("message") {
		return false, fmt.Sprintf("expected status and message fields, got %s", resp.Describe())
	}
	return true, "returned data"
}

func requireListField(name string) func(client.Response) (bool, string) {
	return func(resp client.Response) (bool, string) {
		if hasErrorIndicators(resp) {
			return false, resp.Describe()
		}
		if !resp.HasField(name) {
			return false, fmt.Sprintf("expected a %q field, got %s", name, resp.Describe())
		}
		return true, fmt.Sprintf("returned %d %s", resp.Field(name).Count(), name)
	}
}

func checkRankingShape(resp client.Response) (bool, string) {
	if !resp.HasField("match_score") {
		return false, fmt.Sprintf("expected a match_score field, got %s", resp.Describe())
	}
	return true, fmt.Sprintf("returned match_score %s", resp.Field("match_score").JSONString())
}

// Scraping depends on outbound network access that containerized test
// environments often do not have, so an absent route is tolerated.
func checkScrapeTrigger(resp client.Response) (bool, string) {
	if resp.IsNotFound() {
		return true, "scraping not available in this environment (accepted)"
	}
	if hasErrorIndicators(resp) {
		return false, resp.Describe()
	}
	return true, "scrape trigger accepted"
}
