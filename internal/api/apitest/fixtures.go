package apitest

import "github.com/Iron-Ham/playground/internal/api"

// CacheStampede returns a scenario with two actions, id "a".
func CacheStampede() api.Scenario {
	return api.Scenario{
		ID:                  "a",
		Title:               "Cache Stampede",
		Category:            "Caching",
		ProblemDescription:  "Many requests miss the cache at once and hammer the database.",
		SolutionDescription: "Use a single-flight lock so only one request rebuilds the entry.",
		Actions: []api.Action{
			{ID: "expire", Name: "Expire Key"},
			{ID: "burst", Name: "Send Burst"},
		},
		DashboardComponents: []api.DashboardComponent{
			{ID: "db_queries", Name: "DB Queries", Type: "key_value"},
			{ID: "cache", Name: "Cache Contents", Type: "key_value"},
		},
	}
}

// SimpleCRUD returns a scenario with one action, id "b".
func SimpleCRUD() api.Scenario {
	return api.Scenario{
		ID:                  "b",
		Title:               "Simple CRUD",
		ProblemDescription:  "A plain create/read/update/delete flow.",
		SolutionDescription: "Nothing to fix; it is the baseline.",
		Actions: []api.Action{
			{ID: "create", Name: "Create Row"},
		},
	}
}
