package railway_test

import (
	"encoding/json"
	"testing"

	"github.com/railboard/railboard/railway"
	"github.com/stretchr/testify/require"
)

// graphFromJSON builds an overview graph the way the GraphQL client would.
func graphFromJSON(t *testing.T, raw string) railway.OverviewGraph {
	t.Helper()
	var graph railway.OverviewGraph
	require.NoError(t, json.Unmarshal([]byte(raw), &graph))
	return graph
}

const overviewFixture = `{
  "me": {
    "workspaces": [
      {
        "id": "ws-1",
        "name": "Workspace",
        "team": {
          "id": "team-1",
          "projects": {
            "edges": [
              {
                "node": {
                  "id": "proj-1",
                  "name": "shop",
                  "environments": {
                    "edges": [
                      {"node": {"id": "env-prod", "name": "production"}},
                      {"node": {"id": "env-stage", "name": "staging"}}
                    ]
                  },
                  "services": {
                    "edges": [
                      {
                        "node": {
                          "id": "svc-api",
                          "name": "api",
                          "serviceInstances": {
                            "edges": [
                              {
                                "node": {
                                  "id": "inst-1",
                                  "environmentId": "env-prod",
                                  "latestDeployment": {
                                    "id": "dep-1",
                                    "status": "SUCCESS",
                                    "createdAt": "2026-08-30T10:00:00Z"
                                  }
                                }
                              },
                              {
                                "node": {
                                  "id": "inst-2",
                                  "environmentId": "env-stage",
                                  "latestDeployment": {
                                    "id": "dep-2",
                                    "status": "CRASHED",
                                    "createdAt": "2026-08-30T11:00:00Z"
                                  }
                                }
                              }
                            ]
                          }
                        }
                      },
                      {
                        "node": {
                          "id": "svc-empty",
                          "name": "worker",
                          "serviceInstances": {"edges": []}
                        }
                      }
                    ]
                  }
                }
              }
            ]
          }
        }
      }
    ]
  }
}`

func TestOverviewRows(t *testing.T) {
	rows := railway.OverviewRows(graphFromJSON(t, overviewFixture))
	require.Len(t, rows, 3)

	t.Run("deployed instance", func(t *testing.T) {
		row := rows[0]
		require.Equal(t, "proj-1", row.ProjectID)
		require.Equal(t, "shop", row.ProjectName)
		require.Equal(t, "svc-api", row.ServiceID)
		require.Equal(t, "env-prod", row.EnvironmentID)
		require.Equal(t, "production", row.EnvironmentName)
		require.Equal(t, railway.HealthHealthy, row.Health)
		require.Equal(t, "SUCCESS", row.LastDeployStatus)
		require.Equal(t, "2026-08-30T10:00:00Z", row.LastDeployAt)
		require.Equal(t, "https://railway.app/project/proj-1?environmentId=env-prod", row.RailwayURL)
	})

	t.Run("crashed instance", func(t *testing.T) {
		require.Equal(t, railway.HealthDown, rows[1].Health)
		require.Equal(t, "staging", rows[1].EnvironmentName)
	})

	t.Run("service with zero instances yields one placeholder row", func(t *testing.T) {
		row := rows[2]
		require.Equal(t, "svc-empty", row.ServiceID)
		require.Empty(t, row.EnvironmentID)
		require.Equal(t, "—", row.EnvironmentName)
		require.Equal(t, railway.HealthUnknown, row.Health)
		require.Empty(t, row.LastDeployStatus)
		require.Equal(t, "https://railway.app/project/proj-1", row.RailwayURL)
	})
}

func TestOverviewRows_MissingPieces(t *testing.T) {
	t.Run("workspace without team", func(t *testing.T) {
		graph := graphFromJSON(t, `{"me":{"workspaces":[{"id":"ws","name":"w"}]}}`)
		require.Empty(t, railway.OverviewRows(graph))
	})

	t.Run("instance without deployment is unknown", func(t *testing.T) {
		graph := graphFromJSON(t, `{
		  "me": {"workspaces": [{"id":"ws","name":"w","team":{"id":"t","projects":{"edges":[{"node":{
		    "id":"p","name":"p",
		    "environments":{"edges":[]},
		    "services":{"edges":[{"node":{"id":"s","name":"s","serviceInstances":{"edges":[{"node":{
		      "id":"i","environmentId":"env-x","latestDeployment":null
		    }}]}}}]}
		  }}]}}}]}}`)

		rows := railway.OverviewRows(graph)
		require.Len(t, rows, 1)
		require.Equal(t, railway.HealthUnknown, rows[0].Health)
		require.Equal(t, "unknown", rows[0].EnvironmentName, "environment missing from the project map")
	})
}

func TestFormatLine(t *testing.T) {
	t.Run("with timestamp", func(t *testing.T) {
		line := railway.FormatLine(railway.LogEntry{
			Message:   "server started",
			Timestamp: "2026-08-30T10:00:00.123456Z",
		})
		require.Equal(t, "[2026-08-30T10:00:00Z] server started", line)
	})

	t.Run("without timestamp", func(t *testing.T) {
		line := railway.FormatLine(railway.LogEntry{Message: "plain"})
		require.Equal(t, "plain", line)
	})
}
