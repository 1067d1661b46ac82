package railway

import "fmt"

// OverviewRows flattens the nested workspace graph into the dashboard's
// service-environment rows. Row order is traversal order: workspace, then
// project, then service, then instance.
func OverviewRows(graph OverviewGraph) []ServiceRow {
	rows := []ServiceRow{}

	for _, workspace := range graph.Me.Workspaces {
		if workspace.Team == nil {
			continue
		}
		for _, projectEdge := range workspace.Team.Projects.Edges {
			project := projectEdge.Node
			envNames := environmentNames(project)

			for _, serviceEdge := range project.Services.Edges {
				service := serviceEdge.Node

				instances := service.ServiceInstances.Edges
				for _, instanceEdge := range instances {
					instance := instanceEdge.Node

					envName, ok := envNames[instance.EnvironmentID]
					if !ok {
						envName = "unknown"
					}

					row := ServiceRow{
						ProjectID:       project.ID,
						ProjectName:     project.Name,
						ServiceID:       service.ID,
						ServiceName:     service.Name,
						EnvironmentID:   instance.EnvironmentID,
						EnvironmentName: envName,
						Health:          HealthUnknown,
						RailwayURL:      fmt.Sprintf("https://railway.app/project/%s?environmentId=%s", project.ID, instance.EnvironmentID),
					}
					if d := instance.LatestDeployment; d != nil {
						row.Health = StatusToHealth(d.Status)
						row.LastDeployStatus = d.Status
						row.LastDeployAt = d.CreatedAt
					}
					rows = append(rows, row)
				}

				// A service with no instances still gets exactly one row so it
				// stays visible on the dashboard.
				if len(instances) == 0 {
					rows = append(rows, ServiceRow{
						ProjectID:       project.ID,
						ProjectName:     project.Name,
						ServiceID:       service.ID,
						ServiceName:     service.Name,
						EnvironmentID:   "",
						EnvironmentName: "—",
						Health:          HealthUnknown,
						RailwayURL:      fmt.Sprintf("https://railway.app/project/%s", project.ID),
					})
				}
			}
		}
	}

	return rows
}

func environmentNames(project Project) map[string]string {
	names := make(map[string]string, len(project.Environments.Edges))
	for _, edge := range project.Environments.Edges {
		names[edge.Node.ID] = edge.Node.Name
	}
	return names
}
