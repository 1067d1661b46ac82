package railway

// Health summarizes a service-environment's latest deployment outcome.
type Health string

const (
	HealthHealthy   Health = "HEALTHY"
	HealthDeploying Health = "DEPLOYING"
	HealthDegraded  Health = "DEGRADED"
	HealthDown      Health = "DOWN"
	HealthUnknown   Health = "UNKNOWN"
)

// ServiceRow is one flattened service-environment status line of the
// dashboard overview. Rebuilt wholesale on every poll, never mutated.
type ServiceRow struct {
	ProjectID       string `json:"projectId"`
	ProjectName     string `json:"projectName"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	EnvironmentID   string `json:"environmentId"`
	EnvironmentName string `json:"environmentName"`
	Health          Health `json:"health"`
	LastDeployStatus string `json:"lastDeployStatus,omitempty"`
	LastDeployAt     string `json:"lastDeployAt,omitempty"`
	RailwayURL       string `json:"railwayUrl,omitempty"`
}

// OverviewGraph mirrors the provider's nested workspace graph. The shape is
// an external protocol boundary; nothing outside this package depends on it.
type OverviewGraph struct {
	Me struct {
		Workspaces []Workspace `json:"workspaces"`
	} `json:"me"`
}

type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team *Team  `json:"team"`
}

type Team struct {
	ID       string `json:"id"`
	Projects struct {
		Edges []struct {
			Node Project `json:"node"`
		} `json:"edges"`
	} `json:"projects"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Environments struct {
		Edges []struct {
			Node Environment `json:"node"`
		} `json:"edges"`
	} `json:"environments"`
	Services struct {
		Edges []struct {
			Node Service `json:"node"`
		} `json:"edges"`
	} `json:"services"`
}

type Environment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Service struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ServiceInstances struct {
		Edges []struct {
			Node ServiceInstance `json:"node"`
		} `json:"edges"`
	} `json:"serviceInstances"`
}

type ServiceInstance struct {
	ID               string      `json:"id"`
	EnvironmentID    string      `json:"environmentId"`
	LatestDeployment *Deployment `json:"latestDeployment"`
}

type Deployment struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// LogEntry is one timestamp-tagged line from the environment log API.
type LogEntry struct {
	Message   string   `json:"message"`
	Severity  string   `json:"severity"`
	Timestamp string   `json:"timestamp"`
	Tags      *LogTags `json:"tags"`
}

type LogTags struct {
	DeploymentID string `json:"deploymentId"`
	ServiceID    string `json:"serviceId"`
}
