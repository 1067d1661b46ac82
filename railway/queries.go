package railway

// GraphQL documents sent to the provider. Treated as opaque external API
// contracts; the schema belongs to the provider.

const overviewQuery = `
  query overview {
    me {
      workspaces {
        id
        name
        team {
          id
          projects {
            edges {
              node {
                id
                name
                environments {
                  edges {
                    node {
                      id
                      name
                    }
                  }
                }
                services {
                  edges {
                    node {
                      id
                      name
                      serviceInstances {
                        edges {
                          node {
                            id
                            environmentId
                            latestDeployment {
                              id
                              status
                              createdAt
                            }
                          }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
`

const environmentLogsQuery = `
  query environmentLogs(
    $environmentId: String!
    $filter: String
    $beforeLimit: Int
  ) {
    environmentLogs(
      environmentId: $environmentId
      filter: $filter
      beforeLimit: $beforeLimit
    ) {
      message
      severity
      timestamp
      tags {
        deploymentId
        serviceId
      }
    }
  }
`

const redeployMutation = `
  mutation serviceInstanceRedeploy($serviceId: String!, $environmentId: String!) {
    serviceInstanceRedeploy(serviceId: $serviceId, environmentId: $environmentId)
  }
`
