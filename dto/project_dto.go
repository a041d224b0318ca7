package dto

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name       string  `json:"name" binding:"required"`
	Client     string  `json:"client"`
	HourlyRate float64 `json:"hourlyRate"`
	Status     string  `json:"status"`
	Color      string  `json:"color"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name       string  `json:"name" binding:"required"`
	Client     string  `json:"client"`
	HourlyRate float64 `json:"hourlyRate"`
	Status     string  `json:"status"`
	Color      string  `json:"color"`
}
