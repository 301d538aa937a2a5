package service

import "app-builder-backend/internal/database/models"

var statusTransitions = map[models.ProjectStatus][]models.ProjectStatus{
	models.ProjectStatusDraft:    {models.ProjectStatusBuilding},
	models.ProjectStatusBuilding: {models.ProjectStatusDeployed, models.ProjectStatusError},
	models.ProjectStatusDeployed: {models.ProjectStatusBuilding},
	models.ProjectStatusError:    {models.ProjectStatusBuilding},
}

// CanTransition reports whether a project may move from one status to another
func CanTransition(from, to models.ProjectStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// statusesLeadingTo lists, in a fixed order, the statuses that may move to target
func statusesLeadingTo(target models.ProjectStatus) []models.ProjectStatus {
	var from []models.ProjectStatus
	for _, status := range []models.ProjectStatus{
		models.ProjectStatusDraft,
		models.ProjectStatusBuilding,
		models.ProjectStatusDeployed,
		models.ProjectStatusError,
	} {
		if CanTransition(status, target) {
			from = append(from, status)
		}
	}
	return from
}
