package v1

import "github.com/shenikar/geo_incident_sync/internal/models"

// DTOToIncidentInput преобразует DTO создания в поля нового инцидента
func DTOToIncidentInput(dto CreateIncidentRequest) models.IncidentInput {
	return models.IncidentInput{
		Category:    models.Category(dto.Category),
		Description: dto.Description,
		Priority:    models.Priority(dto.Priority),
		Status:      models.StatusOpen,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
	}
}

// DTOToIncidentPatch преобразует DTO изменения в частичное обновление
func DTOToIncidentPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	var patch models.IncidentPatch
	if dto.Category != nil {
		category := models.Category(*dto.Category)
		patch.Category = &category
	}
	patch.Description = dto.Description
	if dto.Priority != nil {
		priority := models.Priority(*dto.Priority)
		patch.Priority = &priority
	}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		patch.Status = &status
	}
	return patch
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(view models.IncidentView) IncidentResponse {
	return IncidentResponse{
		ID:          view.ID,
		Category:    string(view.Category),
		Description: view.Description,
		Priority:    string(view.Priority),
		Status:      string(view.Status),
		Latitude:    view.Latitude,
		Longitude:   view.Longitude,
		Address:     view.Address,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
		Highlighted: view.Highlighted,
		Pending:     view.Provisional(),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(views []models.IncidentView) []IncidentResponse {
	responses := make([]IncidentResponse, len(views))
	for i, view := range views {
		responses[i] = ModelToIncidentResponse(view)
	}
	return responses
}

func ModelToNotificationResponse(n models.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Details:   n.Details,
		CreatedAt: n.CreatedAt,
	}
	if n.Incident != nil {
		incident := ModelToIncidentResponse(models.IncidentView{Incident: *n.Incident})
		resp.Incident = &incident
	}
	return resp
}

func ModelsToNotificationList(items []models.Notification, counts map[models.NotificationType]int) NotificationListResponse {
	resp := NotificationListResponse{
		Items:  make([]NotificationResponse, len(items)),
		Counts: make(map[string]int, len(counts)),
		Total:  len(items),
	}
	for i, n := range items {
		resp.Items[i] = ModelToNotificationResponse(n)
	}
	for t, c := range counts {
		resp.Counts[string(t)] = c
	}
	return resp
}
