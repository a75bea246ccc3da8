package models

// Category - категория инцидента
type Category string

const (
	CategoryPothole        Category = "Pothole"
	CategoryWildlife       Category = "Wildlife"
	CategoryStreetLightOut Category = "Street Light Out"
	CategoryDebrisTrash    Category = "Debris/Trash"
	CategoryTrafficJam     Category = "Traffic Jam"
	CategoryCarAccident    Category = "Car Accident"
	CategoryBrokenDownCar  Category = "Broken Down Car"
	CategoryLaneClosure    Category = "Lane Closure"
	CategoryPolice         Category = "Police"
)

// Categories - все известные категории в порядке отображения
var Categories = []Category{
	CategoryPothole,
	CategoryWildlife,
	CategoryStreetLightOut,
	CategoryDebrisTrash,
	CategoryTrafficJam,
	CategoryCarAccident,
	CategoryBrokenDownCar,
	CategoryLaneClosure,
	CategoryPolice,
}

// Known сообщает, входит ли категория в список известных
func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Priority - приоритет инцидента
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical" // только в админских формах
)

// Status - статус обработки инцидента
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Incident - запись об инциденте в том виде, в котором ее присылает удаленный сервис.
// Временные метки хранятся строками ISO 8601 как есть: сервер отдает их без часового пояса.
type Incident struct {
	ID          int64    `json:"id"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Address     string   `json:"address,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// Provisional сообщает, что запись создана локально и еще не подтверждена сервером
func (i Incident) Provisional() bool {
	return i.ID < 0
}

// IncidentFilter - фильтр для отображаемого набора инцидентов, пустое значение или "All" пропускает все
type IncidentFilter struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

const FilterAll = "All"

// Match проверяет инцидент на соответствие фильтру
func (f IncidentFilter) Match(incident Incident) bool {
	return matchField(f.Category, string(incident.Category)) &&
		matchField(f.Priority, string(incident.Priority)) &&
		matchField(f.Status, string(incident.Status))
}

func matchField(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// IncidentInput - тело запроса на создание или полное обновление инцидента
type IncidentInput struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

// Input возвращает изменяемые поля инцидента
func (i Incident) Input() IncidentInput {
	return IncidentInput{
		Category:    i.Category,
		Description: i.Description,
		Priority:    i.Priority,
		Status:      i.Status,
		Latitude:    i.Latitude,
		Longitude:   i.Longitude,
	}
}

// IncidentView - инцидент в том виде, в котором его видит UI
type IncidentView struct {
	Incident
	Highlighted bool `json:"highlighted"`
}

// IncidentPatch - частичное изменение из админских форм; пустые поля не меняются
type IncidentPatch struct {
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}

// Apply накладывает изменения на полный набор полей
func (p IncidentPatch) Apply(in IncidentInput) IncidentInput {
	if p.Category != nil {
		in.Category = *p.Category
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Priority != nil {
		in.Priority = *p.Priority
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	return in
}
