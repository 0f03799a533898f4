package crm

type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type UpdateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status" binding:"required,oneof=active inactive"`
}

type ClientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Status        string `json:"status"`
}

type CreateLeadRequest struct {
	Name           string  `json:"name" binding:"required"`
	ContactPerson  string  `json:"contact_person"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	Source         string  `json:"source"`
	EstimatedValue float64 `json:"estimated_value" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

type UpdateLeadRequest struct {
	Name           string  `json:"name" binding:"required"`
	ContactPerson  string  `json:"contact_person"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	Source         string  `json:"source"`
	EstimatedValue float64 `json:"estimated_value" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeadResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ContactPerson  string  `json:"contact_person,omitempty"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Source         string  `json:"source,omitempty"`
	EstimatedValue float64 `json:"estimated_value"`
	Notes          string  `json:"notes,omitempty"`
	Status         string  `json:"status"`
}
