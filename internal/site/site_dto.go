package site

type CreateSiteRequest struct {
	Name            string  `json:"name" binding:"required"`
	ClientName      string  `json:"client_name"`
	Location        string  `json:"location"`
	AreaSqft        float64 `json:"area_sqft" binding:"gte=0"`
	ManagerName     string  `json:"manager_name"`
	ManagerPhone    string  `json:"manager_phone"`
	SupervisorName  string  `json:"supervisor_name"`
	SupervisorPhone string  `json:"supervisor_phone"`
	ContractValue   float64 `json:"contract_value" binding:"gte=0"`
	ContractEndDate string  `json:"contract_end_date"`
	Services        string  `json:"services"`
}

type UpdateSiteRequest struct {
	Name            string  `json:"name" binding:"required"`
	ClientName      string  `json:"client_name"`
	Location        string  `json:"location"`
	AreaSqft        float64 `json:"area_sqft" binding:"gte=0"`
	ManagerName     string  `json:"manager_name"`
	ManagerPhone    string  `json:"manager_phone"`
	SupervisorName  string  `json:"supervisor_name"`
	SupervisorPhone string  `json:"supervisor_phone"`
	ContractValue   float64 `json:"contract_value" binding:"gte=0"`
	ContractEndDate string  `json:"contract_end_date"`
	Services        string  `json:"services"`
	Status          string  `json:"status" binding:"required,oneof=active inactive"`
}

type SiteResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ClientName      string  `json:"client_name,omitempty"`
	Location        string  `json:"location,omitempty"`
	AreaSqft        float64 `json:"area_sqft"`
	ManagerName     string  `json:"manager_name,omitempty"`
	ManagerPhone    string  `json:"manager_phone,omitempty"`
	SupervisorName  string  `json:"supervisor_name,omitempty"`
	SupervisorPhone string  `json:"supervisor_phone,omitempty"`
	ContractValue   float64 `json:"contract_value"`
	ContractEndDate string  `json:"contract_end_date,omitempty"`
	Services        string  `json:"services,omitempty"`
	Status          string  `json:"status"`
}
