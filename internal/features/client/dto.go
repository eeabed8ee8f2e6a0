package client

// Requests

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Contact string `json:"contact" validate:"max=200"`
}

// Responses

type GetAllClientsResponse struct {
	ClientsCount int       `json:"clientsCount"`
	Clients      []*Client `json:"clients"`
}
