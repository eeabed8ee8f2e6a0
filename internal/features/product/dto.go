package product

// Requests

type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Specifications []string `json:"specifications" validate:"required,min=1"`
	SellingUnit    string   `json:"sellingUnit" validate:"required,max=50"`
}

// Responses

type GetAllProductsResponse struct {
	ProductsCount int        `json:"productsCount"`
	Products      []*Product `json:"products"`
}
