package dto

// ProductRequest carries the multipart form fields of the admin product
// endpoints; images travel separately as uploaded files.
type ProductRequest struct {
	Name        string  `form:"name"`
	Description string  `form:"description"`
	Price       float64 `form:"price"`
	Stock       int64   `form:"stock"`
	Category    string  `form:"category"`
}

// UpdateProductRequest patches only the fields the admin supplied.
type UpdateProductRequest struct {
	Name        *string  `form:"name"`
	Description *string  `form:"description"`
	Price       *float64 `form:"price"`
	Stock       *int64   `form:"stock"`
	Category    *string  `form:"category"`
}
