package models

type RequestPinRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required"`
	DOB        string `json:"dob"`
}

type VerifyPinRequest struct {
	Email string `json:"email" binding:"required,email"`
	Pin   string `json:"pin" binding:"required"`
}

type OrderItemRequest struct {
	MenuID   int     `json:"menuId" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	StudentEmail string             `json:"studentEmail" binding:"required,email"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount  float64            `json:"totalAmount" binding:"required"`
	Notes        string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateMenuItemRequest struct {
	ID              int     `json:"id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	PreparationTime int     `json:"preparationTime"`
}

// UpdateMenuItemRequest is a partial patch; nil fields are left untouched.
type UpdateMenuItemRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price"`
	Image           *string  `json:"image"`
	Description     *string  `json:"description"`
	Available       *bool    `json:"available"`
	PreparationTime *int     `json:"preparationTime"`
}
