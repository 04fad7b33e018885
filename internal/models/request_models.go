package models

// TokenRequest is the body for issuing a bearer token.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty"`
}

// CreateUserRequest is the body for registering a user on first sign-in.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// AddCartItemRequest is the body for adding an item to a cart.
type AddCartItemRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	ItemRef string  `json:"itemRef" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentRequest is the body for creating a payment intent with the
// upstream processor. Price is in major currency units.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// SettleRequest is the body for submitting a payment that settles cart items.
type SettleRequest struct {
	Email   string   `json:"email" binding:"required,email"`
	Amount  float64  `json:"amount" binding:"required,gt=0"`
	CartIDs []string `json:"cartIds" binding:"required,min=1"`
}
