package api

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=20"`
	Email    string `json:"email"    validate:"required,max=254,email"`
	Password string `json:"password" validate:"required,strongpassword,maxbytes=72"`
	Status   string `json:"status"   validate:"required,oneof=ACTIVE FREE PREMIUM"`
}

// SignInRequest defines the payload for the sign-in endpoint.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,max=254,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// SignInResponse carries the identity token issued on sign-in.
type SignInResponse struct {
	Token string `json:"token"`
}

// CreateItemRequest defines the payload for creating an item.
// Any status sent by the client is ignored; new items start ON_SALE.
// The price ceiling is domain.MaxItemPrice.
type CreateItemRequest struct {
	Name        string  `json:"name"        validate:"required,max=40"`
	Price       *int    `json:"price"       validate:"required,min=1,max=2147483647"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}
