package http

import "time"

// AddressRequest carries a postal address in request bodies.
type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

// AddressResponse mirrors AddressRequest for responses.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     string          `json:"role" validate:"required,oneof=buyer vendor intermediary admin"`
	Phone    string          `json:"phone"`
	Address  *AddressRequest `json:"address"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse reports the authenticated account.
type LoginResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// UpdateProfileRequest is the body of PUT /api/v1/users/:id.
// A null address clears the stored one.
type UpdateProfileRequest struct {
	Name    string          `json:"name" validate:"required"`
	Phone   string          `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	VendorID    string   `json:"vendor_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
}

// UpdateProductRequest is the body of PUT /api/v1/products/:id.
type UpdateProductRequest struct {
	ActorID     string   `json:"actor_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images"`
}

// CheckoutItemRequest is a single cart position.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	BuyerID       string                `json:"buyer_id" validate:"required,uuid"`
	Items         []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	Street        string                `json:"street" validate:"required"`
	City          string                `json:"city" validate:"required"`
	PostalCode    string                `json:"postal_code" validate:"required"`
	PaymentMethod string                `json:"payment_method" validate:"required"`
	WantsDelivery bool                  `json:"wants_delivery"`
}

// CheckoutResponse lists the orders a checkout produced, one per vendor.
type CheckoutResponse struct {
	OrderIDs []string `json:"order_ids"`
}

// AdvanceFulfillmentRequest is the body of PATCH /api/v1/orders/:id/status.
type AdvanceFulfillmentRequest struct {
	ActorID string `json:"actor_id" validate:"required,uuid"`
	Target  string `json:"target" validate:"required"`
}

// ClaimDeliveryRequest is the body of POST /api/v1/orders/:id/delivery/claim.
type ClaimDeliveryRequest struct {
	IntermediaryID string `json:"intermediary_id" validate:"required,uuid"`
}

// DeliveryActionRequest is the body of the delivery start and complete routes.
type DeliveryActionRequest struct {
	ActorID string `json:"actor_id" validate:"required,uuid"`
}

// CreatedResponse reports the ID of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// PartyOrderResponse is one row of GET /api/v1/orders.
type PartyOrderResponse struct {
	OrderID            string     `json:"order_id"`
	Status             string     `json:"status"`
	DeliveryStatus     *string    `json:"delivery_status,omitempty"`
	Counterparty       string     `json:"counterparty"`
	Subtotal           float64    `json:"subtotal"`
	DeliveryCommission float64    `json:"delivery_commission"`
	CreatedAt          time.Time  `json:"created_at"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

// UnassignedDeliveryResponse is one row of GET /api/v1/deliveries/unassigned.
type UnassignedDeliveryResponse struct {
	OrderID            string          `json:"order_id"`
	VendorName         string          `json:"vendor_name"`
	DeliveryAddress    AddressResponse `json:"delivery_address"`
	Subtotal           float64         `json:"subtotal"`
	DeliveryCommission float64         `json:"delivery_commission"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
