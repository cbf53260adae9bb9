package request

type CreateOrderRequest struct {
	ProductIDs []string `json:"product_ids"`
}
