package storefrontv1

type Product struct {
	Id             int64   `json:"id"`
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Price          string  `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Rating         float64 `json:"rating"`
	ImageUrl       string  `json:"image_url"`
	Tag            string  `json:"tag"`
}

type LineItem struct {
	Product *Product `json:"product"`
	Qty     int64    `json:"qty"`
}

type Cart struct {
	Lines             []*LineItem `json:"lines"`
	Count             int64       `json:"count"`
	Subtotal          string      `json:"subtotal"`
	FormattedSubtotal string      `json:"formatted_subtotal"`
}

type View struct {
	SessionId      string     `json:"session_id"`
	Version        int64      `json:"version"`
	Categories     []string   `json:"categories"`
	ActiveCategory string     `json:"active_category"`
	SearchText     string     `json:"search_text"`
	Products       []*Product `json:"products"`
	Empty          bool       `json:"empty"`
	Cart           *Cart      `json:"cart"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ListProductsRequest struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Empty    bool       `json:"empty"`
}

type GetProductRequest struct {
	Id int64 `json:"id"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type SessionRequest struct {
	SessionId string `json:"session_id"`
}

type SelectCategoryRequest struct {
	SessionId string `json:"session_id"`
	Category  string `json:"category"`
}

type SetSearchRequest struct {
	SessionId  string `json:"session_id"`
	SearchText string `json:"search_text"`
}

type AddToCartRequest struct {
	SessionId string `json:"session_id"`
	ProductId int64  `json:"product_id"`
}

type ViewResponse struct {
	View *View `json:"view"`
}

type CartResponse struct {
	Cart *Cart `json:"cart"`
}
