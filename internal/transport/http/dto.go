package http

import (
	"encoding/json"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

type AddItemRequestDTO struct {
	ProductID string      `json:"product_id"`
	Quantity  json.Number `json:"quantity"`
}

type CartItemDTO struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	LineTotal    string `json:"line_total"`
}

type CartDTO struct {
	CartID     string        `json:"cart_id"`
	Status     string        `json:"status"`
	Items      []CartItemDTO `json:"items"`
	ItemCount  int           `json:"item_count"`
	TotalItems int           `json:"total_items"`
	TotalPrice string        `json:"total_price"`
	Currency   string        `json:"currency"`
}

type AddItemResponseDTO struct {
	Message string      `json:"message"`
	Item    CartItemDTO `json:"item"`
	Cart    CartDTO     `json:"cart"`
}

type OrderLineDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type CheckoutResponseDTO struct {
	OrderID     string         `json:"order_id"`
	CreatedAt   time.Time      `json:"created_at"`
	TotalAmount string         `json:"total_amount"`
	Currency    string         `json:"currency"`
	ItemCount   int            `json:"item_count"`
	TotalItems  int            `json:"total_items"`
	Lines       []OrderLineDTO `json:"order_lines"`
}

type SellerStatsDTO struct {
	SellerID      string               `json:"seller_id"`
	TotalProducts int                  `json:"total_products"`
	TotalSales    string               `json:"total_sales"`
	TotalOrders   int                  `json:"total_orders"`
	Rating        string               `json:"rating"`
	RatingCount   int                  `json:"rating_count"`
	RecentOrders  []SellerOrderLineDTO `json:"recent_orders"`
}

type SellerOrderLineDTO struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	BuyerID      string    `json:"buyer_id"`
	ProductID    string    `json:"product_id"`
	ProductTitle string    `json:"product_title"`
	Quantity     int       `json:"quantity"`
	Price        string    `json:"price"`
	Currency     string    `json:"currency"`
	OrderedAt    time.Time `json:"ordered_at"`
}

// formatAmount rounds to the currency's standard scale for display.
func formatAmount(m domain.Money) string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return m.Amount.StringFixed(int32(scale))
}

func mapCartItem(item domain.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:           item.ID.String(),
		ProductID:    item.ProductID.String(),
		ProductTitle: item.ProductTitle,
		Quantity:     item.Quantity,
		Price:        formatAmount(item.Price),
		LineTotal:    formatAmount(item.LineTotal()),
	}
}

func mapCart(summary domain.CartSummary) CartDTO {
	items := make([]CartItemDTO, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, mapCartItem(item))
	}

	return CartDTO{
		CartID:     summary.CartID.String(),
		Status:     string(summary.Status),
		Items:      items,
		ItemCount:  summary.ItemCount,
		TotalItems: summary.TotalItems,
		TotalPrice: formatAmount(summary.TotalPrice),
		Currency:   summary.TotalPrice.Currency.String(),
	}
}

func mapCheckout(result domain.CheckoutResult) CheckoutResponseDTO {
	lines := make([]OrderLineDTO, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Price:     formatAmount(line.Price),
		})
	}

	return CheckoutResponseDTO{
		OrderID:     result.OrderID.String(),
		CreatedAt:   result.CreatedAt,
		TotalAmount: formatAmount(result.TotalAmount),
		Currency:    result.TotalAmount.Currency.String(),
		ItemCount:   result.ItemCount,
		TotalItems:  result.TotalItems,
		Lines:       lines,
	}
}

func mapSellerStats(dashboard domain.SellerDashboard) SellerStatsDTO {
	profile := dashboard.Profile

	orders := make([]SellerOrderLineDTO, 0, len(dashboard.RecentOrders))
	for _, line := range dashboard.RecentOrders {
		orders = append(orders, SellerOrderLineDTO{
			ID:           line.ID.String(),
			OrderID:      line.OrderID.String(),
			BuyerID:      line.BuyerID.String(),
			ProductID:    line.ProductID.String(),
			ProductTitle: line.ProductTitle,
			Quantity:     line.Quantity,
			Price:        formatAmount(line.Price),
			Currency:     line.Price.Currency.String(),
			OrderedAt:    line.OrderedAt,
		})
	}

	return SellerStatsDTO{
		SellerID:      profile.UserID.String(),
		TotalProducts: dashboard.TotalProducts,
		TotalSales:    profile.TotalSales.StringFixed(2),
		TotalOrders:   profile.TotalOrders,
		Rating:        profile.Rating.StringFixed(2),
		RatingCount:   profile.RatingCount,
		RecentOrders:  orders,
	}
}
