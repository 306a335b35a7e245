package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func mapMoneyToDomain(amount decimal.Decimal, code string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: parsedCurrency}, nil
}

func mapCartToDomain(row db.Cart) domain.Cart {
	return domain.Cart{
		ID:        row.ID,
		UserID:    row.UserID,
		Status:    domain.CartStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapCartItemToDomain(row db.CartItem) (domain.CartItem, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ID:        row.ID,
		CartID:    row.CartID,
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		Price:     price,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapListCartItemsRowsToDomain(rows []db.ListCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("cart item[%s]: %w", row.ID, err)
		}

		items = append(items, domain.CartItem{
			ID:           row.ID,
			CartID:       row.CartID,
			ProductID:    row.ProductID,
			ProductTitle: row.ProductTitle,
			Quantity:     int(row.Quantity),
			Price:        price,
			CreatedAt:    row.CreatedAt,
		})
	}

	return items, nil
}

func mapCheckoutLineRowToDomain(row db.ListCheckoutLinesRow) (domain.CheckoutLine, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CheckoutLine{}, fmt.Errorf("cart item[%s]: %w", row.CartItemID, err)
	}

	return domain.CheckoutLine{
		Item: domain.CartItem{
			ID:           row.CartItemID,
			CartID:       row.CartID,
			ProductID:    row.ProductID,
			ProductTitle: row.Title,
			Quantity:     int(row.Quantity),
			Price:        price,
			CreatedAt:    row.CreatedAt,
		},
		Product: domain.Product{
			ID:            row.ProductID,
			Title:         row.Title,
			StockQuantity: int(row.StockQuantity),
			Status:        domain.ProductStatus(row.Status),
			SellerID:      row.SellerID,
		},
	}, nil
}

func mapProductToDomain(row db.GetProductRow) (domain.Product, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", row.ID, err)
	}

	return domain.Product{
		ID:    row.ID,
		Title: row.Title,
		Price: price,
		Discount: domain.Discount{
			Type:  domain.DiscountType(row.DiscountType),
			Value: row.DiscountValue,
		},
		StockQuantity: int(row.StockQuantity),
		Status:        domain.ProductStatus(row.Status),
		SellerID:      row.SellerID,
	}, nil
}

func mapOrderLineToDomain(row db.ListOrderLinesRow) (domain.OrderLine, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("order line[%s]: %w", row.ID, err)
	}

	return domain.OrderLine{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		SellerID:  row.SellerID,
		Quantity:  int(row.Quantity),
		Price:     price,
	}, nil
}

func mapSellerOrderLineToDomain(sellerID uuid.UUID, row db.ListRecentSellerOrderLinesRow) (domain.SellerOrderLine, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.SellerOrderLine{}, fmt.Errorf("order line[%s]: %w", row.ID, err)
	}

	return domain.SellerOrderLine{
		OrderLine: domain.OrderLine{
			ID:        row.ID,
			OrderID:   row.OrderID,
			ProductID: row.ProductID,
			SellerID:  uuid.NullUUID{UUID: sellerID, Valid: true},
			Quantity:  int(row.Quantity),
			Price:     price,
		},
		BuyerID:      row.UserID,
		ProductTitle: row.Title,
		OrderedAt:    row.CreatedAt,
	}, nil
}
