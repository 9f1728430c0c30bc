package models

import (
	"fmt"
	"strings"
	"time"
)

type ReceiptCompany struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReceiptCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReceiptItem struct {
	Item        string `json:"item"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type ReceiptTransaction struct {
	ID    string        `json:"id"`
	Date  string        `json:"date"`
	Items []ReceiptItem `json:"items"`
	Total string        `json:"total"`
}

type Receipt struct {
	Company     ReceiptCompany     `json:"company"`
	Customer    ReceiptCustomer    `json:"customer"`
	Transaction ReceiptTransaction `json:"transaction"`
}

// NewReceipt builds the receipt for a completed purchase.
func NewReceipt(company ReceiptCompany, customerName, customerEmail, transactionID, planName string, amountCents int64, currency string) Receipt {
	price := fmt.Sprintf("%s $%.2f", strings.ToUpper(currency), float64(amountCents)/100)
	return Receipt{
		Company: company,
		Customer: ReceiptCustomer{
			Name:  customerName,
			Email: customerEmail,
		},
		Transaction: ReceiptTransaction{
			ID:   transactionID,
			Date: time.Now().Format("January 2, 2006"),
			Items: []ReceiptItem{
				{
					Item:        "Purchase",
					Description: planName,
					Price:       price,
				},
			},
			Total: price,
		},
	}
}
