package domain

import "strings"

// Product is a product-category tag from the closed directory vocabulary.
// Keeping the vocabulary closed means a typo in a filter can never become a
// permanently-false predicate: unknown tokens are dropped at the boundary.
type Product string

const (
	ProductVegetables Product = "vegetables"
	ProductFruits     Product = "fruits"
	ProductMeat       Product = "meat"
	ProductDairy      Product = "dairy"
	ProductEggs       Product = "eggs"
	ProductHoney      Product = "honey"
	ProductFlowers    Product = "flowers"
	ProductBaked      Product = "baked"
	ProductPrepared   Product = "prepared"
	ProductCrafts     Product = "crafts"
)

// Products lists the full product vocabulary.
var Products = []Product{
	ProductVegetables, ProductFruits, ProductMeat, ProductDairy, ProductEggs,
	ProductHoney, ProductFlowers, ProductBaked, ProductPrepared, ProductCrafts,
}

// ParseProduct parses a product tag token case-insensitively.
func ParseProduct(s string) (Product, bool) {
	p := Product(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Products {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Payment is a payment-method tag from the closed directory vocabulary.
type Payment string

const (
	PaymentCash   Payment = "cash"
	PaymentCredit Payment = "credit"
	PaymentDebit  Payment = "debit"
	PaymentSNAP   Payment = "snap"
	PaymentWIC    Payment = "wic"
)

// Payments lists the full payment-method vocabulary.
var Payments = []Payment{PaymentCash, PaymentCredit, PaymentDebit, PaymentSNAP, PaymentWIC}

// ParsePayment parses a payment tag token case-insensitively.
func ParsePayment(s string) (Payment, bool) {
	p := Payment(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Payments {
		if p == known {
			return p, true
		}
	}
	return "", false
}
