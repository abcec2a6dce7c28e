// Package product provides the Product aggregate for the vendor catalog.
//
// A product is a listing owned by exactly one vendor. Buyers see the current
// name, price, and stock, but orders snapshot those values at checkout, so a
// vendor editing a listing never rewrites history. Stock is decreased when
// checkout places an order on the product.
package product
