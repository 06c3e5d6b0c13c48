package notification

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one purchased line in a notification message.
type OrderLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Customer is the contact information collected at checkout. Optional fields
// may be empty; the formatter renders them as empty strings.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// FormatOrderMessage renders an order into the human-readable summary sent to
// the store's notification channel. It is pure and deterministic.
func FormatOrderMessage(orderID uuid.UUID, lines []OrderLine, total decimal.Decimal, customer Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New Order #%s:\n\n", orderID)

	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Fprintf(&b, "%s x%d - $%s", line.Name, line.Quantity, lineTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\n\nTotal: $%s\n", total.StringFixed(2))
	fmt.Fprintf(&b, "Shipping Address: %s\n", customer.Address)
	fmt.Fprintf(&b, "Customer: %s (%s)", customer.Name, customer.Email)

	return b.String()
}
