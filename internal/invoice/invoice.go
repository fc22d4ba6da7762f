package invoice

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Field names one editable attribute of a Document or an Item.
type Field string

// Document fields.
const (
	FieldInvoiceNumber Field = "invoiceNumber"
	FieldDate          Field = "date"
	FieldBillTo        Field = "billTo"
	FieldRecipient     Field = "recipient"
)

// Item fields.
const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldPrice       Field = "price"
)

// Item is one line on the bill. Price keeps whatever text the user typed
// (including in-progress input like a trailing decimal point); it is only
// coerced to a number when a total is computed or displayed.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       string  `json:"price"`
}

// UnmarshalJSON accepts Price as either a JSON string or a bare number.
// Links minted from a freshly loaded document carry numeric prices; edited
// documents carry the raw text. Both decode to the text form.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Quantity    float64         `json:"quantity"`
		Price       json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.ID = raw.ID
	it.Description = raw.Description
	it.Quantity = raw.Quantity
	it.Price = ""

	price := bytes.TrimSpace(raw.Price)
	switch {
	case len(price) == 0 || string(price) == "null":
		// leave empty
	case price[0] == '"':
		var s string
		if err := json.Unmarshal(price, &s); err != nil {
			return err
		}
		it.Price = s
	default:
		// Number literal: keep its textual form.
		it.Price = string(price)
	}
	return nil
}

// Line returns this item's contribution to the total.
func (it Item) Line() float64 {
	return it.Quantity * CoerceAmount(it.Price)
}

// Document is the whole editable invoice. It is passed and replaced by
// value; nothing mutates a Document in place.
type Document struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`
	BillTo        string `json:"billTo"`
	Recipient     string `json:"recipient"`
	Items         []Item `json:"items"`
}

// Default returns the sample document shown on a fresh start.
func Default() Document {
	return Document{
		InvoiceNumber: "INV-001",
		Date:          time.Now().Format("2006-01-02"),
		BillTo:        "John Doe",
		Recipient:     "My Store Inc.",
		Items: []Item{
			{ID: "1", Description: "Item 1", Quantity: 1, Price: "10.00"},
		},
	}
}

// Total sums quantity × price over all items. A price that does not parse
// as a number contributes nothing; the computation never fails.
func (d Document) Total() float64 {
	var sum float64
	for _, it := range d.Items {
		sum += it.Line()
	}
	return sum
}

// Equal reports structural equality, item order included.
func (d Document) Equal(other Document) bool {
	if d.InvoiceNumber != other.InvoiceNumber ||
		d.Date != other.Date ||
		d.BillTo != other.BillTo ||
		d.Recipient != other.Recipient ||
		len(d.Items) != len(other.Items) {
		return false
	}
	for i, it := range d.Items {
		if it != other.Items[i] {
			return false
		}
	}
	return true
}

// CoerceAmount converts free-text price input to a number. Blank or
// unparsable text coerces to 0 so totals always compute.
func CoerceAmount(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return v
}
