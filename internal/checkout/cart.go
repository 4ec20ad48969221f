package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	msgCartMissing = "Invalid request: 'cartItems' missing."
	msgCartEmpty   = "Cart is empty."
	msgCartNotList = "Invalid request: 'cartItems' must be a list."
	msgInvalidItem = "Invalid product ID or quantity for item: %s. Product IDs must be numeric (int/float) and quantity must be a positive integer."
)

var lineValidator = validator.New(validator.WithRequiredStructEnabled())

// CartItem is one requested line. Items that failed shape validation keep
// their error so checkout can report violations in input order.
type CartItem struct {
	ProductID int64 `validate:"-"`
	Quantity  int64 `validate:"gt=0"`

	raw string
	err error
}

// NewCartItem builds an already-validated line, for callers that do not decode JSON.
func NewCartItem(productID, quantity int64) CartItem {
	item := CartItem{ProductID: productID, Quantity: quantity}
	item.raw = fmt.Sprintf(`{"id":%d,"quantity":%d}`, productID, quantity)
	if err := lineValidator.Struct(item); err != nil {
		item.err = invalidItem(item.raw, err)
	}
	return item
}

// Err reports the shape violation for this line, if any.
func (c CartItem) Err() error {
	return c.err
}

// DecodeCart reads a checkout body of the form {"cartItems": [...]}. Unknown
// fields are ignored, so clients may send whole product objects; only id and
// quantity are read and any client-side price is discarded.
func DecodeCart(r io.Reader) ([]CartItem, error) {
	if r == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartMissing)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil || body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartMissing)
	}
	rawItems, ok := body["cartItems"]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartMissing)
	}

	rawItems = bytes.TrimSpace(rawItems)
	if isEmptyJSON(rawItems) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartEmpty)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(rawItems, &elems); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgCartNotList)
	}

	items := make([]CartItem, 0, len(elems))
	for _, elem := range elems {
		items = append(items, decodeItem(elem))
	}
	return items, nil
}

// isEmptyJSON mirrors the falsy values a cart can arrive as.
func isEmptyJSON(raw json.RawMessage) bool {
	switch string(raw) {
	case "null", "[]", "{}", `""`, "false", "0":
		return true
	}
	var elems []json.RawMessage
	if json.Unmarshal(raw, &elems) == nil && len(elems) == 0 {
		return true
	}
	return false
}

func decodeItem(elem json.RawMessage) CartItem {
	item := CartItem{raw: compact(elem)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		item.err = invalidItem(item.raw, errors.New("item is not an object"))
		return item
	}

	id, err := parseProductID(fields["id"])
	if err != nil {
		item.err = invalidItem(item.raw, err)
		return item
	}
	qty, err := parseQuantity(fields["quantity"])
	if err != nil {
		item.err = invalidItem(item.raw, err)
		return item
	}

	item.ProductID = id
	item.Quantity = qty
	if err := lineValidator.Struct(item); err != nil {
		item.err = invalidItem(item.raw, err)
	}
	return item
}

func parseNumber(raw json.RawMessage) (json.Number, error) {
	if len(raw) == 0 {
		return "", errors.New("missing")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("not a number: %T", v)
	}
	return n, nil
}

// parseProductID accepts integers and floats; floats are truncated toward zero.
func parseProductID(raw json.RawMessage) (int64, error) {
	n, err := parseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("id: %w", err)
	}
	if id, err := n.Int64(); err == nil {
		return id, nil
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, fmt.Errorf("id out of range: %s", n)
	}
	return int64(f), nil
}

// parseQuantity accepts only integer literals that fit in 64 bits.
func parseQuantity(raw json.RawMessage) (int64, error) {
	n, err := parseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("quantity: %w", err)
	}
	if strings.ContainsAny(n.String(), ".eE") {
		return 0, fmt.Errorf("quantity must be an integer: %s", n)
	}
	q, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("quantity out of range: %s", n)
	}
	return q, nil
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func invalidItem(raw string, cause error) error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, cause, fmt.Sprintf(msgInvalidItem, raw))
}
