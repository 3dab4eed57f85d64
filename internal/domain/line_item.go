package domain

import "encoding/json"

// LineItem is one product entry within an order. Fields beyond name, sku and
// quantity are preserved in Extra so client-supplied columns survive into the
// generated workbook.
type LineItem struct {
	Name     string
	SKU      string
	Quantity float64
	Extra    map[string]any
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*li = LineItem{}
	for key, value := range raw {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				li.Name = s
			}
		case "sku":
			if s, ok := value.(string); ok {
				li.SKU = s
			}
		case "quantity":
			if n, ok := value.(float64); ok {
				li.Quantity = n
			}
		default:
			if li.Extra == nil {
				li.Extra = map[string]any{}
			}
			li.Extra[key] = value
		}
	}

	return nil
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(li.Extra)+3)
	for key, value := range li.Extra {
		out[key] = value
	}
	out["name"] = li.Name
	out["sku"] = li.SKU
	out["quantity"] = li.Quantity
	return json.Marshal(out)
}

// ParseLineItems decodes the orderDetails text into line items. Callers decide
// what a decode failure means; the workbook generator degrades it to an empty
// list.
func ParseLineItems(encoded string) ([]LineItem, error) {
	if encoded == "" {
		return nil, nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, err
	}
	return items, nil
}
