package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeItems serializes line items into the textual blob stored in the
// items column. The format is a JSON array of records; earlier releases
// stored a language-level literal that had to be evaluated to read back,
// which is why decoding goes through a non-executing parser only.
func EncodeItems(items []LineItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}
	return string(b), nil
}

// DecodeItems parses a stored items blob back into line items.
// DecodeItems(EncodeItems(items)) returns the original items.
func DecodeItems(raw string) ([]LineItem, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("decode items: empty blob")
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}
