package enum

import (
	"encoding/json"
	"strings"
)

// OrderSource is the channel an order arrived through.
type OrderSource string

const (
	SourcePOS       OrderSource = "POS"
	SourceWebsite   OrderSource = "WEBSITE"
	SourceFoodpanda OrderSource = "FOODPANDA"
)

// ParseOrderSource normalizes a raw source string. Unknown sources are
// carried through unchanged.
func ParseOrderSource(raw string) OrderSource {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "POS":
		return SourcePOS
	case "WEBSITE", "WEB":
		return SourceWebsite
	case "FOODPANDA":
		return SourceFoodpanda
	}
	return OrderSource(raw)
}

func (s OrderSource) String() string {
	return string(s)
}

func (s OrderSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *OrderSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseOrderSource(str)
	return nil
}
