package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TempPrefix is the reserved prefix marking client-synthesized identifiers
// of entities that have not been persisted yet.
const TempPrefix = "tmp_"

// ID identifies a draft entity. It is either durable (assigned by the store)
// or temporary (a client token). The distinction is made once, at the JSON
// boundary; the rest of the code switches on the variant instead of parsing
// prefixed strings.
type ID struct {
	durable uint
	temp    string
}

// DurableID wraps a store-assigned identifier.
func DurableID(n uint) ID { return ID{durable: n} }

// TempID wraps a client token. The token is stored without the reserved prefix.
func TempID(token string) ID {
	return ID{temp: strings.TrimPrefix(token, TempPrefix)}
}

// IsZero reports whether the ID carries neither variant (absent entity).
func (id ID) IsZero() bool { return id.durable == 0 && id.temp == "" }

// IsTemp reports whether the ID is a client-synthesized placeholder.
func (id ID) IsTemp() bool { return id.temp != "" }

// Durable returns the durable value, and whether the ID holds one.
func (id ID) Durable() (uint, bool) { return id.durable, id.durable != 0 }

// Temp returns the temporary token (without prefix), and whether the ID holds one.
func (id ID) Temp() (string, bool) { return id.temp, id.temp != "" }

// String renders the wire form: the prefixed token for temporary ids,
// the decimal value for durable ones, "" for zero.
func (id ID) String() string {
	if id.temp != "" {
		return TempPrefix + id.temp
	}
	if id.durable != 0 {
		return strconv.FormatUint(uint64(id.durable), 10)
	}
	return ""
}

// ParseID parses the wire form of an identifier.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, nil
	}
	if strings.HasPrefix(s, TempPrefix) {
		token := strings.TrimPrefix(s, TempPrefix)
		if token == "" {
			return ID{}, fmt.Errorf("malformed temporary identifier %q", s)
		}
		return TempID(token), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return ID{}, fmt.Errorf("malformed identifier %q", s)
	}
	return DurableID(uint(n)), nil
}

// MarshalJSON renders durable ids as numbers and temporary ids as prefixed strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.temp != "" {
		return json.Marshal(TempPrefix + id.temp)
	}
	if id.durable == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(id.durable)
}

// UnmarshalJSON accepts a number, a numeric string, a prefixed temporary
// token, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ID{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		parsed, err := ParseID(str)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("malformed identifier %s", s)
	}
	*id = DurableID(uint(n))
	return nil
}
