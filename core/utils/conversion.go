package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToString converts decoded JSON and SQL values to string.
// Numbers decoded with json.Decoder.UseNumber keep every digit. nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
