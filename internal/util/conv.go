package util

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseNumber 将字符串转换为数字，解析失败时返回 0
func ParseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

// ToNumber 按 Number(x)||0 的语义将任意 JSON 值转换为数字
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		return ParseNumber(n.String())
	case string:
		return ParseNumber(n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}
