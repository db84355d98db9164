package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// TimeLayouts are the only accepted time forms. Every one carries a full
// date, so input like "12" is rejected instead of completed from today.
var TimeLayouts = []string{
	"02.01.2006 15:04",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2.1.2006 15:04",
	"2.1.2006",
	"02.01.06 15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return defaultValue
	}
	return result
}

// StrToDecimal accepts both "12.50" and "12,50".
func StrToDecimal(str string, defaultValue decimal.Decimal) decimal.Decimal {
	str = strings.ReplaceAll(strings.TrimSpace(str), ",", ".")
	result, err := decimal.NewFromString(str)
	if err != nil {
		return defaultValue
	}
	return result
}

// StrToTime parses free-form operator input in the local zone.
func StrToTime(str string, defaultValue time.Time) time.Time {
	str = strings.TrimSpace(str)
	if str == "" {
		return defaultValue
	}
	parser := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: time.Local,
		TimeFormats:  TimeLayouts,
	}
	result, err := parser.Parse(str)
	if err != nil {
		return defaultValue
	}
	return result
}
