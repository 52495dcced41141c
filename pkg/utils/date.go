package utils

import (
	"fmt"
	"strings"
	"time"
)

// formatos de data que o backend da taquilla devolve
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseDate aceita AAAA-MM-DD e os timestamps ISO do backend. O resultado fica em UTC.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}

// DateOnly reduz a data para AAAA-MM-DD. Valores que não são data ficam como vieram.
func DateOnly(dateStr string) string {
	date, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return date.Format(time.DateOnly)
}
