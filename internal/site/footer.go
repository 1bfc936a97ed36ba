package site

import (
	"strconv"
	"strings"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// FooterText stamps the current year into template's {year} placeholders.
func FooterText(template string, now Clock) string {
	if now == nil {
		now = time.Now
	}
	return strings.ReplaceAll(template, "{year}", strconv.Itoa(now().Year()))
}
