// ABOUTME: Phone number helpers for tel: links
// ABOUTME: Normalises display numbers to E.164 with libphonenumber
package web

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// telHref builds a tel: link target. Numbers that do not parse fall back to
// their digits.
func telHref(raw, region string) string {
	num, err := phonenumbers.Parse(raw, region)
	if err == nil {
		return "tel:" + phonenumbers.Format(num, phonenumbers.E164)
	}

	var b strings.Builder
	for i, r := range raw {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}
