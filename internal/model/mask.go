package model

import "strings"

// MaskEmail keeps the first two characters of the local part and the full
// domain: "haneul.kim@example.com" -> "ha***@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	local, domain, found := strings.Cut(email, "@")
	head := []rune(local)
	if len(head) > 2 {
		head = head[:2]
	}
	if !found {
		return string(head) + "***"
	}
	return string(head) + "***@" + domain
}

// MaskPhone keeps the leading 3 and trailing 4 digits:
// "010-2345-6789" -> "010-****-6789".
func MaskPhone(phone string) string {
	var digits []rune
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 7 {
		if phone == "" {
			return ""
		}
		return "***"
	}
	return string(digits[:3]) + "-****-" + string(digits[len(digits)-4:])
}
