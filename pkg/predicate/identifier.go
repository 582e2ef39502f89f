package predicate

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	hexadecimalRegex = regexp.MustCompile(`^(?:0[xXhH])?[0-9A-Fa-f]+$`)
	base64Regex      = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	isinRegex        = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{9}[0-9]$`)

	// tags is the shared tag engine; it caches parsed tags and is safe for
	// concurrent use.
	tags = playground.New()
)

// matchesTag runs a single go-playground validation tag against s.
func matchesTag(s, tag string) bool {
	return tags.Var(s, tag) == nil
}

// IsUUID reports whether s is a UUID in canonical 8-4-4-4-12 form.
// Version 0 accepts any version; otherwise the version nibble must match.
func IsUUID(s string, version int) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	switch version {
	case 0:
		return true
	case 4, 5:
		return id.Version() == uuid.Version(version) && id.Variant() == uuid.RFC4122
	default:
		return id.Version() == uuid.Version(version)
	}
}

// IsMongoID reports whether s is the hex form of a MongoDB ObjectID.
func IsMongoID(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}

// IsHexadecimal reports whether s is a hexadecimal number, with an optional
// 0x or 0h prefix.
func IsHexadecimal(s string) bool {
	return hexadecimalRegex.MatchString(s)
}

// IsHexColor reports whether s is a 3, 4, 6 or 8 digit hex color. The leading
// '#' is optional.
func IsHexColor(s string) bool {
	if s == "" {
		return false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return matchesTag(s, "hexcolor")
}

// IsBase64 reports whether s is standard, padded base64.
func IsBase64(s string) bool {
	if strings.TrimSpace(s) == "" || len(s)%4 != 0 {
		return false
	}
	return base64Regex.MatchString(s)
}

// IsISBN reports whether s is an ISBN. Version 10 or 13 restricts the form,
// version 0 accepts either. Hyphens and spaces are ignored.
func IsISBN(s string, version int) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(s)
	if cleaned == "" {
		return false
	}

	switch version {
	case 0:
		return matchesTag(cleaned, "isbn")
	case 10:
		return matchesTag(cleaned, "isbn10")
	case 13:
		return matchesTag(cleaned, "isbn13")
	default:
		return false
	}
}

// IsISIN reports whether s is an International Securities Identification
// Number with a valid check digit.
func IsISIN(s string) bool {
	if !isinRegex.MatchString(s) {
		return false
	}

	// Letters expand to two digits (A=10 … Z=35) before the Luhn check.
	var digits strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			n := int(r-'A') + 10
			digits.WriteByte(byte('0' + n/10))
			digits.WriteByte(byte('0' + n%10))
			continue
		}
		digits.WriteRune(r)
	}

	return luhn(digits.String())
}
