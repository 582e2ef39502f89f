package sanitizer

import "strings"

// NormalizeEmail lowercases an address and folds Gmail aliases: dots and
// +tags in the local part are dropped and googlemail.com becomes gmail.com.
// Input that is not an address is only trimmed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return email
	}

	local := strings.ToLower(email[:at])
	domain := strings.ToLower(email[at+1:])

	if domain == "gmail.com" || domain == "googlemail.com" {
		local, _, _ = strings.Cut(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	}

	return local + "@" + domain
}
