package validators

import (
	"regexp"
	"strings"
)

// international form, "+" optional, at most 13 characters in total
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,12}$`)

func NormalizePhone(phone string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(phone))
}

func IsPhoneValid(phone string) bool {
	return phonePattern.MatchString(phone)
}
