package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Egyptian mobile prefixes by operator (second digit after the leading 01)
var egyptianPrefixes = []string{"010", "011", "012", "015"}

var msisdnPattern = regexp.MustCompile(`^(010|011|012|015)\d{8}$`)

// ValidateMSISDN validates an Egyptian mobile number and normalizes it to
// +20 international form. Accepts local (01XXXXXXXXX), bare (1XXXXXXXXX)
// and international (20..., +20...) input.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, "20") {
		stripped = stripped[2:]
	}
	if strings.HasPrefix(stripped, "1") {
		stripped = "0" + stripped
	}

	if !msisdnPattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid phone number: not an Egyptian mobile number (%s)",
			strings.Join(egyptianPrefixes, "/"))
	}

	return true, "+20" + stripped[1:], nil
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidNationalID checks the shape of an Egyptian national id number
// (14 digits). No checksum validation; the upstream owns that.
func IsValidNationalID(id string) bool {
	return regexp.MustCompile(`^\d{14}$`).MatchString(id)
}

// IsValidVIN checks the shape of a vehicle identification number. Length 17,
// no I/O/Q per ISO 3779.
func IsValidVIN(vin string) bool {
	return regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`).MatchString(strings.ToUpper(vin))
}
