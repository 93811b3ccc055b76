package utils

import "regexp"

var (
	// National IDs follow the 5-7-1 digit pattern, e.g. 42101-1234567-1.
	nationalIDPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func IsValidNationalID(id string) bool {
	return nationalIDPattern.MatchString(id)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
