package validation

import (
	"context"
	"regexp"
	"strings"

	"github.com/api-sage/user-registry/internal/domain"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)
var mobilePrefix = regexp.MustCompile(`^\+91|^0`)
var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// Mobile strips an optional +91 country code or a single leading zero and
// accepts the remainder only if it is exactly ten decimal digits. An empty
// input is reported as not ok, never as an error: callers distinguish
// "absent" from "invalid" through their own required-field checks.
func Mobile(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	cleaned := mobilePrefix.ReplaceAllString(trimmed, "")
	if !mobilePattern.MatchString(cleaned) {
		return "", false
	}

	return cleaned, true
}

// PAN upper-cases the input and accepts it only in the fixed tax-id shape of
// five letters, four digits, one letter.
func PAN(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	upper := strings.ToUpper(trimmed)
	if !panPattern.MatchString(upper) {
		return "", false
	}

	return upper, true
}

// ManagerActive treats an empty managerID as "no manager required" and
// otherwise performs a single read against the repository. It never mutates
// state.
func ManagerActive(ctx context.Context, managers domain.ManagerRepository, managerID string) (bool, error) {
	if strings.TrimSpace(managerID) == "" {
		return true, nil
	}

	return managers.ExistsActive(ctx, managerID)
}
