package analytics

import "strings"

// Canonical payment buckets.
const (
	MethodCash         = "Cash"
	MethodNotSpecified = "Not Specified"
	MethodUPI          = "UPI"
	MethodCard         = "Card"
	MethodBankTransfer = "Bank Transfer"
	MethodSplit        = "Split Payment"
)

// NormalizePaymentMethod maps free-text payment values onto canonical
// buckets. The substring checks run in a fixed priority order; a value
// matching several groups is classified by the first match, and that order
// is part of the contract. Re-normalizing a bucket name returns the same
// bucket.
func NormalizePaymentMethod(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(value, "\r\n"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}

	switch {
	case strings.Contains(value, "cash"):
		return MethodCash
	case value == "" || strings.Contains(value, "not specified"):
		return MethodNotSpecified
	case containsAny(value, "upi", "gpay", "paytm", "phonepe"):
		return MethodUPI
	case containsAny(value, "card", "credit", "debit"):
		return MethodCard
	case containsAny(value, "bank", "transfer", "neft"):
		return MethodBankTransfer
	case strings.Contains(value, "split"):
		return MethodSplit
	}
	return titleCase(value)
}

func containsAny(value string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(value, token) {
			return true
		}
	}
	return false
}

func titleCase(value string) string {
	fields := strings.Fields(value)
	for i, field := range fields {
		fields[i] = strings.ToUpper(field[:1]) + field[1:]
	}
	return strings.Join(fields, " ")
}
