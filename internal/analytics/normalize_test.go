package analytics

import "testing"

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain cash", raw: "cash", expected: MethodCash},
		{name: "cash with noise", raw: "  CASH payment ", expected: MethodCash},
		{name: "empty value", raw: "", expected: MethodNotSpecified},
		{name: "whitespace only", raw: "   ", expected: MethodNotSpecified},
		{name: "not specified literal", raw: "Not Specified", expected: MethodNotSpecified},
		{name: "upi", raw: "UPI", expected: MethodUPI},
		{name: "gpay", raw: "paid via GPay", expected: MethodUPI},
		{name: "paytm", raw: "Paytm wallet", expected: MethodUPI},
		{name: "phonepe", raw: "PhonePe", expected: MethodUPI},
		{name: "credit card", raw: "Credit Card", expected: MethodCard},
		{name: "debit", raw: "debit", expected: MethodCard},
		{name: "bank transfer", raw: "bank transfer", expected: MethodBankTransfer},
		{name: "neft", raw: "NEFT", expected: MethodBankTransfer},
		{name: "split", raw: "split payment", expected: MethodSplit},
		{name: "unknown passes through title cased", raw: "store voucher", expected: "Store Voucher"},
		{name: "multiline keeps first line", raw: "upi\nref 99231", expected: MethodUPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePaymentMethod(tc.raw); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// Cash wins over card and UPI tokens; the priority order is part of the
// contract, not an accident of map iteration.
func TestNormalizePaymentMethodPriority(t *testing.T) {
	if got := NormalizePaymentMethod("cash + card split"); got != MethodCash {
		t.Fatalf("expected cash to win the split, got %q", got)
	}
	if got := NormalizePaymentMethod("upi card"); got != MethodUPI {
		t.Fatalf("expected upi to win over card, got %q", got)
	}
}

func TestNormalizePaymentMethodIdempotent(t *testing.T) {
	buckets := []string{
		MethodCash, MethodNotSpecified, MethodUPI,
		MethodCard, MethodBankTransfer, MethodSplit,
	}
	for _, bucket := range buckets {
		if got := NormalizePaymentMethod(bucket); got != bucket {
			t.Fatalf("bucket %q not stable under re-normalization, got %q", bucket, got)
		}
	}
}
