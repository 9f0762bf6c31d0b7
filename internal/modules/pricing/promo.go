package pricing

// Promo codes are a fixed table of flat whole-currency deductions. Codes are
// maintained here rather than in storage; marketing rotates them by release.
var promoCodes = map[string]int64{
	"OPENDESK10": 10 * centsPerUnit,
	"TEAMDAY20":  20 * centsPerUnit,
	"WELCOME10":  10 * centsPerUnit,
}

func promoDeduction(code string) int64 {
	if code == "" {
		return 0
	}
	return promoCodes[code]
}

// KnownPromo reports whether the code is in the current table, for UI preview.
func KnownPromo(code string) bool {
	_, ok := promoCodes[code]
	return ok
}
