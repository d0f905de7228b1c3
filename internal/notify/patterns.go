package notify

import "regexp"

// subjectPattern ties a compiled subject regexp to the capture-group
// positions of the payer name and the amount, which differ per pattern.
type subjectPattern struct {
	re          *regexp.Regexp
	nameGroup   int
	amountGroup int
}

const amountExpr = `([0-9,]+(?:\.[0-9]+)?)`

var (
	// PayPal: "John Apple sent you $20.00 USD"
	paypalPatterns = []subjectPattern{
		{regexp.MustCompile(`(?i)^(.+?)\s+sent\s+you\s+\$` + amountExpr + `\s*USD`), 1, 2},
	}

	// Venmo: "John Doe paid you $20.00" / "John Doe sent you $20.00"
	venmoPatterns = []subjectPattern{
		{regexp.MustCompile(`(?i)^(.+?)\s+(?:paid|sent)\s+you\s+\$` + amountExpr), 1, 2},
	}

	// Wise: "You've received USD 20.00 from John Doe" (name trailing) or
	// "John Doe sent you USD 20.00" (name leading). Both forms are tried,
	// first match wins.
	wisePatterns = []subjectPattern{
		{regexp.MustCompile(`(?i)you(?:'ve)?\s+received\s+[A-Z]{3}\s*` + amountExpr + `\s+from\s+(.+)`), 2, 1},
		{regexp.MustCompile(`(?i)^(.+?)\s+sent\s+you\s+[A-Z]{3}\s*` + amountExpr), 1, 2},
	}
)
