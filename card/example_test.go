package card_test

import (
	"fmt"

	"github.com/rsolari/valentines-cards/card"
)

// Print boxes of the stock trading-card format.
func ExampleTradingCard() {
	g := card.TradingCard()

	tw, th := g.TrimPx()
	fw, fh := g.FullPx()
	fmt.Printf("trim: %dx%d\n", tw, th)
	fmt.Printf("full: %dx%d\n", fw, fh)
	fmt.Printf("safe inset: %d\n", g.SafeInsetPx())

	// Output:
	// trim: 750x1050
	// full: 825x1125
	// safe inset: 75
}
