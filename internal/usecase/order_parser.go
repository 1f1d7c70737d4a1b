package usecase

import (
	"strconv"

	"github.com/rasoilink/backend/internal/domain"
)

// OrderParser walks a normalized token stream and pairs quantity tokens
// with the item token that follows them. It is pure and stateless between
// calls: one immutable catalog snapshot in, one fresh ParseResult out, so
// concurrent parses need no coordination.
type OrderParser struct {
	matcher *MatchingService
}

// NewOrderParser creates an order parser backed by the given matcher.
func NewOrderParser(matcher *MatchingService) *OrderParser {
	return &OrderParser{matcher: matcher}
}

// Parse interprets a transcribed order against a catalog snapshot.
//
// Per position: a numeric token (after numeral-word substitution) sets the
// pending quantity and the next token becomes the item; otherwise the
// current token is the item with quantity 1. A trailing numeral with no
// item token is discarded. Quantity and item are coupled strictly by
// adjacency in the token stream.
//
// Malformed input is never an error: "no understanding" is the valid
// result {no line items, unresolved terms, token count}.
func (p *OrderParser) Parse(text string, catalog []domain.Product) domain.ParseResult {
	tokens := tokenize(text)

	result := domain.ParseResult{TokenCount: len(tokens)}
	if len(tokens) == 0 {
		return result
	}

	for i := 0; i < len(tokens); i++ {
		qty := 1
		word := tokens[i]

		if n, ok := parseQuantity(word); ok {
			// "0 aloo" still names the item; quantities stay positive.
			if n < 1 {
				n = 1
			}
			qty = n
			i++
			if i >= len(tokens) {
				break // trailing numeral, nothing to pair it with
			}
			word = tokens[i]
		}

		matches := p.matcher.FindProducts(word, catalog)
		if len(matches) == 0 {
			// Stray numerals are consumed silently, never reported.
			if _, numeric := parseQuantity(word); !numeric {
				result.Unresolved = append(result.Unresolved, word)
			}
			continue
		}

		match := matches[0]
		if !match.HasSupplier() {
			// Data-integrity condition upstream: matchable but unusable.
			result.Unresolved = append(result.Unresolved, word)
			continue
		}

		merged := false
		for j := range result.LineItems {
			if result.LineItems[j].Product.ID == match.ID {
				result.LineItems[j].Quantity += qty
				merged = true
				break
			}
		}
		if !merged {
			result.LineItems = append(result.LineItems, domain.LineItem{Product: match, Quantity: qty})
		}
	}

	return result
}

// parseQuantity interprets a token as an integer quantity, either a digit
// string or a recognized spelled-out number word.
func parseQuantity(token string) (int, bool) {
	if n, ok := resolveNumeral(token); ok {
		return n, true
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return 0, false
}
