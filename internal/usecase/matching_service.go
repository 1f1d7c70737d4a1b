package usecase

import (
	"log"
	"strings"

	"github.com/rasoilink/backend/internal/domain"
)

// Edit-distance threshold: only near-exact typo tolerance. A distance of
// 2+ across a large multilingual synonym space produces false positives.
const defaultMaxEditDistance = 2

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	MaxEditDistance    int
	EnableDebugLogging bool
}

// MatchingService resolves a spoken token to catalog products.
// Substring containment against the product name is checked first (handles
// plurals and partially recognized words cheaply), then edit distance
// against the product's synonym variants.
type MatchingService struct {
	maxEditDistance    int
	enableDebugLogging bool
}

// candidate is a (product, score) pair, transient within one match call.
// Score is a non-negative distance; lower is better; 0 is exact/substring.
type candidate struct {
	product domain.Product
	score   int
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	maxDist := config.MaxEditDistance
	if maxDist <= 0 {
		maxDist = defaultMaxEditDistance
	}

	return &MatchingService{
		maxEditDistance:    maxDist,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindProducts returns the best-matching catalog products for a token:
// an empty slice or a single product (the design permits future
// multi-match). Among minimum-score candidates the cheapest product wins;
// on equal price the first one encountered in catalog order is kept.
func (s *MatchingService) FindProducts(token string, catalog []domain.Product) []domain.Product {
	if token == "" || len(catalog) == 0 {
		return nil
	}

	var candidates []candidate

	for _, p := range catalog {
		baseline := strings.TrimSpace(strings.ToLower(p.Name))
		if baseline == "" {
			continue
		}

		if strings.Contains(baseline, token) || strings.Contains(token, baseline) {
			candidates = append(candidates, candidate{product: p, score: 0})
			continue
		}

		// A catalog name may itself be a surface form ("aloo" instead of
		// "potatoes"); resolve it so the full variant set still applies.
		variantKey := baseline
		if canonical, ok := canonicalFor(baseline); ok {
			variantKey = canonical
		}

		best := -1
		for _, variant := range synonymVariants(variantKey) {
			dist := levenshteinDistance(token, strings.TrimSpace(variant))
			if best < 0 || dist < best {
				best = dist
			}
		}
		if best >= 0 && best < s.maxEditDistance {
			candidates = append(candidates, candidate{product: p, score: best})
		}
	}

	if len(candidates) == 0 {
		if s.enableDebugLogging {
			log.Printf("[MATCH] No candidates for token %q", token)
		}
		return nil
	}

	minScore := candidates[0].score
	for _, c := range candidates[1:] {
		if c.score < minScore {
			minScore = c.score
		}
	}

	// Cheapest among the minimum-score survivors; ties keep catalog order.
	var best *candidate
	for i := range candidates {
		c := &candidates[i]
		if c.score != minScore {
			continue
		}
		if best == nil || c.product.Price < best.product.Price {
			best = c
		}
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] Token %q -> %q (score: %d, price: %.2f, candidates: %d)",
			token, best.product.Name, best.score, best.product.Price, len(candidates))
	}

	return []domain.Product{best.product}
}

// levenshteinDistance calculates the edit distance between two strings.
// Insertion, deletion and substitution each cost 1; comparison is over
// code points so Devanagari variants are scored the same way as Latin.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len([]rune(s2))
	}
	if len(s2) == 0 {
		return len([]rune(s1))
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
