package usecase

import (
	"fmt"
	"strings"

	"github.com/rasoilink/backend/internal/domain"
)

// confirmationTemplates holds the per-language sentence fragments used to
// render a parse result. Unrecognized language codes fall back to English.
type confirmationTemplates struct {
	added         string
	notFound      string
	noValidItems  string
	notUnderstood string
	supplier      string
}

var templatesByLanguage = map[string]confirmationTemplates{
	"en": {
		added:         "Added",
		notFound:      "Not found",
		noValidItems:  "No valid items found.",
		notUnderstood: "Could not understand your order.",
		supplier:      "Supplier",
	},
	"hi": {
		added:         "जोड़ा गया",
		notFound:      "नहीं मिला",
		noValidItems:  "कोई मान्य सामान नहीं मिला।",
		notUnderstood: "आपका ऑर्डर समझ नहीं आया।",
		supplier:      "आपूर्तिकर्ता",
	},
}

// templatesFor selects the template set for a language code. Region-only
// mismatches ("en-IN", "en-US") resolve to the base language.
func templatesFor(language string) confirmationTemplates {
	if t, ok := templatesByLanguage[language]; ok {
		return t
	}
	if idx := strings.Index(language, "-"); idx > 0 {
		if t, ok := templatesByLanguage[language[:idx]]; ok {
			return t
		}
	}
	return templatesByLanguage["en"]
}

// renderConfirmation turns a parse result into one localized sentence.
// Pure formatting: it performs no matching and never fails.
func renderConfirmation(result domain.ParseResult, language string) string {
	t := templatesFor(language)

	if result.TokenCount == 0 {
		return t.notUnderstood
	}
	if len(result.LineItems) == 0 {
		msg := t.noValidItems
		if len(result.Unresolved) > 0 {
			msg += fmt.Sprintf(" | %s: %s", t.notFound, strings.Join(result.Unresolved, ", "))
		}
		return msg
	}

	parts := make([]string, 0, len(result.LineItems))
	for _, item := range result.LineItems {
		parts = append(parts, fmt.Sprintf("%d %s (%s: %s)",
			item.Quantity, item.Product.Name, t.supplier, item.Product.SupplierName))
	}

	msg := fmt.Sprintf("%s: %s", t.added, strings.Join(parts, ", "))
	if len(result.Unresolved) > 0 {
		msg += fmt.Sprintf(" | %s: %s", t.notFound, strings.Join(result.Unresolved, ", "))
	}
	return msg
}
