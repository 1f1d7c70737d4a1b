package usecase

import "sort"

// productSynonyms maps a catalog product's canonical name to its accepted
// surface forms: English name, Hindi Latin transliteration, and Devanagari.
// A catalog product without an entry still matches through substring
// containment and the single-variant fallback in synonymVariants.
var productSynonyms = map[string][]string{
	// Vegetables
	"onion":        {"onion", "pyaz", "प्याज"},
	"tomatoes":     {"tomato", "tamatar", "टमाटर", "tomatoes"},
	"potatoes":     {"potato", "aloo", "आलू", "potatoes"},
	"capsicum":     {"capsicum", "shimla mirch", "शिमला मिर्च", "bell pepper"},
	"cabbage":      {"cabbage", "patta gobhi", "पत्ता गोभी"},
	"cauliflower":  {"cauliflower", "phool gobhi", "फूल गोभी"},
	"carrot":       {"carrot", "gajar", "गाजर"},
	"beetroot":     {"beetroot", "chakundar", "चकुंदर"},
	"ginger":       {"ginger", "adrak", "अदरक"},
	"garlic":       {"garlic", "lehsun", "लहसुन"},
	"green chilli": {"green chilli", "hari mirch", "हरी मिर्च", "chillies"},
	"coriander":    {"coriander", "dhaniya", "धनिया", "cilantro"},
	"spinach":      {"spinach", "palak", "पालक"},
	"peas":         {"peas", "matar", "मटर", "green peas"},
	"lemon":        {"lemon", "nimbu", "नींबू"},
	"radish":       {"radish", "mooli", "मूली"},
	"pumpkin":      {"pumpkin", "kaddu", "कद्दू"},

	// Dairy
	"paneer": {"paneer", "पनीर", "cottage cheese"},
	"milk":   {"milk", "doodh", "दूध"},
	"curd":   {"curd", "dahi", "दही", "yogurt"},
	"butter": {"butter", "makhan", "मक्खन"},
	"ghee":   {"ghee", "घी", "clarified butter"},
	"cheese": {"cheese", "cheddar", "mozzarella"},
	"cream":  {"cream", "malai", "मलाई"},
	"lassi":  {"lassi", "लस्सी"},

	// Flours & grains
	"atta":  {"atta", "flour", "aata", "आटा", "wheat flour"},
	"maida": {"maida", "मैदा", "refined flour"},
	"rice":  {"rice", "chawal", "चावल"},
	"poha":  {"poha", "flattened rice", "पोहा"},
	"suji":  {"suji", "semolina", "सूजी", "rava"},
	"besan": {"besan", "gram flour", "बेसन"},

	// Bread variants
	"bread":       {"bread", "loaf", "slice", "ब्रेड", "पाव"},
	"white bread": {"white bread", "सफेद ब्रेड", "normal bread"},
	"brown bread": {"brown bread", "ब्राउन ब्रेड", "whole wheat bread"},
	"bun":         {"bun", "पाव", "bread bun"},

	// Protein
	"egg":     {"egg", "anda", "अंडा"},
	"chicken": {"chicken", "मुर्गा", "murgi", "चिकन"},
	"mutton":  {"mutton", "goat meat", "मटन"},
	"fish":    {"fish", "मछली", "machhli"},

	// Spices & condiments
	"salt":          {"salt", "namak", "नमक"},
	"turmeric":      {"turmeric", "haldi", "हल्दी"},
	"chilli powder": {"chilli powder", "lal mirch", "लाल मिर्च"},
	"cumin":         {"cumin", "jeera", "जीरा"},
	"hing":          {"hing", "asafoetida", "हींग"},
	"garam masala":  {"garam masala", "गरम मसाला"},
	"chole masala":  {"chole masala", "छोले मसाला"},
	"chat masala":   {"chat masala", "चाट मसाला"},
	"black pepper":  {"black pepper", "kali mirch", "काली मिर्च"},
	"oil":           {"oil", "tel", "तेल", "cooking oil", "refined oil"},
	"mustard oil":   {"mustard oil", "sarson ka tel", "सरसों का तेल"},
	"sugar":         {"sugar", "chini", "चीनी"},
	"jaggery":       {"jaggery", "gud", "गुड़"},

	// Street-food staples
	"sev":     {"sev", "bhujia", "सेव", "भुजिया"},
	"puri":    {"puri", "पूरी"},
	"papdi":   {"papdi", "पापड़ी"},
	"samosa":  {"samosa", "समोसा"},
	"kachori": {"kachori", "कचौरी"},
	"pav":     {"pav", "पाव", "bun"},
	"bhature": {"bhature", "भटूरे"},
	"noodles": {"noodles", "चाउमीन", "chowmein"},
	"sauce":   {"sauce", "chutney", "सॉस", "चटनी"},
}

// surfaceToCanonical is the reverse index, built once at process start.
// When the same surface form appears under several canonical keys (e.g.
// "पाव" for bread, bun and pav) the alphabetically first canonical wins,
// keeping lookups deterministic across runs.
var surfaceToCanonical = buildReverseIndex()

func buildReverseIndex() map[string]string {
	canonicals := make([]string, 0, len(productSynonyms))
	for canonical := range productSynonyms {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	idx := make(map[string]string, len(productSynonyms)*4)
	for _, canonical := range canonicals {
		if _, exists := idx[canonical]; !exists {
			idx[canonical] = canonical
		}
		for _, form := range productSynonyms[canonical] {
			if _, exists := idx[form]; !exists {
				idx[form] = canonical
			}
		}
	}
	return idx
}

// synonymVariants returns the declared surface forms of a canonical name
// plus the name itself, deduplicated. Unknown names fall back to a
// single-element set so the matcher can always compare against something.
func synonymVariants(canonical string) []string {
	declared, ok := productSynonyms[canonical]
	if !ok {
		return []string{canonical}
	}

	seen := make(map[string]bool, len(declared)+1)
	variants := make([]string, 0, len(declared)+1)
	for _, form := range declared {
		if !seen[form] {
			seen[form] = true
			variants = append(variants, form)
		}
	}
	if !seen[canonical] {
		variants = append(variants, canonical)
	}
	return variants
}

// canonicalFor resolves a surface form back to its canonical product name.
func canonicalFor(surface string) (string, bool) {
	canonical, ok := surfaceToCanonical[surface]
	return canonical, ok
}
