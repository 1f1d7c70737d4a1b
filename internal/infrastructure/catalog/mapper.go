package catalog

import (
	"strconv"
	"strings"

	"github.com/rasoilink/backend/internal/domain"
)

// firestoreDocument is one document from a Firestore REST list response.
// Name carries the full resource path; the document id is its last segment.
type firestoreDocument struct {
	Name   string                    `json:"name"`
	Fields map[string]firestoreValue `json:"fields"`
}

// firestoreValue is Firestore's typed value wrapper. Only the variants the
// marketplace collections actually use are modeled; integerValue arrives
// as a string per the REST encoding.
type firestoreValue struct {
	StringValue  *string  `json:"stringValue,omitempty"`
	DoubleValue  *float64 `json:"doubleValue,omitempty"`
	IntegerValue *string  `json:"integerValue,omitempty"`
}

// listResponse is the envelope of a Firestore collection list call.
type listResponse struct {
	Documents     []firestoreDocument `json:"documents"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

// documentID extracts the document id from a Firestore resource name like
// "projects/p/databases/(default)/documents/products/abc123".
func documentID(resourceName string) string {
	if idx := strings.LastIndex(resourceName, "/"); idx >= 0 {
		return resourceName[idx+1:]
	}
	return resourceName
}

// stringField returns the trimmed string value of a document field.
func stringField(fields map[string]firestoreValue, key string) string {
	if v, ok := fields[key]; ok && v.StringValue != nil {
		return strings.TrimSpace(*v.StringValue)
	}
	return ""
}

// numberField returns the numeric value of a document field, accepting
// either Firestore's doubleValue or integerValue encoding.
func numberField(fields map[string]firestoreValue, key string) float64 {
	v, ok := fields[key]
	if !ok {
		return 0
	}
	if v.DoubleValue != nil {
		return *v.DoubleValue
	}
	if v.IntegerValue != nil {
		if n, err := strconv.ParseFloat(*v.IntegerValue, 64); err == nil {
			return n
		}
	}
	return 0
}

// supplierNames builds the supplierId -> display name map from the users
// collection. Users without a name still count as resolved suppliers.
func supplierNames(users []firestoreDocument) map[string]string {
	names := make(map[string]string, len(users))
	for _, doc := range users {
		id := documentID(doc.Name)
		if id == "" {
			continue
		}
		name := stringField(doc.Fields, "name")
		if name == "" {
			name = "Supplier"
		}
		names[id] = name
	}
	return names
}

// mapProducts converts product documents into domain values, joining
// supplier display names by supplierId. Names are canonicalized here
// (lower-cased, trimmed) so the matching engine never sees raw input.
// An unresolvable supplierId leaves SupplierName empty.
func mapProducts(docs []firestoreDocument, suppliers map[string]string) []domain.Product {
	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		supplierID := stringField(doc.Fields, "supplierId")
		products = append(products, domain.Product{
			ID:           documentID(doc.Name),
			Name:         strings.ToLower(stringField(doc.Fields, "name")),
			Price:        numberField(doc.Fields, "price"),
			Unit:         stringField(doc.Fields, "unit"),
			SupplierID:   supplierID,
			SupplierName: suppliers[supplierID],
		})
	}
	return products
}
