package enums

// ChatIntent is the category a chatbot query resolved to.
type ChatIntent string

const (
	ChatIntentBulkListing     ChatIntent = "bulk_listing"
	ChatIntentCategoryListing ChatIntent = "category_listing"
	ChatIntentGreeting        ChatIntent = "greeting"
	ChatIntentFarewell        ChatIntent = "farewell"
	ChatIntentKeywordSearch   ChatIntent = "keyword_search"
)

var validChatIntents = []ChatIntent{
	ChatIntentBulkListing,
	ChatIntentCategoryListing,
	ChatIntentGreeting,
	ChatIntentFarewell,
	ChatIntentKeywordSearch,
}

// ChatIntents returns every intent in resolution order.
func ChatIntents() []ChatIntent {
	out := make([]ChatIntent, len(validChatIntents))
	copy(out, validChatIntents)
	return out
}

// String implements fmt.Stringer.
func (i ChatIntent) String() string {
	return string(i)
}

// IsValid reports whether the value is a known ChatIntent.
func (i ChatIntent) IsValid() bool {
	for _, candidate := range validChatIntents {
		if candidate == i {
			return true
		}
	}
	return false
}
