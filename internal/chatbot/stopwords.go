package chatbot

// stopWords are dropped before keyword search. Only single words are listed;
// the tokenizer never produces multi-word tokens.
var stopWords = toSet(
	"a", "an", "the", "and", "or", "but", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "of", "at", "by", "for", "with", "from", "on",
	"in", "to", "up", "out", "down", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should", "now", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "i", "me", "my", "myself", "we",
	"our", "ours", "ourselves", "you", "your", "yours", "yourself", "yourselves", "he", "him",
	"his", "himself", "she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "please",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether word is ignored by keyword search.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
