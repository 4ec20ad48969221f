package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "search for laptop", Normalize("  Search FOR Laptop \n"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"i", "m", "looking", "for", "red_shoes", "42"}, Tokenize("i'm looking for red_shoes, 42!"))
	assert.Empty(t, Tokenize("?!  ..."))
}

func TestExpandTerm(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{term: "laptops", want: []string{"laptops", "laptop"}},
		{term: "laptop", want: []string{"laptop", "laptops"}},
		{term: "bus", want: []string{"bus"}},
		{term: "pen", want: []string{"pen", "pens"}},
		{term: "tv", want: []string{"tv"}},
		{term: "shoes", want: []string{"shoes", "shoe"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTerm(tt.term))
		})
	}
}

func TestSearchTermsDropsStopWordsAndDedupes(t *testing.T) {
	assert.Equal(t, []string{"search", "searchs", "laptop", "laptops"}, SearchTerms("search for laptop"))
	assert.Equal(t, []string{"laptop", "laptops"}, SearchTerms("laptop laptops"))
	assert.Empty(t, SearchTerms("what is this"))
	assert.Empty(t, SearchTerms(""))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("please"))
	assert.False(t, IsStopWord("laptop"))
}
