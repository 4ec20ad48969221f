package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"github.com/angelmondragon/shopassist-backend/pkg/enums"
)

const (
	msgAllProducts      = "Here are all %d products we have:"
	msgNoProducts       = "I couldn't find any products in the database."
	msgCategories       = "Our available product categories are: %s."
	msgNoCategories     = "I don't have any categories to display right now."
	msgGreeting         = "Hello! How can I assist you today? You can ask me to search for products (e.g., 'search for laptop'), view categories, or ask for 'all products'."
	msgFarewell         = "You're welcome! Is there anything else I can help you with? Or, goodbye!"
	msgSearchFound      = "I found %d product(s) matching your search. "
	msgSearchLine       = "\n- %s (%s): $%s"
	msgSearchMore       = "\n...and %d more. Please see the dashboard for full details."
	msgSearchClosing    = "\nIs there anything else I can help you find?"
	msgSearchNoMatch    = "I'm sorry, I couldn't find any products matching your specific query. Please try different keywords or ask for 'all products' to see everything."
	msgNotUnderstood    = "I didn't quite understand your request. Can you please be more specific about the product you're looking for, or try keywords like 'laptop', 'book', 'electronics', or 'show all products'?"
	searchSummaryLength = 3
)

var (
	bulkListingPhrases     = []string{"all products", "show all", "view all"}
	categoryListingPhrases = []string{"categories", "product types"}
	greetingPhrases        = []string{"hello", "hi", "hey", "greetings"}
	farewellPhrases        = []string{"thank you", "thanks", "cheers", "appreciate it", "goodbye", "bye"}
)

// Catalog is the read side of the product store the resolver needs.
type Catalog interface {
	List(ctx context.Context) ([]models.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, terms []string) ([]models.Product, error)
}

// Resolution is the outcome of classifying and answering one query.
type Resolution struct {
	Intent   enums.ChatIntent
	Query    string
	Response string
	Products []products.ProductDTO
}

type rule struct {
	intent enums.ChatIntent
	match  func(query string) bool
	handle func(ctx context.Context, query string) (string, []models.Product, error)
}

// Resolver dispatches a query to the first matching intent rule.
type Resolver struct {
	catalog Catalog
	rules   []rule
}

func NewResolver(catalog Catalog) (*Resolver, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	r := &Resolver{catalog: catalog}
	r.rules = []rule{
		{intent: enums.ChatIntentBulkListing, match: containsAny(bulkListingPhrases), handle: r.listAll},
		{intent: enums.ChatIntentCategoryListing, match: containsAny(categoryListingPhrases), handle: r.listCategories},
		{intent: enums.ChatIntentGreeting, match: containsAny(greetingPhrases), handle: fixed(msgGreeting)},
		{intent: enums.ChatIntentFarewell, match: containsAny(farewellPhrases), handle: fixed(msgFarewell)},
		{intent: enums.ChatIntentKeywordSearch, match: func(string) bool { return true }, handle: r.search},
	}
	return r, nil
}

// Resolve normalizes the raw query and answers it. Errors come only from the catalog.
func (r *Resolver) Resolve(ctx context.Context, rawQuery string) (Resolution, error) {
	query := Normalize(rawQuery)
	for _, rl := range r.rules {
		if !rl.match(query) {
			continue
		}
		response, rows, err := rl.handle(ctx, query)
		if err != nil {
			return Resolution{Intent: rl.intent, Query: query}, err
		}
		return Resolution{
			Intent:   rl.intent,
			Query:    query,
			Response: response,
			Products: products.FromModels(rows),
		}, nil
	}
	// unreachable: the keyword search rule matches everything
	return Resolution{Intent: enums.ChatIntentKeywordSearch, Query: query, Response: msgNotUnderstood, Products: []products.ProductDTO{}}, nil
}

func containsAny(phrases []string) func(string) bool {
	return func(query string) bool {
		for _, p := range phrases {
			if strings.Contains(query, p) {
				return true
			}
		}
		return false
	}
}

func fixed(message string) func(context.Context, string) (string, []models.Product, error) {
	return func(context.Context, string) (string, []models.Product, error) {
		return message, nil, nil
	}
}

func (r *Resolver) listAll(ctx context.Context, _ string) (string, []models.Product, error) {
	rows, err := r.catalog.List(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(rows) == 0 {
		return msgNoProducts, nil, nil
	}
	return fmt.Sprintf(msgAllProducts, len(rows)), rows, nil
}

func (r *Resolver) listCategories(ctx context.Context, _ string) (string, []models.Product, error) {
	categories, err := r.catalog.DistinctCategories(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(categories) == 0 {
		return msgNoCategories, nil, nil
	}
	return fmt.Sprintf(msgCategories, strings.Join(categories, ", ")), nil, nil
}

func (r *Resolver) search(ctx context.Context, query string) (string, []models.Product, error) {
	terms := SearchTerms(query)
	if len(terms) == 0 {
		return msgNotUnderstood, nil, nil
	}
	rows, err := r.catalog.Search(ctx, terms)
	if err != nil {
		return "", nil, err
	}
	if len(rows) == 0 {
		return msgSearchNoMatch, nil, nil
	}
	return summarize(rows), rows, nil
}

func summarize(rows []models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, msgSearchFound, len(rows))
	for _, p := range rows[:min(searchSummaryLength, len(rows))] {
		fmt.Fprintf(&b, msgSearchLine, p.Name, p.Category, p.Price.StringFixed(2))
	}
	if len(rows) > searchSummaryLength {
		fmt.Fprintf(&b, msgSearchMore, len(rows)-searchSummaryLength)
	}
	b.WriteString(msgSearchClosing)
	return b.String()
}
