package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shoppinglist/internal/models"
)

// affirmative is the token the classifier is instructed to answer
// with; decoding matches it case-insensitively as a substring.
const affirmative = "yes"

const systemPrompt = `You classify products into shopping categories. Your sole task is to answer 'yes' or 'no', without exception, according to whether the product belongs to the category. Accuracy and consistency are paramount. Do not add any punctuation.`

// CategoryResolver resolves a category ID against the loaded catalog
type CategoryResolver interface {
	GetByID(id string) (models.Category, bool)
}

// Gateway decides whether a product name plausibly belongs to a
// category by asking an external text classifier. It issues exactly
// one request per call, never retries, and never propagates the
// underlying failure: any error degrades to a rejection verdict.
// Wrongly rejecting a valid item only costs the user a retry; wrongly
// accepting a miscategorized one silently corrupts history grouping.
type Gateway struct {
	client  ChatClient
	catalog CategoryResolver
	log     *slog.Logger
}

// NewGateway creates a classification gateway
func NewGateway(client ChatClient, catalog CategoryResolver, log *slog.Logger) *Gateway {
	return &Gateway{
		client:  client,
		catalog: catalog,
		log:     log,
	}
}

// Validate reports whether productName belongs to the category with
// the given ID. An unresolvable category ID is a deterministic reject
// and makes no external call.
func (g *Gateway) Validate(ctx context.Context, productName, categoryID string) bool {
	category, ok := g.catalog.GetByID(categoryID)
	if !ok {
		g.log.Warn("category id not in catalog, rejecting without classification",
			"category_id", categoryID,
			"product_name", productName,
		)
		return false
	}

	answer, err := g.client.Complete(ctx, systemPrompt, buildPrompt(productName, category.Name))
	if err != nil {
		g.log.Error("classifier unavailable, degrading to rejection",
			"product_name", productName,
			"category", category.Name,
			"error", err,
		)
		return false
	}

	raw := strings.ToLower(strings.TrimSpace(answer))
	g.log.Debug("classifier answer",
		"product_name", productName,
		"category", category.Name,
		"raw_answer", raw,
	)

	return strings.Contains(raw, affirmative)
}

// buildPrompt embeds the candidate pairing after a fixed example set
// that establishes the expected binary answer format
func buildPrompt(productName, categoryName string) string {
	return fmt.Sprintf(`Determine unambiguously whether the given product belongs to the given category.
Answer only 'yes' or 'no'. Do not add any other text, explanation, or punctuation.

Examples:
product: banana, category: fruits & vegetables -> yes
product: carrot, category: fruits & vegetables -> yes
product: milk, category: vegetables -> no
product: bread roll, category: meat -> no
product: tomatoes, category: fruits & vegetables -> yes
product: croissant, category: baked goods -> yes
product: salmon, category: meat & fish -> yes
product: chair, category: vegetables -> no
product: bleach, category: cleaning supplies -> yes
product: cottage cheese, category: cheeses -> yes
product: whole chicken, category: meat & fish -> yes

product: %s, category: %s ->`, productName, categoryName)
}
