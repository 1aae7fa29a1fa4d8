package advisor

import (
	"fmt"
	"sort"
	"strings"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// Scoring weights. Text relevance dominates; intent-specific bonuses reward
// parts that satisfy the stated constraints. The stock bonus and penalty
// apply only when the user asked for stock.
const (
	relevanceWeight   = 70
	categoryBonus     = 10
	attributeBonus    = 8
	inStockBonus      = 10
	outOfStockPenalty = 25
	maxScore          = 100
)

// Rank scores products against the intent and orders them best-first.
// Scores are normalized to [0, maxScore]. Ties break on higher available
// quantity, then part number, so the ordering is fully deterministic.
func Rank(it domintent.Intent, products []domcat.Product) []domcat.RankedProduct {
	if len(products) == 0 {
		return nil
	}

	topRelevance := 0.0
	for _, p := range products {
		if p.Relevance > topRelevance {
			topRelevance = p.Relevance
		}
	}

	ranked := make([]domcat.RankedProduct, 0, len(products))
	for _, p := range products {
		score, reason := scoreProduct(it, p, topRelevance)
		ranked = append(ranked, domcat.RankedProduct{
			Product:   p,
			Score:     score,
			FitReason: reason,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		qi, qj := knownQuantity(ranked[i].Quantity), knownQuantity(ranked[j].Quantity)
		if qi != qj {
			return qi > qj
		}
		return ranked[i].PartNumber < ranked[j].PartNumber
	})

	return ranked
}

func scoreProduct(it domintent.Intent, p domcat.Product, topRelevance float64) (int, string) {
	score := 0
	var reasons []string

	if topRelevance > 0 && p.Relevance > 0 {
		score += int(p.Relevance / topRelevance * relevanceWeight)
		reasons = append(reasons, "keyword relevance")
	}

	if cat := it.Category(); cat != "" && p.Category == cat {
		score += categoryBonus
		reasons = append(reasons, "matches category "+cat)
	}

	for _, name := range sortedAttrNames(it.Attributes()) {
		c := it.Attributes()[name]
		if attrMatches(name, c, p) {
			score += attributeBonus
			reasons = append(reasons, "meets "+name+" requirement")
		}
	}

	switch {
	case it.RequireInStock() && p.InStock():
		score += inStockBonus
		reasons = append(reasons, "in stock")
	case it.RequireInStock() && p.Quantity != nil && *p.Quantity == 0:
		score -= outOfStockPenalty
		reasons = append(reasons, "out of stock")
	}

	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}

	if len(reasons) == 0 {
		return score, "Catalog result."
	}
	return score, sentence(reasons)
}

// sentence joins reason fragments into one short sentence.
func sentence(reasons []string) string {
	s := strings.Join(reasons, "; ") + "."
	return strings.ToUpper(s[:1]) + s[1:]
}

// attrMatches evaluates a single constraint against the product's known
// attributes. Unrecognized attribute names never match.
func attrMatches(name string, c domintent.Constraint, p domcat.Product) bool {
	switch name {
	case domintent.AttrVoltage:
		return c.Matches("", p.Voltage, p.Voltage > 0)
	case domintent.AttrMounting:
		return c.Matches(p.Mounting, 0, false)
	default:
		return false
	}
}

func sortedAttrNames(attrs map[string]domintent.Constraint) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// knownQuantity maps an unknown quantity below every known one, including
// zero, for tie-breaking purposes.
func knownQuantity(q *int) int {
	if q == nil {
		return -1
	}
	return *q
}

// describeTop summarizes the best pick for the conversational answer.
func describeTop(p domcat.RankedProduct) string {
	return fmt.Sprintf("%s (%s) at $%.2f, %s",
		p.Name, p.PartNumber, p.UnitPrice, domcat.StockStatus(p.Quantity))
}
