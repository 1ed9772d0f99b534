// Package scratch implements the scratch-card engine.
//
// A card's match count is the number of its owned numbers that appear in its
// winning set. The count drives two aggregates:
//
//   - the score, where k matches are worth 2^(k-1) points;
//   - the cascade, where a card with k matches wins one copy of each of the
//     next k cards and every copy wins again by the same rule.
//
// Processing is a fixed pipeline. ParseDeck turns input lines into a
// domain.Deck, an Evaluator computes and caches match counts, and a Service
// folds them into the two totals. Two cascade strategies are available and
// always agree: the work-list (default) materialises each instance, the
// multiplier keeps one copy count per card.
//
//	svc := scratch.NewDefaultService()
//	deck, err := scratch.ParseDeck(lines)
//	if err != nil {
//		return err
//	}
//	score, _ := svc.TotalPoints(deck)
//	instances, _ := svc.TotalInstances(deck)
package scratch
