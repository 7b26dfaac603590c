package settlement

import "coffee-pos/internal/domain"

// AggregateDemand computes how much of each ingredient the cart needs:
// per-unit recipe quantity times line quantity, summed across lines that
// share an ingredient. Pure; recipe data is loaded by the caller.
func AggregateDemand(items []domain.CartItem, recipes map[int64][]domain.RecipeEntry) map[int64]float64 {
	demand := make(map[int64]float64)
	for _, item := range items {
		for _, entry := range recipes[item.ProductID] {
			demand[entry.IngredientID] += entry.Quantity * float64(item.Quantity)
		}
	}
	return demand
}

func productIDs(items []domain.CartItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
