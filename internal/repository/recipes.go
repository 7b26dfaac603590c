package repository

import (
	"context"

	"coffee-pos/internal/domain"
)

// IngredientsForProducts loads the recipe entries for every product in the
// cart. Products without recipe entries simply have no key in the result;
// not every product consumes tracked inventory.
func (s *Store) IngredientsForProducts(ctx context.Context, productIDs []int64) (map[int64][]domain.RecipeEntry, error) {
	recipes := make(map[int64][]domain.RecipeEntry, len(productIDs))
	seen := make(map[int64]bool, len(productIDs))

	for _, pid := range productIDs {
		if seen[pid] {
			continue
		}
		seen[pid] = true

		rows, err := s.db.QueryContext(ctx, `
			SELECT id, product_id, inventory_id, quantity
			FROM product_ingredients
			WHERE product_id = $1
		`, pid)
		if err != nil {
			return nil, classifyf(err, "load recipe for product %d", pid)
		}

		for rows.Next() {
			var e domain.RecipeEntry
			if err := rows.Scan(&e.ID, &e.ProductID, &e.IngredientID, &e.Quantity); err != nil {
				rows.Close()
				return nil, classifyf(err, "scan recipe for product %d", pid)
			}
			recipes[pid] = append(recipes[pid], e)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, classifyf(err, "read recipe for product %d", pid)
		}
		rows.Close()
	}

	return recipes, nil
}
