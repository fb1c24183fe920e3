package category

import "catalog/domain/category"

func ToOutput(c *category.Category) CategoryOutput {
	return CategoryOutput{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toOutputs(categories []*category.Category) []CategoryOutput {
	out := make([]CategoryOutput, len(categories))
	for i, c := range categories {
		out[i] = ToOutput(c)
	}
	return out
}
