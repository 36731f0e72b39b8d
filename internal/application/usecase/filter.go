package usecase

import "github.com/jhoicas/sample-api/internal/application/dto"

// filterSeq devuelve la subsecuencia que cumple el predicado, preservando el
// orden original.
func filterSeq[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// paginate aplica skip y limit después del filtrado, nunca antes.
// Un skip fuera de rango da lista vacía, no un error.
func paginate[T any](items []T, page dto.PageQuery) []T {
	page.Normalize()
	if page.Skip >= len(items) {
		return []T{}
	}
	end := page.Skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Skip:end]
}
