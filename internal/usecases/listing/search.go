package listing

import (
	"strings"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
)

// Search filtra por substring (sem diferenciar maiúsculas) em qualquer um dos campos e
// devolve a página pedida. page < 1 vale 1; páginas além do fim voltam vazias.
func Search[T any](items []T, query string, fields func(T) []string, page, pageSize int) domain.Page[T] {
	matches := Filter(items, query, fields)

	if page < 1 {
		page = 1
	}

	result := domain.Page[T]{
		Items:       []T{},
		CurrentPage: page,
		TotalPages:  TotalPages(len(matches), pageSize),
		TotalItems:  len(matches),
	}

	if pageSize <= 0 {
		return result
	}

	offset := (page - 1) * pageSize
	if offset >= len(matches) {
		return result
	}

	end := offset + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	result.Items = matches[offset:end]
	return result
}

// Filter mantém os itens em que algum campo contém query
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	needle := strings.ToLower(query)

	matches := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matches = append(matches, item)
				break
			}
		}
	}

	return matches
}

func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
