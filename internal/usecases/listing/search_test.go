package listing

import (
	"fmt"
	"testing"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSearch_FilterByAnyField(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "1", Name: "Ana", Lastname: "Pérez"},
		{ID: "2", Name: "Luis", Lastname: "Gómez", EmailPerson: "luis@mail.com"},
		{ID: "3", Name: "Mariana", Lastname: "Ruiz"},
		{ID: "4", Name: "Pedro", EmailPerson: "pedro.SANABRIA@mail.com"},
		{ID: "5", Name: "Jorge", Status: "Ganador"},
		{ID: "6", Name: "Sofía", IdentityNumber: "1020"},
	}

	page := Search(tickets, "ana", domain.Ticket.SearchFields, 1, 9)

	ids := make([]string, 0, len(page.Items))
	for _, ticket := range page.Items {
		ids = append(ids, string(ticket.ID))
	}

	assert.Equal(t, []string{"1", "3", "4", "5"}, ids)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSearch_Pagination(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	fields := func(i int) []string { return []string{fmt.Sprint(i)} }

	tests := []struct {
		name      string
		page      int
		wantItems []int
	}{
		{name: "Primeira página", page: 1, wantItems: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "Segunda página", page: 2, wantItems: []int{9, 10, 11, 12, 13, 14, 15, 16, 17}},
		{name: "Última página parcial", page: 3, wantItems: []int{18, 19}},
		{name: "Página fora do intervalo", page: 4, wantItems: []int{}},
		{name: "Página zero vale um", page: 0, wantItems: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Search(items, "", fields, tt.page, 9)

			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 20, page.TotalItems)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 0, TotalPages(10, 0))
}
