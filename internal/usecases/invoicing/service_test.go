package invoicing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	taquillamocks "github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GetCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInvoiceRepository(ctrl)
	service := NewService(mockRepo, taquillamocks.NewMockTaquillaIntegrator(ctrl))

	t.Run("Sucesso", func(t *testing.T) {
		mockRepo.EXPECT().CountInvoices(gomock.Any()).Return(15, nil)
		mockRepo.EXPECT().CountCustomers(gomock.Any()).Return(8, nil)
		mockRepo.EXPECT().SumByStatus(gomock.Any()).Return(1200.5, 300.0, nil)

		cards, err := service.GetCards(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &domain.InvoiceCards{
			NumberOfCustomers:    8,
			NumberOfInvoices:     15,
			TotalPaidInvoices:    1200.5,
			TotalPendingInvoices: 300,
		}, cards)
	})

	t.Run("Erro em uma consulta", func(t *testing.T) {
		mockRepo.EXPECT().CountInvoices(gomock.Any()).Return(15, nil)
		mockRepo.EXPECT().CountCustomers(gomock.Any()).Return(0, errors.New("db down"))
		mockRepo.EXPECT().SumByStatus(gomock.Any()).Return(0.0, 0.0, nil)

		cards, err := service.GetCards(context.Background())
		assert.Error(t, err)
		assert.Nil(t, cards)
	})
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaquilla := taquillamocks.NewMockTaquillaIntegrator(ctrl)
	service := NewService(mocks.NewMockInvoiceRepository(ctrl), mockTaquilla)

	_, err := service.Generate(context.Background(), domain.GenerateInvoiceRequest{Park: "1"})
	assert.ErrorIs(t, err, ErrMissingInvoiceData)

	mockTaquilla.EXPECT().
		GenerateInvoice(gomock.Any(), domain.GenerateInvoiceRequest{Park: "1", Month: "2024-03"}).
		Return(domain.GeneratedInvoice(json.RawMessage(`{"ok":true}`)), nil)

	invoice, err := service.Generate(context.Background(), domain.GenerateInvoiceRequest{Park: " 1 ", Month: "2024-03"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(invoice))
}
