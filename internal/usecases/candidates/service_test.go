package candidates

import (
	"context"
	"errors"
	"testing"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GetCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCandidateRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		group    string
		setup    func()
		validate func(t *testing.T, cards *domain.CandidateCards, err error)
	}{
		{
			name:  "Grupo Total não filtra por grupo",
			group: "Total",
			setup: func() {
				mockRepo.EXPECT().Count(gomock.Any(), "", "").Return(40, nil)
				mockRepo.EXPECT().Count(gomock.Any(), "", "En Proceso").Return(10, nil)
				mockRepo.EXPECT().Count(gomock.Any(), "", "Enviado").Return(20, nil)
				mockRepo.EXPECT().Count(gomock.Any(), "", "No paso").Return(5, nil)
			},
			validate: func(t *testing.T, cards *domain.CandidateCards, err error) {
				require.NoError(t, err)
				assert.Equal(t, &domain.CandidateCards{Total: 40, InProcess: 10, Sent: 20, Rejected: 5}, cards)
			},
		},
		{
			name:  "Grupo específico",
			group: "Grupo A",
			setup: func() {
				mockRepo.EXPECT().Count(gomock.Any(), "Grupo A", gomock.Any()).Return(3, nil).Times(4)
			},
			validate: func(t *testing.T, cards *domain.CandidateCards, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, cards.Total)
				assert.Equal(t, 3, cards.Rejected)
			},
		},
		{
			name:  "Falha em uma contagem derruba o resultado",
			group: "",
			setup: func() {
				mockRepo.EXPECT().Count(gomock.Any(), "", "").Return(40, nil)
				mockRepo.EXPECT().Count(gomock.Any(), "", "En Proceso").Return(0, errors.New("db down"))
				mockRepo.EXPECT().Count(gomock.Any(), "", "Enviado").Return(20, nil)
				mockRepo.EXPECT().Count(gomock.Any(), "", "No paso").Return(5, nil)
			},
			validate: func(t *testing.T, cards *domain.CandidateCards, err error) {
				assert.Error(t, err)
				assert.Nil(t, cards)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			cards, err := service.GetCards(context.Background(), tt.group)
			tt.validate(t, cards, err)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCandidateRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByID(gomock.Any(), "42").Return(&domain.Candidate{ID: "42", Name: "Ana"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "43").Return(nil, nil)

	candidate, err := service.GetByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Ana", candidate.Name)

	_, err = service.GetByID(context.Background(), "43")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}
