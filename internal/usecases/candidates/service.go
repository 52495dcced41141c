package candidates

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrCandidateNotFound = errors.New("candidato não encontrado")

//go:generate mockgen -source=service.go -destination=mocks/mock_candidates.go -package=mocks
type CandidateService interface {
	GetCards(ctx context.Context, group string) (*domain.CandidateCards, error)
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
}

type Service struct {
	candidateRepo repository.CandidateRepository
}

func NewService(candidateRepo repository.CandidateRepository) CandidateService {
	return &Service{
		candidateRepo: candidateRepo,
	}
}

// GetCards executa as quatro contagens em paralelo e falha se qualquer uma falhar
func (s *Service) GetCards(ctx context.Context, group string) (*domain.CandidateCards, error) {
	group = strings.TrimSpace(group)
	if group == domain.CandidateGroupTotal {
		group = ""
	}

	statuses := []string{
		"",
		domain.CandidateInProcess,
		domain.CandidateSent,
		domain.CandidateRejected,
	}

	counts := make([]int, len(statuses))
	errs := make([]error, len(statuses))

	wg := sync.WaitGroup{}
	wg.Add(len(statuses))

	for i, status := range statuses {
		go func(i int, status string) {
			defer wg.Done()
			counts[i], errs[i] = s.candidateRepo.Count(ctx, group, status)
		}(i, status)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		logrus.WithError(err).WithField("group", group).Error("Erro ao buscar os cards de candidatos")
		return nil, err
	}

	return &domain.CandidateCards{
		Total:     counts[0],
		InProcess: counts[1],
		Sent:      counts[2],
		Rejected:  counts[3],
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Erro ao buscar candidato")
		return nil, err
	}

	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	return candidate, nil
}
