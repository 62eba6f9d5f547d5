package service

import (
	"context"

	"github.com/maxviazov/country-list-service/internal/model"
	"github.com/maxviazov/country-list-service/internal/repository"
	"github.com/rs/zerolog"
)

// NoMoreDataMessage accompanies an empty page requested past the end of the list.
const NoMoreDataMessage = "No more countries available at this offset"

// countryService slices the shared list; it keeps no per-request state.
type countryService struct {
	list *repository.CountryList
	log  zerolog.Logger
}

func NewCountryService(list *repository.CountryList, logger zerolog.Logger) CountryService {
	l := logger.With().Str("module", "service").Str("component", "countries").Logger()
	return &countryService{list: list, log: l}
}

func (s *countryService) Total() int { return s.list.Len() }

func (s *countryService) ValidatePage(p model.Page) error {
	return validatePage(p, s.list.Len())
}

func (s *countryService) List(_ context.Context, p model.Page) (model.CountryPage, error) {
	if err := s.ValidatePage(p); err != nil {
		s.log.Debug().Int("offset", p.Offset).Int("limit", p.Limit).Err(err).Msg("page rejected")
		return model.CountryPage{}, err
	}

	total := s.list.Len()
	if p.Offset >= total {
		return model.CountryPage{
			Results: []model.Country{},
			Count:   total,
			Message: NoMoreDataMessage,
		}, nil
	}

	names := s.list.Window(p.Offset, p.Limit)
	results := make([]model.Country, len(names))
	for i, n := range names {
		results[i] = model.Country{Name: n}
	}

	// offset < total and limit <= MaxLimit here, so the sum cannot overflow
	end := p.Offset + p.Limit
	remaining := total - end
	if remaining < 0 {
		remaining = 0
	}

	s.log.Debug().Int("offset", p.Offset).Int("limit", p.Limit).Int("returned", len(results)).Msg("countries page served")
	return model.CountryPage{
		Results: results,
		Count:   total,
		Pagination: &model.Pagination{
			Offset:    p.Offset,
			Limit:     p.Limit,
			HasMore:   end < total,
			Remaining: remaining,
		},
	}, nil
}
