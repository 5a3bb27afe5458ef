package impl

import (
	"context"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	mockRepo "bloodlink/internal/mocks/repository"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonorService_ListDonors(t *testing.T) {
	tests := []struct {
		name      string
		filter    string
		wantQuery repository.DonorQuery
	}{
		{name: "all donors", filter: "", wantQuery: repository.DonorQuery{}},
		{name: "normalized filter", filter: " o- ", wantQuery: repository.DonorQuery{BloodType: "O-"}},
		{name: "unknown filter kept", filter: "X+", wantQuery: repository.DonorQuery{BloodType: "X+"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockProfileRepository(t)
			srv := NewDonorService(repo, testLogger())
			ctx := context.Background()

			repo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
			repo.EXPECT().FindDonors(ctx, tt.wantQuery).Return([]*entity.Profile{
				{UID: "d1", Role: entity.RoleDonor, FullName: "Sara", BloodType: "O-", Location: "Irbid", Email: "s@example.com"},
				{UID: "d2", Role: entity.RoleDonor, Name: "Omar"},
				{UID: "d3", Role: entity.RoleDonor},
			}, nil).Once()

			out, err := srv.ListDonors(ctx, hospitalCaller, tt.filter)

			require.NoError(t, err)
			require.Equal(t, 3, out.Count)
			assert.Equal(t, entity.DonorSummary{ID: "d1", FullName: "Sara", Location: "Irbid", BloodType: "O-", Email: "s@example.com"}, out.Donors[0])
			assert.Equal(t, "Omar", out.Donors[1].FullName)
			assert.Equal(t, entity.DefaultDonorName, out.Donors[2].FullName)
			assert.Equal(t, entity.DefaultDonorLocation, out.Donors[2].Location)
		})
	}
}

func TestDonorService_ListDonors_Denied(t *testing.T) {
	t.Run("donor caller", func(t *testing.T) {
		repo := mockRepo.NewMockProfileRepository(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "d1").Return(donorProfile("d1", "O+", ""), nil).Once()

		_, err := NewDonorService(repo, testLogger()).ListDonors(ctx, donorCaller, "")

		require.ErrorIs(t, err, domainerrors.ErrHospitalOnlyDonors)
	})

	t.Run("no profile", func(t *testing.T) {
		repo := mockRepo.NewMockProfileRepository(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "h1").Return(nil, repository.ErrProfileNotFound).Once()

		_, err := NewDonorService(repo, testLogger()).ListDonors(ctx, hospitalCaller, "")

		require.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		repo := mockRepo.NewMockProfileRepository(t)
		ctx := context.Background()

		repo.EXPECT().FindByID(ctx, "h1").Return(hospitalProfile("h1"), nil).Once()
		repo.EXPECT().FindDonors(ctx, repository.DonorQuery{}).Return(nil, errors.New("unavailable")).Once()

		_, err := NewDonorService(repo, testLogger()).ListDonors(ctx, hospitalCaller, "")

		require.Error(t, err)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})
}

func TestDonorService_MatchDonors(t *testing.T) {
	repo := mockRepo.NewMockProfileRepository(t)
	ctx := context.Background()
	donors := []*entity.Profile{donorProfile("d1", "A+", "tok")}

	repo.EXPECT().FindDonors(ctx, repository.DonorQuery{BloodType: "A+", ActiveOnly: true}).Return(donors, nil).Once()

	got, err := NewDonorService(repo, testLogger()).MatchDonors(ctx, usecase.DonorCriteria{BloodType: "A+", ActiveOnly: true})

	require.NoError(t, err)
	assert.Equal(t, donors, got)
}
