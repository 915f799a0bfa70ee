//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"campfinder/internal/domain/reservation"
	"campfinder/internal/infra"
	"campfinder/internal/infra/readstore"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/tests/common/builder"
	readstoremock "campfinder/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: view carries guest and price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		row := builder.NewReservationBuilder().BuildInfra()

		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), row.ID).Return(sqlc.GetReservationByIDRow{
			ID:              row.ID,
			CampsiteID:      row.CampsiteID,
			UserID:          row.UserID,
			StartDate:       row.StartDate,
			EndDate:         row.EndDate,
			NumberOfPeople:  row.NumberOfPeople,
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
			UserName:        "Test Camper",
			UserEmail:       "test@example.com",
		}, nil)

		view, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, "Test Camper", view.UserName)
		assert.Equal(t, int64(4), view.Nights)
		assert.InDelta(t, 120.0, view.TotalPrice, 0.001)
		assert.Equal(t, string(reservation.StatusPending), view.Status)
		assert.Empty(t, view.CampsiteName, "campsite annotation happens in the query layer")
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		id := uuid.New()
		mockQueries.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{}, pgx.ErrNoRows)

		view, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, id)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_FindByUserID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	rows := []sqlc.Reservations{
		builder.NewReservationBuilder().WithUserID(userID).BuildInfra(),
		builder.NewReservationBuilder().WithUserID(userID).WithStatus(reservation.StatusCancelled).BuildInfra(),
	}
	mockQueries.EXPECT().ListReservationsByUser(ctx, gomock.Any(), userID).Return(rows, nil)

	views, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).FindByUserID(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "cancelled", views[1].Status)
}

func TestReservationReadStore_FindForExport(t *testing.T) {
	ctx := context.Background()
	campsiteID := uuid.New()

	testCases := []struct {
		name       string
		campsiteID *uuid.UUID
		expected   pgtype.UUID
	}{
		{name: "all campsites", campsiteID: nil, expected: pgtype.UUID{}},
		{name: "single campsite", campsiteID: &campsiteID, expected: pgtype.UUID{Bytes: campsiteID, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			mockQueries.EXPECT().ListReservationsForExport(ctx, gomock.Any(), tc.expected).Return([]sqlc.ListReservationsForExportRow{
				{ID: uuid.New(), CampsiteID: campsiteID, Status: "confirmed", NumberOfPeople: 3, TotalPriceCents: 4550, UserEmail: "a@example.com"},
			}, nil)

			views, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).FindForExport(ctx, tc.campsiteID)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, "a@example.com", views[0].UserEmail)
			assert.InDelta(t, 45.5, views[0].TotalPrice, 0.001)
		})
	}
}
