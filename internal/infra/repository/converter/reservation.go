package converter

import (
	"campfinder/internal/domain/reservation"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		CampsiteID:      res.CampsiteID(),
		UserID:          res.UserID(),
		StartDate:       pgconv.TimeToPgtype(res.Period().Start()),
		EndDate:         pgconv.TimeToPgtype(res.Period().End()),
		NumberOfPeople:  int32(res.Guests().Value()), // #nosec G115 -- bounded by request validation
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuests(int(row.NumberOfPeople))
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.CampsiteID,
		row.UserID,
		reservation.ReconstructStayPeriod(row.StartDate.Time, row.EndDate.Time),
		guests,
		reservation.NewMoney(row.TotalPriceCents),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []sqlc.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
