package queries

import (
	"context"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/reservation"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.NotFound(errs.New("reservation not found"))
	ErrReservationAccess   = errs.Forbidden(errs.New("not authorized to view this reservation"))
)

// ReservationView is a reservation annotated with its campsite and guest.
type ReservationView struct {
	ID               uuid.UUID     `json:"id"`
	CampsiteID       uuid.UUID     `json:"campsite_id"`
	CampsiteName     string        `json:"campsite_name"`
	CampsiteLocation *LocationView `json:"campsite_location,omitempty"`
	UserID           uuid.UUID     `json:"user_id"`
	UserName         string        `json:"user_name,omitempty"`
	UserEmail        string        `json:"user_email,omitempty"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Nights           int64         `json:"nights"`
	NumberOfPeople   int           `json:"number_of_people"`
	TotalPrice       float64       `json:"total_price"`
	Status           string        `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindForExport(ctx context.Context, campsiteID *uuid.UUID) ([]*ReservationView, error)
}

type CampsiteLookup interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*campsite.Campsite, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListForExport(ctx context.Context, campsiteID *uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store     ReservationReadStore
	campsites CampsiteLookup
}

func NewReservationQueries(store ReservationReadStore, campsites CampsiteLookup) ReservationQueries {
	return &reservationQueriesImpl{store: store, campsites: campsites}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !reservation.CanAccess(view.UserID, actorID, actorRole == RoleAdmin) {
		return nil, ErrReservationAccess
	}

	if err := q.annotate(ctx, []*ReservationView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := q.annotate(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListForExport(ctx context.Context, campsiteID *uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindForExport(ctx, campsiteID)
	if err != nil {
		return nil, err
	}
	if err := q.annotate(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// annotate fills campsite name and location. Reservations whose campsite
// has since been removed keep empty campsite fields.
func (q *reservationQueriesImpl) annotate(ctx context.Context, views []*ReservationView) error {
	if len(views) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(views))
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		if _, ok := seen[v.CampsiteID]; ok {
			continue
		}
		seen[v.CampsiteID] = struct{}{}
		ids = append(ids, v.CampsiteID)
	}

	sites, err := q.campsites.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, v := range views {
		site, ok := sites[v.CampsiteID]
		if !ok {
			continue
		}
		loc := locationViewOf(site.Location())
		v.CampsiteName = site.Name().String()
		v.CampsiteLocation = &loc
	}
	return nil
}

// ReservationViewOf builds a view from the aggregate. c may be nil when the
// campsite is no longer listed.
func ReservationViewOf(r *reservation.Reservation, c *campsite.Campsite) *ReservationView {
	v := &ReservationView{
		ID:             r.ID(),
		CampsiteID:     r.CampsiteID(),
		UserID:         r.UserID(),
		StartDate:      r.Period().Start(),
		EndDate:        r.Period().End(),
		Nights:         r.Period().Nights(),
		NumberOfPeople: r.Guests().Value(),
		TotalPrice:     r.TotalPrice().Amount(),
		Status:         r.Status().String(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
	if c != nil {
		loc := locationViewOf(c.Location())
		v.CampsiteName = c.Name().String()
		v.CampsiteLocation = &loc
	}
	return v
}
