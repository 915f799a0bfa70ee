package shared

import (
	"context"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/geo"
	"campfinder/internal/domain/reservation"
	"campfinder/internal/domain/review"
	"campfinder/internal/domain/user"
	sqlc "campfinder/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// ReservationRepository is the reservation ledger.
type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UserReservations(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]*reservation.Reservation, error)
	// CampsiteReservations returns confirmed reservations only.
	CampsiteReservations(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, at time.Time) error
	CheckAvailability(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID, period reservation.StayPeriod) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	Recalc(ctx context.Context, tx sqlc.DBTX, campsiteID uuid.UUID) (*RatingSummary, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

// CampsiteDirectory is the document store holding campsite listings.
type CampsiteDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*campsite.Campsite, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*campsite.Campsite, error)
	List(ctx context.Context, f CampsiteFilter) ([]*campsite.Campsite, int64, error)
	Nearby(ctx context.Context, at geo.Coordinates, radiusKm float64, limit int) ([]*campsite.Campsite, error)
	Within(ctx context.Context, at geo.Coordinates, radiusKm float64) ([]*campsite.Campsite, error)
	Insert(ctx context.Context, c *campsite.Campsite) error
	Update(ctx context.Context, c *campsite.Campsite) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAverageRating(ctx context.Context, id uuid.UUID, rating *float64) error
}
