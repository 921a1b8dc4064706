package shared

import (
	"context"
	"time"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/domain/user"
	sqlc "skipass-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot for reads spanning several statements
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Purchases() PurchaseRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PurchaseForOwner(ctx context.Context, id, ownerID uuid.UUID) (*pass.Purchase, error)
	PriceTierForResort(ctx context.Context, resortID, tierID uuid.UUID) (*PriceTierSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentialsSnapshot, error)
	UserCredentials(ctx context.Context, id uuid.UUID) (*UserCredentialsSnapshot, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *pass.Purchase) error
	// ConditionalActivate stamps p.ActivatedAt() only if the stored row is
	// still unactivated. It reports whether exactly that row transitioned.
	ConditionalActivate(ctx context.Context, tx sqlc.DBTX, p *pass.Purchase) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, name user.Name, email user.Email, now time.Time) error
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, passwordHash string, now time.Time) error
}

// FavoriteStore keeps each user's favorite resorts as a set.
type FavoriteStore interface {
	Add(ctx context.Context, userID, resortID uuid.UUID) error
	Remove(ctx context.Context, userID, resortID uuid.UUID) error
	Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
