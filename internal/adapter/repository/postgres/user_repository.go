package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

const uniqueViolation = pq.ErrorCode("23505")

// UserRepository is the identity provider backed by the users table.
type UserRepository struct {
	db   *sqlx.DB
	cost int
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, cost: bcrypt.DefaultCost}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
}

func (u userRow) identity() domain.Identity {
	return domain.Identity{
		UID:         u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

func (r *UserRepository) SignUp(ctx context.Context, email, password string) (domain.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hashing password: %w", err)
	}

	user := userRow{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}

	query := `
	INSERT INTO users (id, email, password_hash, display_name)
	VALUES (:id, :email, :password_hash, :display_name)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Identity{}, domain.ErrEmailAlreadyRegistered
		}

		return domain.Identity{}, fmt.Errorf("inserting user: %w", err)
	}

	return user.identity(), nil
}

func (r *UserRepository) SignIn(ctx context.Context, email, password string) (domain.Identity, error) {
	query := `
	SELECT id, email, password_hash, display_name
	FROM users
	WHERE email = $1
	`

	var user userRow
	if err := r.db.GetContext(ctx, &user, query, strings.ToLower(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}

		return domain.Identity{}, fmt.Errorf("querying user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return user.identity(), nil
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, uid, displayName string) (domain.Identity, error) {
	query := `
	UPDATE users
	SET display_name = $1
	WHERE id = $2
	RETURNING id, email, password_hash, display_name
	`

	var user userRow
	if err := r.db.GetContext(ctx, &user, query, displayName, uid); err != nil {
		return domain.Identity{}, fmt.Errorf("updating display name: %w", err)
	}

	return user.identity(), nil
}
