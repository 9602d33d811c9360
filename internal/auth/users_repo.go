package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastSignInAt *time.Time `json:"lastSignInAt"`
}

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

// Create inserts the user and its (unapproved) profile in one transaction.
func (r *UsersRepo) Create(ctx context.Context, email, passwordHash, displayName string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at;`,
		user.ID, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if displayName == "" {
		displayName = "User"
	}
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO profiles (uid, display_name) VALUES ($1, $2);`,
		user.ID, displayName,
	); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	return user, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := &User{}
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, email, password_hash, created_at, last_sign_in_at FROM users WHERE email = $1;`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.LastSignInAt); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *UsersRepo) UpdateLastSignIn(ctx context.Context, id uuid.UUID, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateLastSignIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE users SET last_sign_in_at = $1 WHERE id = $2;`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2;`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
