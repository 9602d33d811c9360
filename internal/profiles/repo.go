package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

const profileColumns = `uid, display_name, avatar_url, is_approved, created_at, last_activity`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE uid = $1;`, userID)
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	profile, err := pgx.CollectOneRow(rows, scanProfile)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("collect profile: %w", err)
	}

	return &profile, nil
}

// UserSummary joins the user's sign in data with the profile.
func (r *Repo) UserSummary(ctx context.Context, userID uuid.UUID) (_ *UserSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.user-summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	summary := UserSummary{ID: userID.String()}
	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(p.display_name, ''), p.avatar_url, u.last_sign_in_at
			FROM users u
			LEFT JOIN profiles p ON p.uid = u.id
			WHERE u.id = $1;`,
		userID,
	).Scan(&summary.DisplayName, &summary.AvatarURL, &summary.LastSignInAt); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query user summary: %w", err)
	}
	if summary.DisplayName == "" {
		summary.DisplayName = DefaultDisplayName
	}

	return &summary, nil
}

func (r *Repo) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update-display-name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET display_name = $2, last_activity = now() WHERE uid = $1;`,
		userID, displayName,
	)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetAvatarURL stores the new avatar and returns the one it replaced.
func (r *Repo) SetAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.set-avatar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var previous *string
	if err := r.db.QueryRow(
		ctx,
		`UPDATE profiles p SET avatar_url = $2, last_activity = now()
			FROM profiles old
			WHERE p.uid = $1 AND old.uid = p.uid
			RETURNING old.avatar_url;`,
		userID, avatarURL,
	).Scan(&previous); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("update avatar: %w", err)
	}

	return previous, nil
}

// IsApproved reports whether the user is an approved member. Users without
// a profile are not.
func (r *Repo) IsApproved(ctx context.Context, userID uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.is-approved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var approved bool
	if err := r.db.QueryRow(ctx, `SELECT is_approved FROM profiles WHERE uid = $1;`, userID).Scan(&approved); err != nil {
		if pkg.IsNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("query approval: %w", err)
	}
	return approved, nil
}

func (r *Repo) ListApproved(ctx context.Context) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.list-approved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+profileColumns+`
			FROM profiles
			WHERE is_approved
			ORDER BY display_name ASC, created_at ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query approved profiles: %w", err)
	}

	profiles, err := pgx.CollectRows(rows, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("collect approved profiles: %w", err)
	}
	span.SetAttributes(attribute.Int("profiles.count", len(profiles)))

	return profiles, nil
}

// MemberCard returns the card of an approved member, ErrProfileNotFound for
// anyone else.
func (r *Repo) MemberCard(ctx context.Context, userID uuid.UUID) (_ *MemberCard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.member-card")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	card := MemberCard{UserID: userID}
	if err := r.db.QueryRow(
		ctx,
		`SELECT display_name, avatar_url, created_at FROM profiles WHERE uid = $1 AND is_approved;`,
		userID,
	).Scan(&card.DisplayName, &card.AvatarURL, &card.MemberSince); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query member: %w", err)
	}

	var metric LatestMetric
	err = r.db.QueryRow(
		ctx,
		`SELECT created_at, weight, skeletal_muscle_mass, percent_body_fat
			FROM metric
			WHERE uid = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	).Scan(&metric.CreatedAt, &metric.Weight, &metric.SkeletalMuscleMass, &metric.PercentBodyFat)
	switch {
	case err == nil:
		card.LatestMetric = &metric
	case pkg.IsNoRows(err):
		err = nil
	default:
		return nil, fmt.Errorf("query member metric: %w", err)
	}

	return &card, nil
}

func scanProfile(row pgx.CollectableRow) (Profile, error) {
	var p Profile
	err := row.Scan(&p.UserID, &p.DisplayName, &p.AvatarURL, &p.IsApproved, &p.CreatedAt, &p.LastActivity)
	return p, err
}
