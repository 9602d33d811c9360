package profiles

import (
	"time"

	"github.com/google/uuid"
)

const DefaultDisplayName = "User"

type Profile struct {
	UserID       uuid.UUID  `json:"uid"`
	DisplayName  string     `json:"displayName"`
	AvatarURL    *string    `json:"avatarUrl"`
	IsApproved   bool       `json:"isApproved"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastActivity *time.Time `json:"lastActivity"`
}

// UserSummary is the public shape of a user, keys kept as the client reads them.
type UserSummary struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"display_name"`
	AvatarURL    *string    `json:"avatar_url"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// LatestMetric is the body composition shown on a member card.
type LatestMetric struct {
	CreatedAt          time.Time `json:"createdAt"`
	Weight             *float64  `json:"weight"`
	SkeletalMuscleMass float64   `json:"skeletalMuscleMass"`
	PercentBodyFat     float64   `json:"percentBodyFat"`
}

type MemberCard struct {
	UserID       uuid.UUID     `json:"uid"`
	DisplayName  string        `json:"displayName"`
	AvatarURL    *string       `json:"avatarUrl"`
	MemberSince  time.Time     `json:"memberSince"`
	LatestMetric *LatestMetric `json:"latestMetric"`
}

func bareUserSummary(id string) UserSummary {
	return UserSummary{
		ID:          id,
		DisplayName: DefaultDisplayName,
	}
}
