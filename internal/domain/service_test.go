package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetActivityMapsMissingToNotFound(t *testing.T) {
	service := NewService(&stubRepo{})

	_, err := service.GetActivity(context.Background(), "Nonexistent Club")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestGetActivityReturnsRecord(t *testing.T) {
	activity := Activity{
		Name:            "Chess Club",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu"},
	}
	service := NewService(&stubRepo{activity: &activity})

	got, err := service.GetActivity(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, activity, *got)
}

func TestSignupPropagatesRepositoryError(t *testing.T) {
	service := NewService(&stubRepo{signupErr: ErrActivityFull})

	_, err := service.Signup(context.Background(), "Chess Club", "a@x.com")
	require.ErrorIs(t, err, ErrActivityFull)
}

func TestActivityHelpers(t *testing.T) {
	activity := Activity{
		Name:            "Chess Club",
		MaxParticipants: 2,
		Participants:    []string{"a@x.com", "b@x.com"},
	}

	require.True(t, activity.HasParticipant("a@x.com"))
	require.False(t, activity.HasParticipant("c@x.com"))
	require.True(t, activity.IsFull())

	clone := activity.Clone()
	clone.Participants[0] = "tampered@x.com"
	require.Equal(t, "a@x.com", activity.Participants[0])
}

type stubRepo struct {
	activity  *Activity
	signupErr error
}

func (s *stubRepo) List(ctx context.Context) (map[string]Activity, error) {
	return map[string]Activity{}, nil
}

func (s *stubRepo) Get(ctx context.Context, name string) (*Activity, error) {
	return s.activity, nil
}

func (s *stubRepo) Signup(ctx context.Context, name, email string) (*Activity, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return s.activity, nil
}

func (s *stubRepo) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	return s.activity, nil
}

func (s *stubRepo) Reset(ctx context.Context) error {
	return nil
}
