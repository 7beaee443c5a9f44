package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func TestStoreSeedsCatalog(t *testing.T) {
	store := NewStore()

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)

	basketball, err := store.Get(context.Background(), "Basketball")
	require.NoError(t, err)
	require.NotNil(t, basketball)
	require.Equal(t, 15, basketball.MaxParticipants)
	require.Equal(t, []string{"alex@mergington.edu"}, basketball.Participants)
}

func TestGetUnknownActivityReturnsNil(t *testing.T) {
	store := NewStore()

	activity, err := store.Get(context.Background(), "Knitting Circle")
	require.NoError(t, err)
	require.Nil(t, activity)
}

func TestAddParticipantAppendsInOrder(t *testing.T) {
	store := NewStoreWithActivities([]domain.Activity{
		{Name: "Chess Club", Participants: []string{"first@mergington.edu"}},
	})

	activity, err := store.AddParticipant(context.Background(), "Chess Club", "second@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"first@mergington.edu", "second@mergington.edu"}, activity.Participants)

	activity, err = store.AddParticipant(context.Background(), "Chess Club", "third@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"first@mergington.edu", "second@mergington.edu", "third@mergington.edu"}, activity.Participants)
}

func TestAddParticipantErrors(t *testing.T) {
	store := NewStoreWithActivities([]domain.Activity{
		{Name: "Chess Club", Participants: []string{"alex@mergington.edu"}},
	})

	_, err := store.AddParticipant(context.Background(), "Unknown", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = store.AddParticipant(context.Background(), "Chess Club", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	activity, err := store.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"alex@mergington.edu"}, activity.Participants)
}

func TestRemoveParticipant(t *testing.T) {
	store := NewStoreWithActivities([]domain.Activity{
		{Name: "Chess Club", Participants: []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}},
	})

	activity, err := store.RemoveParticipant(context.Background(), "Chess Club", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "c@mergington.edu"}, activity.Participants)

	_, err = store.RemoveParticipant(context.Background(), "Chess Club", "b@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = store.RemoveParticipant(context.Background(), "Unknown", "a@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestListReturnsIsolatedSnapshots(t *testing.T) {
	store := NewStoreWithActivities([]domain.Activity{
		{Name: "Chess Club", Participants: []string{"a@mergington.edu"}},
	})

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	activities[0].Participants[0] = "mutated@mergington.edu"

	fresh, err := store.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu"}, fresh.Participants)
}

func TestListSortsByName(t *testing.T) {
	store := NewStoreWithActivities([]domain.Activity{
		{Name: "Volleyball"},
		{Name: "Art Club"},
		{Name: "Chess Club"},
	})

	activities, err := store.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(activities))
	for _, activity := range activities {
		names = append(names, activity.Name)
	}
	require.Equal(t, []string{"Art Club", "Chess Club", "Volleyball"}, names)
}
