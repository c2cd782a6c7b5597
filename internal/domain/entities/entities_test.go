package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskMatchesSearch(t *testing.T) {
	task := Task{
		Title:       "Help with grocery shopping",
		Description: "Need someone to pick up groceries from the local market.",
		Location:    "Sector 15, Gurgaon",
	}

	assert.True(t, task.MatchesSearch(""), "empty term matches everything")
	assert.True(t, task.MatchesSearch("grocery"))
	assert.True(t, task.MatchesSearch("GROCERY"), "match is case-insensitive")
	assert.True(t, task.MatchesSearch("gurgaon"), "location is searched")
	assert.True(t, task.MatchesSearch("local market"), "description is searched")
	assert.False(t, task.MatchesSearch("plumbing"))
}

func TestTaskPostedBy(t *testing.T) {
	task := Task{Poster: "Priya S."}

	assert.True(t, task.PostedBy("Priya S."))
	assert.False(t, task.PostedBy("Rahul K."))
	assert.False(t, task.PostedBy(""))
}

func TestSessionIsValid(t *testing.T) {
	assert.True(t, (&Session{Name: "Priya S.", Email: "priya@example.com"}).IsValid())
	assert.False(t, (&Session{Email: "priya@example.com"}).IsValid(), "a session needs a name")

	var nilSession *Session
	assert.False(t, nilSession.IsValid())
}

func TestRewardTypeIsValid(t *testing.T) {
	assert.True(t, RewardTypeMoney.IsValid())
	assert.True(t, RewardTypeFavor.IsValid())
	assert.True(t, RewardTypeBarter.IsValid())
	assert.False(t, RewardType("loan").IsValid())
	assert.False(t, RewardType("").IsValid())
}

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, TaskStatusAvailable.IsValid())
	assert.True(t, TaskStatusAccepted.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.False(t, TaskStatus("archived").IsValid())
}

func TestPermissionStateGranted(t *testing.T) {
	assert.True(t, PermissionGranted.Granted())
	assert.False(t, PermissionDenied.Granted())
	assert.False(t, PermissionUnknown.Granted())
}
