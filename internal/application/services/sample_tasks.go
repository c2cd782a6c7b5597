package services

import (
	"github.com/google/uuid"

	"github.com/sahaara/core/internal/domain/entities"
)

// sampleTasks is the built-in catalog every viewer sees regardless of what
// is in the local store. The ids are fixed so the catalog is identical
// across sessions.
var sampleTasks = []entities.Task{
	{
		ID:          uuid.MustParse("7b2ce1e6-0001-4c30-9f7e-3f5a41a6d001"),
		Title:       "Help with grocery shopping",
		Description: "Need someone to pick up groceries from the local market. I can pay for the groceries + a small tip.",
		Location:    "Sector 15, Gurgaon",
		Reward:      "₹200",
		Type:        entities.RewardTypeMoney,
		TimePosted:  "2 hours ago",
		Poster:      "Priya S.",
		Rating:      4.8,
	},
	{
		ID:          uuid.MustParse("7b2ce1e6-0002-4c30-9f7e-3f5a41a6d002"),
		Title:       "Fix my laptop screen",
		Description: "Laptop screen is flickering. Looking for someone who knows laptop repairs.",
		Location:    "DLF Phase 2",
		Reward:      "Favor exchange",
		Type:        entities.RewardTypeFavor,
		TimePosted:  "4 hours ago",
		Poster:      "Rahul K.",
		Rating:      4.9,
	},
	{
		ID:          uuid.MustParse("7b2ce1e6-0003-4c30-9f7e-3f5a41a6d003"),
		Title:       "Tutor my kid in Math",
		Description: "Need a tutor for 8th grade mathematics. 2-3 sessions per week.",
		Location:    "Cyber City",
		Reward:      "₹500/session",
		Type:        entities.RewardTypeMoney,
		TimePosted:  "1 day ago",
		Poster:      "Meera A.",
		Rating:      5.0,
	},
	{
		ID:          uuid.MustParse("7b2ce1e6-0004-4c30-9f7e-3f5a41a6d004"),
		Title:       "Dog walking service",
		Description: "Need someone to walk my dog twice a day. He's very friendly and well-behaved.",
		Location:    "Golf Course Road",
		Reward:      "₹300/day",
		Type:        entities.RewardTypeMoney,
		TimePosted:  "3 hours ago",
		Poster:      "Amit T.",
		Rating:      4.7,
	},
	{
		ID:          uuid.MustParse("7b2ce1e6-0005-4c30-9f7e-3f5a41a6d005"),
		Title:       "Help with moving furniture",
		Description: "Moving some furniture within the apartment. Need 2-3 people for help.",
		Location:    "MG Road",
		Reward:      "Pizza + ₹150 each",
		Type:        entities.RewardTypeBarter,
		TimePosted:  "5 hours ago",
		Poster:      "Neha P.",
		Rating:      4.6,
	},
}

// SampleTasks returns a copy of the built-in catalog.
func SampleTasks() []entities.Task {
	out := make([]entities.Task, len(sampleTasks))
	copy(out, sampleTasks)
	return out
}
