package store

import "example.com/activities/internal/domain"

// seedActivities returns the Mergington High School catalog loaded at boot.
func seedActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Soccer Team": {
			Name:            "Soccer Team",
			Description:     "Join our competitive soccer team and represent the school",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		"Basketball Club": {
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Art Club": {
			Name:            "Art Club",
			Description:     "Express creativity through painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucy@mergington.edu", "david@mergington.edu"},
		},
		"Drama Society": {
			Name:            "Drama Society",
			Description:     "Participate in theatrical productions and improve acting skills",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"anna@mergington.edu"},
		},
		"Debate Club": {
			Name:            "Debate Club",
			Description:     "Develop critical thinking and public speaking through structured debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"robert@mergington.edu", "maria@mergington.edu"},
		},
		"Science Olympiad": {
			Name:            "Science Olympiad",
			Description:     "Compete in scientific challenges and experiments",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 24,
			Participants:    []string{"kevin@mergington.edu", "jennifer@mergington.edu", "thomas@mergington.edu"},
		},
		"Chess Club": {
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
