package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

// seedDemoCandidates loads the demo roster into an empty store. The
// entries mirror the mock data the original app shipped with.
func seedDemoCandidates(ctx context.Context, repo ports.ElectionRepository) error {
	existing, err := repo.ListCandidates(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demo := []struct {
		name      string
		position  string
		party     string
		manifesto string
	}{
		{
			name:      "Sarah Johnson",
			position:  "President",
			party:     "Unity Party",
			manifesto: "Focused on improving campus facilities, mental health support, and academic resources. I believe in transparent governance and student-first policies.",
		},
		{
			name:      "Michael Chen",
			position:  "President",
			party:     "Progress Alliance",
			manifesto: "Committed to sustainability initiatives, diverse student activities, and bridging the gap between administration and students.",
		},
		{
			name:      "Emma Williams",
			position:  "Vice President",
			party:     "Student Voice",
			manifesto: "Advocating for affordable campus services, improved Wi-Fi infrastructure, and more study spaces.",
		},
		{
			name:      "David Rodriguez",
			position:  "Vice President",
			party:     "Innovation Hub",
			manifesto: "Focus on technology integration, career development programs, and international student support.",
		},
		{
			name:      "Lisa Park",
			position:  "Secretary",
			party:     "Unity Party",
			manifesto: "Ensuring efficient communication between student body and union, transparent record-keeping, and accessible information systems.",
		},
	}

	now := time.Now()
	for _, d := range demo {
		candidate := &domain.Candidate{
			ID:        uuid.New(),
			Name:      d.name,
			Position:  d.position,
			Party:     d.party,
			Manifesto: d.manifesto,
			Approved:  true,
			CreatedAt: now,
		}
		if err := repo.SaveCandidate(ctx, candidate); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo candidates", len(demo))
	return nil
}
