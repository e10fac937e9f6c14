package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const seedYAML = `
scholarships:
  - id: "s1"
    title: "Rural Talent Grant"
    description: "Support for students from rural districts"
    amount: 40000
    deadline: "2025-01-31"
    category: "General"
    region: "Karnataka"
    is_active: true
internships:
  - id: "i1"
    title: "Backend Intern"
    company: "Infra Labs"
    location: "Pune"
    stipend: 20000
users:
  - id: "u1"
    name: "Test User"
    rank: 1200
    goals: ["Crack JEE"]
profiles:
  - user_id: "u1"
    name: "Test User"
    skills: ["Go"]
    created_at: "2025-02-01T10:00:00Z"
edu_coins:
  - id: "c1"
    user_id: "u1"
    amount: 40
    source: "Quiz"
roadmaps:
  - user_id: "u1"
    title: "Medical Admission Roadmap"
    progress: 20
    steps:
      - title: "Register for NEET"
        completed: true
        due_date: "2025-03-01"
      - title: "Revise biology"
`

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, "seed.yaml", seedYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seed.Scholarships) != 1 {
		t.Fatalf("expected 1 scholarship, got %d", len(seed.Scholarships))
	}
	s := seed.Scholarships[0]
	if s.Amount != 40000 || s.Region != "Karnataka" || !s.IsActive {
		t.Fatalf("unexpected scholarship: %+v", s)
	}
	if !s.Deadline.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected deadline: %s", s.Deadline)
	}

	if len(seed.Internships) != 1 || seed.Internships[0].Stipend != 20000 {
		t.Fatalf("unexpected internships: %+v", seed.Internships)
	}

	if len(seed.Users) != 1 || seed.Users[0].Rank == nil || *seed.Users[0].Rank != 1200 {
		t.Fatalf("unexpected users: %+v", seed.Users)
	}
	if seed.Users[0].Budget != nil {
		t.Fatalf("budget must stay unset, got %d", *seed.Users[0].Budget)
	}

	if len(seed.Profiles) != 1 || seed.Profiles[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected profiles: %+v", seed.Profiles)
	}

	if len(seed.EduCoins) != 1 || seed.EduCoins[0].Amount != 40 || seed.EduCoins[0].UserID != "u1" {
		t.Fatalf("unexpected coins: %+v", seed.EduCoins)
	}

	if len(seed.Roadmaps) != 1 {
		t.Fatalf("expected 1 roadmap, got %d", len(seed.Roadmaps))
	}
	roadmap := seed.Roadmaps[0]
	if roadmap.Progress != 20 || len(roadmap.Steps) != 2 || roadmap.CompletedSteps() != 1 {
		t.Fatalf("unexpected roadmap: %+v", roadmap)
	}
	if due := roadmap.Steps[0].DueDate; due == nil || !due.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", due)
	}
	if roadmap.Steps[1].DueDate != nil {
		t.Fatalf("due date must stay unset")
	}
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "empty path",
			path: func(*testing.T) string { return "  " },
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
		},
		{
			name: "bad date",
			path: func(t *testing.T) string {
				return writeSeed(t, "seed.yaml", "scholarships:\n  - id: \"x\"\n    deadline: \"tomorrow\"\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSeed(tt.path(t)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadSeedValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "amount is not a number",
			content: "scholarships:\n  - id: \"x\"\n    amount: \"plenty\"\n",
		},
		{
			name:    "negative stipend",
			content: "internships:\n  - id: \"x\"\n    stipend: -1\n",
		},
		{
			name:    "profile without owner",
			content: "profiles:\n  - name: \"Nobody\"\n",
		},
		{
			name:    "zero coins",
			content: "edu_coins:\n  - user_id: \"u\"\n    amount: 0\n",
		},
		{
			name:    "progress above 100",
			content: "roadmaps:\n  - user_id: \"u\"\n    title: \"t\"\n    progress: 120\n",
		},
		{
			name:    "unknown role",
			content: "users:\n  - id: \"u\"\n    role: \"mentor\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, "seed.yaml", tt.content))
			if !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("expected ErrInvalidSeed, got %v", err)
			}
		})
	}
}
