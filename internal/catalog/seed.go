package catalog

import (
	"time"
)

// Seed is the initial record set of a Memory repository.
type Seed struct {
	Scholarships    []*Scholarship    `mapstructure:"scholarships"`
	Internships     []*Internship     `mapstructure:"internships"`
	Colleges        []*College        `mapstructure:"colleges"`
	CoachingCenters []*CoachingCenter `mapstructure:"coaching_centers"`
	Profiles        []*Profile        `mapstructure:"profiles"`
	Users           []*User           `mapstructure:"users"`
	EduCoins        []*EduCoin        `mapstructure:"edu_coins"`
	Roadmaps        []*Roadmap        `mapstructure:"roadmaps"`
}

var badges = []Badge{
	{ID: "1", Name: "Top Performer", Icon: "🏆", Color: "#FFD700", Description: "Consistently high academic performance"},
	{ID: "2", Name: "Team Leader", Icon: "👑", Color: "#FF6B6B", Description: "Excellent leadership skills"},
	{ID: "3", Name: "Problem Solver", Icon: "🧩", Color: "#4ECDC4", Description: "Strong analytical thinking"},
	{ID: "4", Name: "Creative Mind", Icon: "🎨", Color: "#45B7D1", Description: "Innovative and creative approach"},
	{ID: "5", Name: "Tech Savvy", Icon: "💻", Color: "#96CEB4", Description: "Advanced technical skills"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

// DefaultSeed returns the built-in demo data set. Every call returns fresh
// copies, so callers may hand it to several repositories.
func DefaultSeed() *Seed {
	return DefaultSeedAt(time.Now())
}

// DefaultSeedAt is DefaultSeed with ledger and roadmap dates placed relative
// to now.
func DefaultSeedAt(now time.Time) *Seed {
	const day = 24 * time.Hour

	return &Seed{
		Scholarships: []*Scholarship{
			{
				ID:             "1",
				Title:          "Prime Minister Scholarship Scheme",
				Description:    "Merit-based scholarship for engineering students from economically weaker sections",
				Amount:         50000,
				Deadline:       date(2024, time.June, 30),
				Category:       "Engineering",
				Region:         "All India",
				Eligibility:    []string{"Family income < 8 LPA", "JEE Main rank < 10000", "First generation learner"},
				ApplicationURL: "https://example.com/pm-scholarship",
				IsActive:       true,
			},
			{
				ID:             "2",
				Title:          "State Merit Scholarship",
				Description:    "Scholarship for top 100 students in state board examinations",
				Amount:         25000,
				Deadline:       date(2024, time.May, 15),
				Category:       "General",
				Region:         "Maharashtra",
				Eligibility:    []string{"State board topper", "Family income < 6 LPA"},
				ApplicationURL: "https://example.com/state-scholarship",
				IsActive:       true,
			},
			{
				ID:             "3",
				Title:          "Women in STEM Scholarship",
				Description:    "Encouraging women to pursue careers in Science, Technology, Engineering, and Mathematics",
				Amount:         75000,
				Deadline:       date(2024, time.July, 20),
				Category:       "STEM",
				Region:         "All India",
				Eligibility:    []string{"Female student", "Pursuing STEM course", "Merit-based selection"},
				ApplicationURL: "https://example.com/women-stem",
				IsActive:       true,
			},
		},
		Internships: []*Internship{
			{
				ID:             "1",
				Title:          "Software Development Intern",
				Company:        "TechCorp India",
				Description:    "Work on real-world projects using modern technologies like React, Node.js, and Python",
				Location:       "Mumbai",
				Stipend:        25000,
				Duration:       "3 months",
				Requirements:   []string{"React/Node.js knowledge", "Git experience", "Problem-solving skills"},
				ApplicationURL: "https://example.com/techcorp-intern",
				IsActive:       true,
			},
			{
				ID:             "2",
				Title:          "Data Science Intern",
				Company:        "AnalyticsPro",
				Description:    "Learn machine learning, data analysis, and visualization techniques",
				Location:       "Bangalore",
				Stipend:        30000,
				Duration:       "6 months",
				Requirements:   []string{"Python programming", "Statistics knowledge", "SQL basics"},
				ApplicationURL: "https://example.com/analyticspro-intern",
				IsActive:       true,
			},
			{
				ID:             "3",
				Title:          "Marketing Intern",
				Company:        "Digital Solutions",
				Description:    "Gain experience in digital marketing, social media management, and content creation",
				Location:       "Delhi",
				Stipend:        15000,
				Duration:       "3 months",
				Requirements:   []string{"Creative thinking", "Social media savvy", "Good communication"},
				ApplicationURL: "https://example.com/digital-solutions-intern",
				IsActive:       true,
			},
		},
		Colleges: []*College{
			{
				ID:          "1",
				Name:        "Indian Institute of Technology Bombay",
				Location:    "Mumbai",
				Stream:      "Engineering",
				Fees:        250000,
				Rank:        1,
				Rating:      4.8,
				Description: "Premier engineering institute with world-class facilities and faculty",
				Website:     "https://www.iitb.ac.in",
				IsActive:    true,
			},
			{
				ID:          "2",
				Name:        "Delhi University",
				Location:    "Delhi",
				Stream:      "Arts & Science",
				Fees:        15000,
				Rank:        5,
				Rating:      4.5,
				Description: "Renowned university offering diverse courses in arts, science, and commerce",
				Website:     "https://www.du.ac.in",
				IsActive:    true,
			},
			{
				ID:          "3",
				Name:        "St. Xavier's College",
				Location:    "Mumbai",
				Stream:      "Arts & Science",
				Fees:        45000,
				Rank:        8,
				Rating:      4.3,
				Description: "Private college known for quality education and excellent placement record",
				Website:     "https://www.xaviers.edu",
				IsActive:    true,
			},
		},
		CoachingCenters: []*CoachingCenter{
			{
				ID:          "1",
				Name:        "Allen Career Institute",
				Location:    "Kota",
				Exam:        "JEE Main & Advanced",
				Fees:        150000,
				Rating:      4.7,
				Description: "Leading coaching institute for engineering entrance exams",
				Website:     "https://www.allen.ac.in",
				IsActive:    true,
			},
			{
				ID:          "2",
				Name:        "FIITJEE",
				Location:    "Delhi",
				Exam:        "JEE Main & Advanced",
				Fees:        180000,
				Rating:      4.6,
				Description: "Premium coaching for IIT-JEE and other engineering entrance exams",
				Website:     "https://www.fiitjee.com",
				IsActive:    true,
			},
			{
				ID:          "3",
				Name:        "Resonance",
				Location:    "Kota",
				Exam:        "JEE Main & Advanced",
				Fees:        120000,
				Rating:      4.5,
				Description: "Comprehensive coaching for engineering and medical entrance exams",
				Website:     "https://www.resonance.ac.in",
				IsActive:    true,
			},
		},
		Profiles: []*Profile{
			{
				UserID:         "demo-user-1",
				Name:           "Priya Sharma",
				Skills:         []string{"React", "JavaScript", "UI/UX Design"},
				VerifiedSkills: []string{"React", "JavaScript"},
				Location:       "Mumbai",
				Goals:          []string{"Build a startup", "Learn AI/ML", "Network with developers"},
				Stream:         "Computer Science",
				Badges:         []Badge{badges[0], badges[4]},
				Bio:            "Passionate about creating user-friendly applications and solving real-world problems through technology.",
				IsActive:       true,
			},
			{
				UserID:         "demo-user-2",
				Name:           "Rahul Kumar",
				Skills:         []string{"Python", "Data Science", "Machine Learning"},
				VerifiedSkills: []string{"Python", "Data Science"},
				Location:       "Bangalore",
				Goals:          []string{"Data Scientist", "Research in AI", "Contribute to open source"},
				Stream:         "Data Science",
				Badges:         []Badge{badges[2], badges[4]},
				Bio:            "Data enthusiast with a strong foundation in statistics and programming. Looking to collaborate on ML projects.",
				IsActive:       true,
			},
			{
				UserID:         "demo-user-3",
				Name:           "Anjali Patel",
				Skills:         []string{"Marketing", "Social Media", "Content Creation"},
				VerifiedSkills: []string{"Marketing", "Social Media"},
				Location:       "Delhi",
				Goals:          []string{"Digital Marketing Manager", "Start a blog", "Learn SEO"},
				Stream:         "Marketing",
				Badges:         []Badge{badges[1], badges[3]},
				Bio:            "Creative marketer with a passion for digital storytelling and brand building. Always eager to learn new trends.",
				IsActive:       true,
			},
		},
		Users: []*User{
			{
				ID:       "demo-user-1",
				Email:    "demo@edufi.com",
				Name:     "Demo User",
				Role:     RoleCollege,
				Language: "english",
				Goals:    []string{"Get into top college", "Find scholarships"},
				Rank:     intPtr(5000),
				Budget:   intPtr(100000),
				Stream:   "engineering",
				Location: "Mumbai",
			},
		},
		EduCoins: []*EduCoin{
			{
				ID:          "coin-1",
				UserID:      "demo-user-1",
				Amount:      50,
				Source:      "Profile Completion",
				Description: "Completed your profile setup",
				CreatedAt:   now.Add(-2 * day),
			},
			{
				ID:          "coin-2",
				UserID:      "demo-user-1",
				Amount:      25,
				Source:      "First Login",
				Description: "Welcome to EduFi!",
				CreatedAt:   now.Add(-5 * day),
			},
		},
		Roadmaps: []*Roadmap{
			{
				ID:       "roadmap-1",
				UserID:   "demo-user-1",
				Title:    "Engineering Admission Roadmap",
				Progress: 35,
				Steps: []RoadmapStep{
					{ID: "step-1", Title: "Complete JEE Main Registration", Description: "Register for JEE Main examination", Completed: true},
					{ID: "step-2", Title: "Prepare for JEE Advanced", Description: "Study for JEE Advanced examination", Completed: true},
					{ID: "step-3", Title: "Apply to Top Colleges", Description: "Submit applications to preferred colleges"},
					{ID: "step-4", Title: "Prepare for Interviews", Description: "Practice for college interviews"},
				},
				CreatedAt: now.Add(-10 * day),
				UpdatedAt: now,
			},
		},
	}
}
