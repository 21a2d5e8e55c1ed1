package youtube

import "testing"

func TestIsEducational(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    bool
	}{
		{
			name:        "Plain tutorial",
			title:       "Python Tutorial for Beginners",
			description: "A full course on the basics",
			expected:    true,
		},
		{
			name:        "Educational keyword in description only",
			title:       "Python Basics",
			description: "Step by step introduction to the language",
			expected:    true,
		},
		{
			name:        "Non-educational keyword vetoes educational match",
			title:       "Python Tutorial vlog",
			description: "Learn Python with me",
			expected:    false,
		},
		{
			name:        "Emoji in title always rejected",
			title:       "Python Crash Course \U0001F525",
			description: "Complete guide for beginners",
			expected:    false,
		},
		{
			name:        "Short marker rejected",
			title:       "Quick Python tutorial",
			description: "Learn the basics",
			expected:    false,
		},
		{
			name:        "Extreme duration rejected",
			title:       "10 hour Python course",
			description: "Full course",
			expected:    false,
		},
		{
			name:        "No educational signal at all",
			title:       "My trip to Japan",
			description: "Day one of the adventure",
			expected:    false,
		},
		{
			name:        "Gaming content rejected",
			title:       "Minecraft gaming highlights",
			description: "Best moments",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEducational(tt.title, tt.description); got != tt.expected {
				t.Errorf("isEducational(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.expected)
			}
		})
	}
}

func TestHasDisqualifier(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    bool
	}{
		{
			name:        "No positive signal required in relaxed pass",
			title:       "Understanding Go interfaces",
			description: "A deep dive into the type system",
			expected:    false,
		},
		{
			name:        "Negative keyword still rejects",
			title:       "Go interfaces reaction",
			description: "",
			expected:    true,
		},
		{
			name:        "Emoji still rejects",
			title:       "Go interfaces \U0001F600",
			description: "",
			expected:    true,
		},
		{
			name:        "Negative keyword in description rejects",
			title:       "Go interfaces",
			description: "From my daily vlog series",
			expected:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasDisqualifier(tt.title, tt.description); got != tt.expected {
				t.Errorf("hasDisqualifier(%q, %q) = %v, want %v", tt.title, tt.description, got, tt.expected)
			}
		})
	}
}
