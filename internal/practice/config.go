// Package practice holds the practice's static business configuration
// and the service that speaks it back to callers.
package practice

// Hours lists display strings for each weekday, e.g. "9:00 AM - 6:00 PM"
// or "Closed".
type Hours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Pricing holds session fees as display strings.
type Pricing struct {
	InitialSession      string `json:"initial_session"`
	FollowUpSession     string `json:"follow_up_session"`
	ConcessionAvailable bool   `json:"concession_available"`
}

// Location describes where the practice is and how to get there.
type Location struct {
	Address         string `json:"address"`
	Parking         string `json:"parking"`
	PublicTransport string `json:"public_transport"`
}

// Contact holds the practice's own numbers plus the crisis line callers
// are referred to.
type Contact struct {
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	CrisisLine string `json:"crisis_line"`
}

// FAQItem is one question/answer pair available to the voice agent.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Config is the complete, immutable practice configuration. It is
// injected at construction; nothing in this package mutates it after
// load, which keeps per-tenant configuration and tests trivial.
type Config struct {
	Name     string    `json:"name"`
	Timezone string    `json:"timezone"`
	Hours    Hours     `json:"hours"`
	Pricing  Pricing   `json:"pricing"`
	Location Location  `json:"location"`
	Services []string  `json:"services"`
	Contact  Contact   `json:"contact"`
	FAQ      []FAQItem `json:"faq,omitempty"`
}

// Defaults returns the built-in configuration used until an operator
// stores their own.
func Defaults() *Config {
	return &Config{
		Name:     "Mindwell Psychology",
		Timezone: "Australia/Sydney",
		Hours: Hours{
			Monday:    "9:00 AM - 6:00 PM",
			Tuesday:   "9:00 AM - 6:00 PM",
			Wednesday: "9:00 AM - 6:00 PM",
			Thursday:  "9:00 AM - 6:00 PM",
			Friday:    "9:00 AM - 5:00 PM",
			Saturday:  "9:00 AM - 2:00 PM",
			Sunday:    "Closed",
		},
		Pricing: Pricing{
			InitialSession:      "$180",
			FollowUpSession:     "$150",
			ConcessionAvailable: true,
		},
		Location: Location{
			Address:         "123 Wellbeing Street, Sydney NSW 2000",
			Parking:         "Free parking available",
			PublicTransport: "Accessible by train and bus",
		},
		Services: []string{
			"Mood disorders (depression, anxiety)",
			"Relationship issues",
			"Stress management",
			"Trauma therapy",
			"Cognitive Behavioural Therapy (CBT)",
		},
		Contact: Contact{
			Phone:      "0413 678 116",
			Email:      "reception@mindwellpsychology.com.au",
			CrisisLine: "13 11 14",
		},
		FAQ: []FAQItem{
			{
				Question: "What is your cancellation policy?",
				Answer:   "We require 24 hours notice for cancellations. Late cancellations are charged the full session fee.",
			},
			{
				Question: "How long is each session?",
				Answer:   "Most sessions are 50 minutes. Initial assessments may take up to 75 minutes.",
			},
			{
				Question: "Do you offer telehealth sessions?",
				Answer:   "Yes, we offer both in-person and telehealth sessions.",
			},
			{
				Question: "Do you accept Medicare rebates?",
				Answer:   "Yes, we provide receipts so you can claim rebates through Medicare or private health insurance.",
			},
		},
	}
}
