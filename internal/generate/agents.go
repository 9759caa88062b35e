// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import "strings"

// Role names a specialist persona used to frame a generation request.
type Role string

const (
	RoleAccommodation      Role = "accommodation"
	RoleActivities         Role = "activities"
	RoleItinerary          Role = "itinerary"
	RoleBudget             Role = "budget"
	RoleLocalExpert        Role = "local_expert"
	RolePreferenceAnalyzer Role = "preference_analyzer"
	RoleSeasonality        Role = "seasonality_expert"
)

// Agent is the system prompt and sampling temperature for one Role.
type Agent struct {
	Role         Role
	SystemPrompt string
	Expertise    []string
	Temperature  float64
}

// roleOrder fixes the tie-break order for BestFor.
var roleOrder = []Role{
	RoleItinerary,
	RoleActivities,
	RoleAccommodation,
	RoleBudget,
	RoleLocalExpert,
	RoleSeasonality,
}

var roleKeywords = map[Role][]string{
	RoleAccommodation: {"hotel", "stay", "hostel", "apartment", "booking", "room"},
	RoleActivities:    {"activity", "tour", "visit", "see", "experience", "attraction"},
	RoleItinerary:     {"schedule", "plan", "itinerary", "timeline", "when", "order"},
	RoleBudget:        {"budget", "cost", "price", "expensive", "cheap", "afford"},
	RoleLocalExpert:   {"local", "authentic", "traditional", "cultural", "hidden", "secret"},
	RoleSeasonality:   {"best time", "season", "peak season", "off-peak", "weather", "climate", "rainy season"},
}

const formatting = "Format with clear headings and bullet points."

// Registry holds the known agents.
type Registry struct {
	agents map[Role]Agent
}

// NewRegistry returns a registry with the built-in travel agents.
func NewRegistry() *Registry {
	agents := []Agent{
		{
			Role: RoleAccommodation,
			SystemPrompt: "You are an expert travel accommodation advisor.\n" +
				"Consider budget, location, amenities, traveler preferences.\n" +
				"Provide specific, actionable recommendations with brief explanations.\n" + formatting,
			Expertise:   []string{"hotels", "hostels", "vacation rentals", "booking", "amenities"},
			Temperature: 0.7,
		},
		{
			Role: RoleActivities,
			SystemPrompt: "You are a local activities and experiences expert.\n" +
				"Recommend unique, engaging activities based on destination and interests.\n" +
				"Consider seasonal availability, cultural significance, and authenticity.\n" + formatting,
			Expertise:   []string{"tours", "attractions", "local experiences", "cultural activities"},
			Temperature: 0.8,
		},
		{
			Role: RoleItinerary,
			SystemPrompt: "You are an expert travel itinerary planner.\n" +
				"Create well-balanced, realistic schedules that maximize experiences.\n" +
				"Consider travel times, opening hours, logical flow.\n" + formatting,
			Expertise:   []string{"scheduling", "route optimization", "time management"},
			Temperature: 0.6,
		},
		{
			Role: RoleBudget,
			SystemPrompt: "You are a travel budget optimization expert.\n" +
				"Consider seasonal pricing, local costs, and value for money.\n" +
				"Help travelers make cost-effective decisions.\n" + formatting,
			Expertise:   []string{"cost analysis", "budget optimization", "value assessment"},
			Temperature: 0.5,
		},
		{
			Role: RoleLocalExpert,
			SystemPrompt: "You are a knowledgeable local expert.\n" +
				"Share insider tips, hidden gems, and authentic experiences.\n" +
				"Consider cultural nuances and off-the-beaten-path options.\n" + formatting,
			Expertise:   []string{"local culture", "hidden gems", "authentic experiences"},
			Temperature: 0.8,
		},
		{
			Role: RolePreferenceAnalyzer,
			SystemPrompt: "You are an expert in analyzing travel preferences.\n" +
				"Extract and categorize user preferences from travel-related conversations.\n" +
				"Focus on budget, style, accommodation, activities, time constraints.\n" +
				"Provide analysis in structured JSON.",
			Expertise:   []string{"preference analysis", "user profiling", "pattern recognition"},
			Temperature: 0.3,
		},
		{
			Role: RoleSeasonality,
			SystemPrompt: "You are an expert in travel timing, seasonality, and weather considerations.\n" +
				"Recommend best times of year or day to visit a place, factoring in climate,\n" +
				"peak vs. off-peak seasons, major local events, crowd levels, and pricing.\n" + formatting,
			Expertise:   []string{"weather patterns", "peak/off-peak", "climate data", "special events"},
			Temperature: 0.7,
		},
	}

	r := &Registry{agents: make(map[Role]Agent, len(agents))}
	for _, a := range agents {
		r.agents[a.Role] = a
	}
	return r
}

// Get returns the agent for role.
func (r *Registry) Get(role Role) (Agent, bool) {
	a, ok := r.agents[role]
	return a, ok
}

// BestFor scores each routable agent by how many of its keywords appear in
// query and returns the highest scorer. Ties go to the earlier role in
// roleOrder; a query with no hits goes to the itinerary planner. The
// preference analyzer is never chosen.
func (r *Registry) BestFor(query string) Agent {
	q := strings.ToLower(query)

	best, bestScore := RoleItinerary, 0
	for _, role := range roleOrder {
		score := 0
		for _, kw := range roleKeywords[role] {
			if strings.Contains(q, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = role, score
		}
	}
	return r.agents[best]
}
