package bias

// curated maps an exact matched phrase to its alternative phrasings.
// Keys are in normalized (lowercase) form, matching scanner output.
var curated = map[string][]string{
	"chairman":               {"chairperson", "chair", "committee lead"},
	"salesman":               {"salesperson", "sales representative"},
	"saleswoman":             {"salesperson", "sales representative"},
	"manpower":               {"workforce", "staffing", "team capacity"},
	"mankind":                {"humanity", "people"},
	"his team":               {"their team"},
	"he will be responsible": {"they will be responsible"},
	"waitress":               {"server"},
	"stewardess":             {"flight attendant"},
	"young and energetic":    {"motivated", "driven"},
	"digital native":         {"comfortable with modern tooling"},
	"recent graduates only":  {"early-career candidates welcome"},
	"native english speaker": {"fluent in English", "professional English proficiency"},
	"like a family":          {"a collaborative team"},
	"work hard play hard":    {"a focused, supportive culture"},
	"rockstar":               {"highly skilled professional", "expert"},
	"ninja":                  {"specialist", "expert practitioner"},
	"guru":                   {"subject-matter expert"},
	"wizard":                 {"expert"},
	"superhero":              {"strong contributor"},
	"aggressive":             {"ambitious", "proactive"},
}

// genericSuggestions is the fallback when no curated alternative exists.
var genericSuggestions = []string{
	"use neutral, skills-focused wording",
	"describe the requirement, not the person",
}

func suggestionsFor(matched string) []string {
	if alternatives, ok := curated[matched]; ok {
		out := make([]string, len(alternatives))
		copy(out, alternatives)
		return out
	}
	out := make([]string, len(genericSuggestions))
	copy(out, genericSuggestions)
	return out
}
