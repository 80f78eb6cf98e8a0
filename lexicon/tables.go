package lexicon

import "signal-lab/domain"

// TrajectoryEntries is the per-message lexicon used to label the
// emotional trajectory. Phrases are matched as substrings after
// normalization; short interjections live in the regex column so
// they stay word-bounded.
func TrajectoryEntries() []Entry {
	return []Entry{
		{
			Label:  domain.Enthusiastic,
			Weight: 3,
			Phrases: []string{
				"excited", "thrilled", "passionate", "love this", "love working",
				"amazing", "fantastic", "can't wait", "cant wait", "awesome",
			},
			Patterns: []string{
				`really (?:enjoy|like|love)`,
				`looking forward to`,
			},
		},
		{
			Label:  domain.Confident,
			Weight: 3,
			Phrases: []string{
				"definitely", "certainly", "absolutely", "without a doubt",
				"i'm confident", "i am confident", "proven", "successfully",
			},
			Patterns: []string{
				`i (?:led|built|delivered|designed|owned)`,
				`i know (?:how|exactly)`,
			},
		},
		{
			Label:  domain.Engaged,
			Weight: 3,
			Phrases: []string{
				"interesting", "great question", "good question", "curious",
				"tell me more", "that makes sense", "good point",
			},
			Patterns: []string{
				`what about`,
				`how (?:do|does|would) (?:you|the team)`,
			},
		},
		{
			Label:  domain.Thoughtful,
			Weight: 3,
			Phrases: []string{
				"let me think", "in my experience", "i would say", "i believe",
				"on the other hand", "considering", "it depends",
			},
			Patterns: []string{
				`i(?:'d| would) (?:consider|weigh)`,
				`to be (?:fair|precise)`,
			},
		},
		{
			Label:  domain.Uncertain,
			Weight: 3,
			Phrases: []string{
				"not sure", "i guess", "possibly", "perhaps", "i think so",
			},
			Patterns: []string{
				`\bmaybe\b`,
				`i(?:'m| am) not (?:sure|certain)`,
				`i don'?t (?:know|remember)`,
			},
		},
		{
			Label:  domain.Nervous,
			Weight: 3,
			Phrases: []string{
				"sorry", "i apologize", "apologies", "hopefully",
			},
			Patterns: []string{
				`\bum+\b`,
				`\buh+\b`,
				`i(?:'m| am) (?:nervous|worried|anxious)`,
			},
		},
		{
			Label:  domain.Disinterested,
			Weight: 3,
			Phrases: []string{
				"whatever", "doesn't matter", "doesnt matter", "if you say so",
				"i suppose",
			},
			Patterns: []string{
				`not (?:really )?interested`,
				`\bmeh\b`,
			},
		},
		{
			Label:  domain.Defensive,
			Weight: 3,
			Phrases: []string{
				"that's not fair", "as i said", "i already said",
				"i already told you", "why does that matter",
			},
			Patterns: []string{
				`i (?:didn'?t|never) (?:say|do) that`,
			},
		},
		{
			Label:  domain.Evasive,
			Weight: 3,
			Phrases: []string{
				"moving on", "next question", "rather not say", "let's skip",
				"lets skip",
			},
			Patterns: []string{
				`i(?:'d| would) rather not`,
				`can we (?:skip|move on)`,
			},
		},
	}
}

// SentimentEntries is the slightly larger lexicon used by the aggregate
// summarizer. It extends the trajectory lexicon on the channels that feed
// the pooled positive/negative/neutral buckets.
func SentimentEntries() []Entry {
	extra := []Entry{
		{
			Label:  domain.Enthusiastic,
			Weight: 3,
			Phrases: []string{
				"this is exactly", "dream role", "really motivated", "energized",
			},
		},
		{
			Label:  domain.Confident,
			Weight: 3,
			Phrases: []string{
				"i have done this before", "track record", "i'm certain", "i am certain",
			},
			Patterns: []string{
				`my team (?:shipped|delivered)`,
			},
		},
		{
			Label:  domain.Engaged,
			Weight: 3,
			Phrases: []string{
				"could you elaborate", "i'd love to hear", "follow up",
			},
		},
		{
			Label:  domain.Uncertain,
			Weight: 3,
			Phrases: []string{
				"i haven't really", "i havent really", "hard to say",
			},
		},
		{
			Label:  domain.Nervous,
			Weight: 3,
			Phrases: []string{
				"bear with me", "a bit stressed",
			},
		},
		{
			Label:  domain.Disinterested,
			Weight: 3,
			Phrases: []string{
				"is this almost over", "how much longer",
			},
		},
		{
			Label:  domain.Thoughtful,
			Weight: 3,
			Phrases: []string{
				"trade-off", "tradeoff", "weighing", "nuance",
			},
		},
	}
	return append(TrajectoryEntries(), extra...)
}
