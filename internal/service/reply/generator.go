package reply

import "strings"

// Topic identifies the portfolio subject a visitor message is about.
type Topic string

const (
	General    Topic = "general"
	Greeting   Topic = "greeting"
	Projects   Topic = "projects"
	Skills     Topic = "skills"
	Experience Topic = "experience"
	Contact    Topic = "contact"
)

// Generator produces an assistant reply for a visitor utterance. It is kept
// behind an interface so routing code never depends on how replies are made.
type Generator interface {
	Reply(utterance string) string
}

var keywordBuckets = map[Topic][]string{
	Greeting: {
		"hello", "hi ", "hey", "good morning", "good afternoon", "good evening",
		"greetings", "howdy", "what's up", "whats up", "yo ",
	},
	Projects: {
		"project", "portfolio", "built", "build", "app", "website", "demo",
		"github", "repo", "code", "work on", "working on", "showcase",
	},
	Skills: {
		"skill", "stack", "tech", "technology", "language", "framework",
		"react", "typescript", "javascript", "node", "frontend", "backend",
		"tools", "know how",
	},
	Experience: {
		"experience", "background", "career", "job", "company", "role",
		"worked", "years", "resume", "cv", "education", "degree",
	},
	Contact: {
		"contact", "email", "reach", "hire", "hiring", "available",
		"availability", "linkedin", "freelance", "collaborate", "get in touch",
	},
}

// tieBreak fixes the winner when two buckets score equally, so the same
// input always yields the same reply.
var tieBreak = []Topic{Greeting, Contact, Projects, Skills, Experience}

var cannedReplies = map[Topic]string{
	General:    "Thanks for your message! Feel free to ask me about my projects, skills, experience, or how to get in touch.",
	Greeting:   "Hi there! I'm the portfolio assistant. Ask me anything about my projects, skills, or experience.",
	Projects:   "I've built several projects you can explore on this site, from interactive web apps to backend services. The featured ones are right on the projects page, each with a live demo and source link.",
	Skills:     "My core stack is React and TypeScript on the frontend with Go and Node.js on the backend, plus the usual suspects: CI pipelines, containers, and cloud deployments.",
	Experience: "I've spent the last few years shipping production web applications, working across the stack from UI polish to API design. The experience section has the full timeline.",
	Contact:    "Great to hear you'd like to connect! The contact section has my email and LinkedIn, and I'm always open to interesting projects.",
}

// Canned is the default rule-based Generator. It is pure and deterministic:
// keyword buckets are scored against the utterance and the best topic's
// fixed reply is returned.
type Canned struct{}

// NewCanned returns the rule-based generator.
func NewCanned() Canned {
	return Canned{}
}

// Reply picks the canned response for the highest-scoring topic.
func (Canned) Reply(utterance string) string {
	return cannedReplies[Classify(utterance)]
}

// Classify scores the utterance against every keyword bucket and returns the
// winning topic, or General when nothing matches.
func Classify(utterance string) Topic {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return General
	}
	// Pad so prefix-sensitive keywords like "hi " match at the end of input.
	normalized = " " + normalized + " "

	scores := make(map[Topic]int)
	for topic, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[topic] += 3
			}
		}
	}

	best := General
	bestScore := 0
	for _, topic := range tieBreak {
		if scores[topic] > bestScore {
			best = topic
			bestScore = scores[topic]
		}
	}
	return best
}
