package core

import (
	"sort"
	"strings"
)

const maxTags = 6

var tagsByLanguage = map[string][]string{
	"Python":     {"ml-engineer", "backend"},
	"JavaScript": {"frontend"},
	"TypeScript": {"frontend"},
	"Go":         {"backend", "systems"},
	"Rust":       {"systems"},
	"Java":       {"backend"},
	"C++":        {"systems"},
	"Swift":      {"mobile"},
	"Kotlin":     {"mobile"},
	"Dockerfile": {"devops"},
	"HCL":        {"devops", "cloud"},
}

var tagsByTopic = map[string]string{
	"machine-learning": "ml-engineer",
	"deep-learning":    "ml-engineer",
	"frontend":         "frontend",
	"react":            "frontend",
	"vue":              "frontend",
	"backend":          "backend",
	"api":              "backend",
	"database":         "database",
	"devops":           "devops",
	"docker":           "devops",
	"kubernetes":       "devops",
	"security":         "security",
	"fullstack":        "fullstack",
}

// topicConfidence is assigned to tags earned through an explicit repo topic.
const topicConfidence = 0.7

// InferTags derives developer specialization tags from the language mix and
// the topics of the user's repositories. At most six tags are returned,
// strongest first.
func InferTags(repos []Repository) []Tag {
	langCounts := make(map[string]int)
	topics := make(map[string]struct{})
	for _, r := range repos {
		if r.Language != "" {
			langCounts[r.Language]++
		}
		for _, topic := range r.Topics {
			topics[strings.ToLower(topic)] = struct{}{}
		}
	}

	total := 0
	for _, n := range langCounts {
		total += n
	}
	if total == 0 {
		total = 1
	}

	confidence := make(map[string]float64)
	for lang, n := range langCounts {
		share := float64(n) / float64(total)
		for _, tag := range tagsByLanguage[lang] {
			if share > confidence[tag] {
				confidence[tag] = share
			}
		}
	}

	for topic := range topics {
		tag, ok := tagsByTopic[topic]
		if !ok {
			continue
		}
		if topicConfidence > confidence[tag] {
			confidence[tag] = topicConfidence
		}
	}

	// A developer active on both sides of the stack earns fullstack.
	hasFrontend := langCounts["JavaScript"] > 0 || langCounts["TypeScript"] > 0
	hasBackend := false
	for _, lang := range []string{"Python", "Go", "Java", "Rust", "C++"} {
		if langCounts[lang] > 0 {
			hasBackend = true
			break
		}
	}
	if hasFrontend && hasBackend && confidence["fullstack"] < 0.6 {
		confidence["fullstack"] = 0.6
	}

	tags := make([]Tag, 0, len(confidence))
	for name, conf := range confidence {
		tags = append(tags, Tag{Name: name, Confidence: conf})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Confidence != tags[j].Confidence {
			return tags[i].Confidence > tags[j].Confidence
		}
		return tags[i].Name < tags[j].Name
	})
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
