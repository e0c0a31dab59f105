package study

import "fmt"

const roadmapPrompt = `You are an expert tutor for the Indian Joint Entrance Examination (JEE).
Create a comprehensive, hierarchical learning roadmap for the JEE topic: '%s'.
The structure must be a nested JSON object. Values can be a list of strings, or a list containing strings and other nested objects.

Example for 'Calculus':
{
    "Limits, Continuity & Differentiability": [
        "Limits of Functions",
        "Continuity",
        "Differentiability",
        {"Mean Value Theorems": ["Rolle's Theorem", "Lagrange's MVT"]}
    ],
    "Applications of Derivatives": [
        "Rate of Change",
        "Tangents and Normals",
        "Maxima and Minima"
    ]
}

Create a detailed roadmap for '%s' following this exact nested structure.
Return ONLY the valid JSON object.`

const notesPrompt = `You are an expert tutor for the Indian Joint Entrance Examination (JEE).
Create a comprehensive set of study notes for a beginner learning the JEE topic: '%s'.
Include Key Formulas, Core Concepts, Problem-Solving Tips, and a Summary.
Format the output using clear headings and markdown.`

// RoadmapPrompt returns the prompt asking for a nested roadmap object.
func RoadmapPrompt(topic string) string {
	return fmt.Sprintf(roadmapPrompt, topic, topic)
}

// NotesPrompt returns the prompt asking for markdown study notes.
func NotesPrompt(topic string) string {
	return fmt.Sprintf(notesPrompt, topic)
}

// VideoQuery decorates a topic for the video search.
func VideoQuery(topic string) string {
	return topic + " JEE tutorial"
}

// ArticleQuery decorates a topic for the article search.
func ArticleQuery(topic string) string {
	return topic + " JEE study material article"
}
