// StudyMap - AI study planner for JEE topics
//
// StudyMap asks a language model for a hierarchical roadmap of a JEE topic,
// shows it as collapsible sections of clickable sub-topics, finds a YouTube
// video and a few articles for whichever sub-topic the user picks, and
// writes formatted PDF study notes.
//
// # Quick Start
//
// Build the command:
//
//	go install github.com/smallnest/studymap/cmd/studymap@latest
//
// Run the HTTP API (reads GEMINI_API_KEY, YOUTUBE_API_KEY, SEARCH_API_KEY
// and SEARCH_ENGINE_ID from the environment):
//
//	studymap serve
//
// Or the terminal planner:
//
//	studymap tui
//
// Library use:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"os"
//
//		"github.com/tmc/langchaingo/llms/googleai"
//
//		"github.com/smallnest/studymap/roadmap"
//		"github.com/smallnest/studymap/study"
//	)
//
//	func main() {
//		ctx := context.Background()
//		llm, err := googleai.New(ctx, googleai.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
//		if err != nil {
//			panic(err)
//		}
//		defer llm.Close()
//
//		gen := study.NewGenerator(llm)
//		tree, err := gen.GenerateRoadmap(ctx, "Rotational Motion")
//		if err != nil {
//			panic(err)
//		}
//
//		fmt.Print(roadmap.EncodeMermaid(tree))
//	}
//
// # Packages
//
//   - roadmap: the topic tree, model-output parsing and Mermaid/DOT/ASCII encoders
//   - view: turns a tree into sections and keyed leaf buttons; selection state
//   - study: roadmap and notes generation, concurrent resource lookup
//   - notes: notes document model, PDF and HTML rendering
//   - tool: YouTube, Google Programmable Search, Brave and DuckDuckGo backends
//   - server: the HTTP API
//   - tui: the bubbletea terminal UI
//   - config: YAML and environment configuration
//   - log: the printf-style Logger and its golog implementation
//
// # Configuration
//
// Settings come from an optional YAML file (--config) overlaid with
// environment variables:
//
//	llm:
//	  provider: gemini        # or openai
//	  gemini_model: gemini-2.5-pro
//	search:
//	  article_backend: customsearch   # brave, duckduckgo
//	  article_limit: 3
//	server:
//	  addr: ":8000"
//	  allowed_origins: ["http://localhost:3000"]
//	  rate_limit:
//	    window: 15m
//	    max_requests: 100
//	log:
//	  level: info
//	notes:
//	  dir: ./notes
package studymap
