// Package config loads studymap settings from an optional YAML file and
// the environment.
//
// Values are applied in order: built-in defaults, the YAML file, then
// environment variables such as GEMINI_API_KEY, YOUTUBE_API_KEY, PORT and
// CLIENT_URL. The result is validated before use.
//
//	cfg, err := config.Load(path) // path may be empty
//	if err != nil {
//		return err
//	}
//
// An example file:
//
//	llm:
//	  provider: gemini
//	  gemini_model: gemini-2.5-flash
//	search:
//	  article_backend: duckduckgo
//	server:
//	  addr: :8000
//	  allowed_origins: [http://localhost:3000]
//	  rate_limit:
//	    window: 15m
//	    max_requests: 100
package config
