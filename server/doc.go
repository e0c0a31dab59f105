// Package server exposes roadmap generation, resource lookup and notes over
// HTTP.
//
// Routes:
//
//	GET  /                       liveness message
//	GET  /api/health             status and timestamp
//	GET  /metrics                Prometheus metrics
//	POST /generate-roadmap       {"topic": "..."} -> roadmap JSON
//	GET  /get-resources/{topic}  video and articles for a sub-topic
//	POST /generate-notes         {"topic": "..."} -> notes text and HTML
//	POST /generate-pdf           {"topic": "...", "notes": "..."} -> PDF
//	POST /diagram                {"tree": {...}, "format": "dot"} -> diagram source
//
// Generation endpoints answer 400 for a blank topic, 422 when the model's
// reply cannot be parsed, and 502 when the model call itself fails. The
// server holds no per-user state; selection lives in the client.
//
// Example:
//
//	gen := study.NewGenerator(llm)
//	finder := study.NewFinder(youtube, search)
//	srv := server.New(gen, finder,
//		server.WithLogger(logger),
//		server.WithRateLimit(cfg.Server.RateLimit),
//	)
//	err := srv.ListenAndServe(ctx, ":8000")
package server
