// Package study is the shared core behind the HTTP API and the terminal UI.
//
// A Generator asks a language model for a roadmap or for study notes. A
// Finder looks up one video and a few articles for a sub-topic, running
// both searches at once and keeping their failures apart.
//
//	g := study.NewGenerator(llm, study.WithLogger(logger))
//	tree, err := g.GenerateRoadmap(ctx, "Fluid Mechanics")
//	switch {
//	case errors.Is(err, study.ErrEmptyTopic):
//		// rejected before any call
//	case roadmap.IsParseError(err):
//		// the model answered with something other than a roadmap
//	case study.IsUpstream(err):
//		// network, quota or auth failure
//	}
//
//	f := study.NewFinder(youtube, customSearch)
//	res := f.Find(ctx, "Bernoulli's Principle")
package study
