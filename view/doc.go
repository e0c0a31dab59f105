// Package view turns a roadmap into a UI description and tracks which leaf
// topic the user picked.
//
// Render is a pure function of the tree. Each category becomes an expanded
// Section whose leaf topics are laid out as Buttons in up to three columns
// and whose nested categories follow as full-width Branches. Every leaf
// takes the next value of a counter that starts at zero for each Render
// call, so keys are stable across re-renders and never depend on labels:
//
//	layout := view.Render(tree)
//	var sess view.Session
//	sess.WithRoadmap("Calculus", tree)
//	if sess.Activate(layout, "roadmap_btn_3") {
//		// sess.Selected holds the full, untruncated label
//	}
//
// Buttons display at most 40 characters; longer labels are cut to 37 and
// end in "...". Selection always stores the full label.
package view
