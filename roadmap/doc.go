// Package roadmap holds the topic tree produced for a study subject and the
// encoders that turn it into diagram source.
//
// A roadmap is a nested JSON object mapping category labels to lists whose
// elements are either leaf topics or further nested objects:
//
//	{
//		"Limits, Continuity & Differentiability": [
//			"Limits of Functions",
//			{"Mean Value Theorems": ["Rolle's Theorem", "Lagrange's MVT"]}
//		],
//		"Applications of Derivatives": ["Rate of Change"]
//	}
//
// Go maps do not keep insertion order, so Tree is an ordered slice of
// categories with its own JSON codec.
//
// # Extracting a tree from model output
//
// Language models wrap the object in prose or code fences. Parse extracts
// the span between the first '{' and the last '}' and decodes it:
//
//	tree, err := roadmap.Parse(response)
//	if roadmap.IsParseError(err) {
//		// the model answered, but not with a roadmap
//	}
//
// # Diagrams
//
// Every category and every leaf becomes one node whose identifier is taken
// from a single counter shared by the whole traversal. Labels are never used
// as identifiers because they repeat.
//
//	fmt.Print(roadmap.EncodeMermaid(tree))
//
//	// graph LR;
//	//     node0["Limits, Continuity & Differentiability"];
//	//     node1["Limits of Functions"];
//	//     node0 --> node1;
//	//     ...
//
// NewEncoder also renders DOT and a box-drawing ASCII tree.
package roadmap
