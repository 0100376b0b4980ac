// Package model provides the output representation of a reconstructed
// document.
//
// A [Document] is an ordered list of [ClassifiedLine] values together with
// the pass-through metadata a renderer needs (title and date). Each line
// carries exactly one [Category]:
//
//   - [CategoryHeading] - oversized lines, possibly merged across wrapped lines
//   - [CategoryExercise], [CategoryExample], [CategoryLemma], [CategoryNote],
//     [CategoryDefinition], [CategoryProposition], [CategoryTheorem],
//     [CategoryProof] - lines opened by a lexical marker
//   - [CategoryFormula] - lines containing a mathematical operator symbol
//   - [CategoryParagraph] - everything else
//
// Headings may contain superscript [Span] values; the model stays free of
// markup so any renderer can decide how to present them.
package model
