// Package sparsemat is a small toolkit for sparse integer matrices stored
// as plain text, from the decoder to the command-line operator.
//
// 🚀 What is inside?
//
//	• sparse/  the coordinate-map Matrix, text codec, Add/Sub/Mul with an
//	           explicit shape-mismatch policy, transforms, random generator
//	• dense/   a small row-major dense matrix used as a reference and for
//	           grid rendering
//	• cmd/sparsemat  the CLI: add, sub, mul, check, show, info, map,
//	           filter, gen and the interactive prompt
//
// ✨ Text format:
//
//	rows=3
//	cols=3
//	(0, 0, 5)
//	(2, 1, -2)
//
// Only stored entries are listed; every other cell is zero. Encoding is
// canonical (row-major order), so two equal matrices always produce the
// same bytes.
//
// Quick start:
//
//	a, _ := sparse.Unmarshal(textA)
//	b, _ := sparse.Unmarshal(textB)
//	c, err := sparse.Mul(a, b)
//	if err != nil { ... }
//	out, _ := sparse.Marshal(c)
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
