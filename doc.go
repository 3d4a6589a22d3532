// Package numlab is a collection of classical numerical methods and
// algorithms, each in its own package with explicit inputs, sentinel errors
// and no shared state.
//
// The centerpiece is recursive power-of-two matrix multiplication:
//
//	matrix/      Dense matrices, elementwise kernels, quadrant Split/Join,
//	              Multiply in Standard (8 products) and Strassen (7 products)
//	              variants with optional bounded fork-join parallelism,
//	              plus Mul, Kron, LU, Transpose, Scale and comparisons.
//
// Around it:
//
//	integrate/   Trapezoid, Simpson, Romberg
//	roots/       Bisection, RegulaFalsi, NewtonRaphson, Secant
//	interp/      Newton forward-difference interpolation
//	search/      Linear, Binary, Interpolation search; adjacency lists
//	bfs/, dfs/   graph traversals over search.Adjacency; topological sort
//	sorting/     Bubble, Insertion, Selection, Merge
//	matrixio/    YAML/JSON/text matrix files, gzip/zstd/lz4, cached Loader
//
// The numlab command (cmd/numlab) exposes the matrix, integration, root,
// sorting and search routines; it is configured through NUMLAB_* environment
// variables or a .env file.
package numlab
