// Package approx provides fast, branch-light approximations of elementary
// transcendental functions: exponential, natural logarithm, sine, cosine,
// tangent, arctangent, two-argument arctangent, and square root.
//
// The functions trade a bounded accuracy loss (down to roughly 1e-12
// relative error) for throughput and for uniform, data-parallel execution.
// Each one combines a numerically chosen range reduction with a fixed
// polynomial evaluated by a fused-multiply-add Horner fold, so the hot path
// contains no table lookups and almost no branches.
//
// The reusable leaves the approximations are built from are exported too:
// Polyval (Horner evaluation), PeriodicClamp (periodic range reduction), and
// Powi (integer power by squaring).
//
// Lane-parallel forms of every function, operating on go-highway vectors,
// live in the vec subpackage. All operations in both packages are pure,
// allocation-free on the scalar path, and safe for concurrent use.
package approx
