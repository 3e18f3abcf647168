// Package vec provides lane-parallel forms of the approximations in package
// approx, built on the go-highway portable vector API.
//
// Every function computes, per lane, the same value as its scalar
// counterpart applied to that lane in isolation, within the scalar
// function's own accuracy target. All control flow is restated as mask
// selects and sign-copy bit operations, so lanes never diverge and no
// branching depends on lane values. There is no cross-lane communication
// anywhere in the package.
//
// The vector width is fixed by the go-highway dispatch level
// (hwy.MaxLanes[float64]()). The *Slice kernels process whole float64
// slices in full-vector chunks and finish non-multiple tails with the
// scalar kernels.
package vec
