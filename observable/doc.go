// SPDX-License-Identifier: MIT

// Package observable projects density matrices onto observables.
//
// TraceInner computes tr(a·b); BlochCoordinates turns a trajectory of
// single-qubit density matrices into Bloch-sphere coordinates
// (Re tr(ρσx)/2, Re tr(ρσy)/2, Re tr(ρσz)/2). The trajectory itself comes
// from a master-equation Solver supplied by the caller.
package observable
