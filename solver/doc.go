// SPDX-License-Identifier: MIT

// Package solver defines the thin seam between the modeling containers and a
// concrete optimization engine: the VarType enumeration and the Model
// capability interface a backend implements to hand out decision-variable
// handles. The highs sibling package is the bundled implementation; vardict
// consumes any Model without knowing which engine sits behind it.
package solver
