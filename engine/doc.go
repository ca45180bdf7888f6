// Copyright 2026 The aether Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine wires a camera, a shared spatial grid and an ordered set of
// named layers into a per-frame update.
//
// Each [Engine.Update] queries the grid with the camera's view bounds and
// hands the resulting id set to every layer, in the order the layers were
// added. [Engine.Run] drives Update from a ticker until its context ends.
package engine
