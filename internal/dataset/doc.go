// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset generates the collections and targets searched by the
// benchmark.
//
// A collection of size n holds n distinct integers drawn uniformly
// without replacement from [1, RangeMultiplier*n]. Because the range is
// wider than the collection, MissingTarget(n) = RangeMultiplier*n + 2 is
// never present.
//
// # Usage
//
//	r := rand.New(rand.NewPCG(seed, seed))
//	items, err := dataset.Generate(r, 1000)
//	existing := dataset.PickExisting(r, items)
//	missing := dataset.MissingTarget(1000)
package dataset
