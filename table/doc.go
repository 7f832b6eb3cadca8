// SPDX-License-Identifier: MIT

// Package table stages tabular data on its way into the modeling containers.
// A Frame holds named, equally-long, homogeneously-typed columns, built
// either in memory (FromColumns) or parsed from CSV against a Schema
// (FromCSV); the To* casts then turn columns into index-sets and parameter
// dictionaries with row order preserved.
//
//	f, _ := table.FromCSV("arcs", r, table.Schema{
//		"origin": table.String,
//		"dest":   table.String,
//		"cost":   table.Float,
//	})
//	arcs, _ := f.ToIndexSetND("origin", "dest")
//	cost, _ := f.ToParamDictND("cost", "origin", "dest")
package table
