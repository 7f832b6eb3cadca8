// SPDX-License-Identifier: MIT

// Package paramdict provides ordered numeric parameter dictionaries for
// optimization models: ParamDict1D for scalar keys, ParamDictND for tuple
// keys drawn from indexset.
//
// Both shapes preserve insertion order, reject duplicate keys at
// construction, and expose the statistical reductions modeling code keeps
// reaching for (sum, min, max, mean, and the three median conventions).
// The N-D shape additionally supports wildcard selection and reshaping:
//
//	cost, _ := paramdict.FromEntriesND(
//		paramdict.EntryND[float64]{Key: indexset.T("A", "X"), Value: 4},
//		paramdict.EntryND[float64]{Key: indexset.T("A", "Y"), Value: 7},
//		paramdict.EntryND[float64]{Key: indexset.T("B", "X"), Value: 3},
//	)
//	fromA, _ := cost.SubsetValues("A", indexset.Wildcard)
//	total, _ := cost.Sum("A", indexset.Wildcard)
//
// Missing-key Lookup returns zero, which keeps sparse-data expressions terse;
// Get is the strict variant.
package paramdict
