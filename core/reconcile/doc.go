// Package reconcile computes the asymmetric difference between two
// relationship lists.
//
// Given the accounts a user follows and the accounts that follow the user,
// it reports the followed accounts that do not follow back and, optionally,
// the followers the user does not follow back.
//
// # Algorithm
//
// A membership set is built over one list (O(n)) and the other list is walked
// once in its original order (O(m)). The output keeps the relative order of
// the walked list; no sort is applied here. Sorting and searching belong to
// the presentation layer (see core/present).
//
// # Duplicates
//
// The walked list is not de-duplicated: a handle that appears twice in the
// following list and does not follow back appears twice in the result.
// Summary.DuplicateFollowing counts these repeats so callers can flag them.
//
// # Usage Example
//
//	result := reconcile.Reconcile(following, followers, reconcile.Options{Both: true})
//	for _, account := range result.NotFollowingBack {
//	    fmt.Println(account)
//	}
//
// Both functions are pure and never mutate their inputs.
package reconcile
