package reconcile

// NonReciprocating returns the entries of following that are absent from followers.
// Order of following is preserved and duplicates are kept.
func NonReciprocating(following, followers []string) []string {
	followerSet := buildSet(followers)

	result := make([]string, 0)
	for _, account := range following {
		if _, ok := followerSet[account]; !ok {
			result = append(result, account)
		}
	}
	return result
}

// Reconcile computes the non-reciprocating accounts and, when requested,
// the converse direction. Each direction is computed independently.
func Reconcile(following, followers []string, opts Options) *Result {
	result := &Result{
		NotFollowingBack: NonReciprocating(following, followers),
	}

	if opts.Both {
		result.NotFollowedBack = NonReciprocating(followers, following)
	}

	result.Summary = Summary{
		Following:          len(following),
		Followers:          len(followers),
		NotFollowingBack:   len(result.NotFollowingBack),
		NotFollowedBack:    len(result.NotFollowedBack),
		DuplicateFollowing: countDuplicates(following),
	}

	return result
}

// buildSet creates a membership set over list.
func buildSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		set[item] = struct{}{}
	}
	return set
}

// countDuplicates returns how many entries repeat an earlier entry.
func countDuplicates(list []string) int {
	seen := make(map[string]struct{}, len(list))
	dups := 0
	for _, item := range list {
		if _, ok := seen[item]; ok {
			dups++
			continue
		}
		seen[item] = struct{}{}
	}
	return dups
}
