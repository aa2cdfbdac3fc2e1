package reconcile

// Options controls which directions are computed.
type Options struct {
	// Both also computes followers that the user does not follow back.
	Both bool
}

// Result holds the reconciliation output.
type Result struct {
	// NotFollowingBack lists followed accounts absent from the followers list,
	// in following-list order.
	NotFollowingBack []string `json:"not_following_back"`

	// NotFollowedBack lists followers absent from the following list,
	// in followers-list order. Only populated when Options.Both is set.
	NotFollowedBack []string `json:"not_followed_back,omitempty"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation.
type Summary struct {
	// Following is the number of entries in the following list.
	Following int `json:"following"`

	// Followers is the number of entries in the followers list.
	Followers int `json:"followers"`

	// NotFollowingBack is len(Result.NotFollowingBack).
	NotFollowingBack int `json:"not_following_back"`

	// NotFollowedBack is len(Result.NotFollowedBack).
	NotFollowedBack int `json:"not_followed_back"`

	// DuplicateFollowing counts repeated entries in the following list.
	DuplicateFollowing int `json:"duplicate_following"`
}
