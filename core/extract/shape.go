package extract

// Role declares which relationship list a payload holds.
type Role string

const (
	// RoleFollowers is the list of accounts that follow the user.
	RoleFollowers Role = "followers"
	// RoleFollowing is the list of accounts the user follows.
	RoleFollowing Role = "following"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleFollowers || r == RoleFollowing
}

// Wrapper keys used by the newer export format.
const (
	KeyFollowers = "relationships_followers"
	KeyFollowing = "relationships_following"
)

// Shape identifies the top-level layout of an export payload.
type Shape int

const (
	// ShapeUnrecognized matches neither known layout.
	ShapeUnrecognized Shape = iota
	// ShapeLegacyArray is a bare array of records.
	ShapeLegacyArray
	// ShapeWrapped is an object holding the array under a relationships_* key.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeLegacyArray:
		return "legacy_array"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "unrecognized"
	}
}

// DetectShape classifies a decoded payload.
// The wrapped shape is detected by the presence of a wrapper key whose value is an array.
func DetectShape(payload any) Shape {
	switch v := payload.(type) {
	case []any:
		return ShapeLegacyArray
	case map[string]any:
		for _, key := range []string{KeyFollowers, KeyFollowing} {
			if _, ok := v[key].([]any); ok {
				return ShapeWrapped
			}
		}
	}
	return ShapeUnrecognized
}

// records returns the record array for the given shape.
// For the wrapped shape the key matching the role is preferred.
func records(payload any, shape Shape, role Role) []any {
	switch shape {
	case ShapeLegacyArray:
		return payload.([]any)
	case ShapeWrapped:
		obj := payload.(map[string]any)
		keys := []string{KeyFollowers, KeyFollowing}
		if role == RoleFollowing {
			keys = []string{KeyFollowing, KeyFollowers}
		}
		for _, key := range keys {
			if list, ok := obj[key].([]any); ok {
				return list
			}
		}
	}
	return nil
}
