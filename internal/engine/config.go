package engine

// Config carries the behavioral knobs ComputeVersion accepts as its
// external interface. Field defaults are documented here; a zero-value
// Config is not valid input — callers should start from DefaultConfig.
type Config struct {
	// TagPrefix is the literal prefix stripped from tag names
	// (default "v"). Validated non-empty: an empty prefix would
	// match every tag in the repository, which is never intended.
	TagPrefix string `json:"tag_prefix" validate:"required"`

	// SkipTests short-circuits the decision for is_test projects
	// (default true).
	SkipTests bool `json:"skip_tests"`

	// SkipNonPackable short-circuits the decision for projects that
	// are not packable (default true).
	SkipNonPackable bool `json:"skip_non_packable"`

	// ForceVersion, when non-empty, overrides all computation: the
	// output is exactly this string with changed=true.
	ForceVersion string `json:"force_version" validate:"omitempty,semver_or_empty"`

	// Debug enables verbose rationale text. Never alters the decision.
	Debug bool `json:"debug"`

	// ExtraDebug enables additional rationale detail beyond Debug.
	// Never alters the decision.
	ExtraDebug bool `json:"extra_debug"`
}

// DefaultConfig returns the documented defaults from the external
// interface specification.
func DefaultConfig() Config {
	return Config{
		TagPrefix:       "v",
		SkipTests:       true,
		SkipNonPackable: true,
	}
}
