package generator

// Options configures placement enumeration.
type Options struct {
	// MirrorReduction skips placements whose first rook sits in the right
	// half of the board; those are left-right mirrors of yielded ones.
	MirrorReduction bool
}

// DefaultOptions returns standard enumeration options.
func DefaultOptions() *Options {
	return &Options{
		MirrorReduction: true,
	}
}
