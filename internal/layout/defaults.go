package layout

// WithDefaults fills any zero-valued field from the reference tuning, so
// partial configs (a session config that only names a strategy, say) are
// usable as-is.
func (c Config) WithDefaults() Config {
	d := DefaultConfig(800, 600)
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.NodeSeparation == 0 {
		c.NodeSeparation = d.NodeSeparation
	}
	if c.RankSeparation == 0 {
		c.RankSeparation = d.RankSeparation
	}
	if c.Iterations == 0 {
		c.Iterations = d.Iterations
	}
	if c.RepulsionConstant == 0 {
		c.RepulsionConstant = d.RepulsionConstant
	}
	if c.AttractionConstant == 0 {
		c.AttractionConstant = d.AttractionConstant
	}
	if c.Damping == 0 {
		c.Damping = d.Damping
	}
	return c
}
