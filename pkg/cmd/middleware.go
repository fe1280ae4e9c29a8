package cmd

// Middleware wraps a command (e.g. logging, permission check).
// The wrapped type remains Command.
type Middleware func(Command) Command

// Apply wraps c left to right; the last middleware becomes the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
