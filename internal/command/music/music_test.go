package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The alias surface is a compatibility contract; renames break muscle memory
// in running servers.
func TestCommandSurfaceAliases(t *testing.T) {
	deps := &Deps{}

	assert.Equal(t, []string{"tocar"}, (&PlayCommand{deps}).Aliases())
	assert.Equal(t, []string{"l", "sair"}, (&LeaveCommand{deps}).Aliases())
	assert.Equal(t, []string{"s", "pular"}, (&SkipCommand{deps}).Aliases())
	assert.Empty(t, (&StopCommand{deps}).Aliases())
	assert.Equal(t, []string{"pausar"}, (&PauseCommand{deps}).Aliases())
	assert.Empty(t, (&ResumeCommand{deps}).Aliases())
	assert.Empty(t, (&VolumeCommand{deps}).Aliases())
	assert.Empty(t, (&LoopCommand{deps}).Aliases())
}
