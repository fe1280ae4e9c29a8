package roll

import (
	"os"
	"path/filepath"
	"testing"

	"rpg-bot/internal/command"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	assert.Equal(t, "dice_1.gif", AssetName(1))
	assert.Equal(t, "dice_6.gif", AssetName(6))
}

func TestValidateAssets(t *testing.T) {
	dir := t.TempDir()
	for v := MinFace; v <= MaxFace; v++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, AssetName(v)), []byte("gif"), 0o644))
	}

	assert.NoError(t, ValidateAssets(dir, MinFace, MaxFace))

	require.NoError(t, os.Remove(filepath.Join(dir, AssetName(3))))
	err := ValidateAssets(dir, MinFace, MaxFace)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice_3.gif")
}

func listenerContext(content string) *command.MessageContext {
	return &command.MessageContext{
		Event: &discordgo.MessageCreate{
			Message: &discordgo.Message{Content: content},
		},
	}
}

func TestListenIgnoresUnrelatedMessages(t *testing.T) {
	// RNG left nil on purpose: a roll attempt would panic, proving the
	// trigger filter short-circuits first.
	c := &RollCommand{}

	assert.NoError(t, c.Listen(listenerContext("hello there")))
	assert.NoError(t, c.Listen(listenerContext("rolar os dados")))
	assert.NoError(t, c.Listen(listenerContext("")))
}
