package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Voice gateway events are forwarded to the music manager, which owns the
// audio-node signaling.

func (b *Bot) onVoiceServerUpdate(s *discordgo.Session, e *discordgo.VoiceServerUpdate) {
	b.manager.HandleVoiceServerUpdate(e)
}

func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	b.manager.HandleVoiceStateUpdate(e)
}

// --- music.GuildState ---

// UserVoiceChannel reports the voice channel the user occupies, if any.
func (b *Bot) UserVoiceChannel(guildID, userID string) (string, bool) {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return "", false
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID, true
		}
	}
	return "", false
}

// BotVoiceChannel reports the voice channel the bot occupies, if any.
func (b *Bot) BotVoiceChannel(guildID string) (string, bool) {
	return b.UserVoiceChannel(guildID, b.dg.State.User.ID)
}

// BotChannelPermissions reports whether the bot may connect and speak in the
// channel.
func (b *Bot) BotChannelPermissions(guildID, channelID string) (bool, bool, error) {
	perms, err := b.dg.UserChannelPermissions(b.dg.State.User.ID, channelID)
	if err != nil {
		return false, false, err
	}
	connect := perms&discordgo.PermissionVoiceConnect != 0
	speak := perms&discordgo.PermissionVoiceSpeak != 0
	return connect, speak, nil
}

// BotCanMoveMembers reports whether the bot holds guild-level move-members
// rights, either directly, via administrator, or as the guild owner.
func (b *Bot) BotCanMoveMembers(guildID string) bool {
	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return false
	}
	botID := b.dg.State.User.ID
	if guild.OwnerID == botID {
		return true
	}

	member, err := b.dg.State.Member(guildID, botID)
	if err != nil {
		return false
	}
	for _, roleID := range member.Roles {
		role, err := b.dg.State.Role(guildID, roleID)
		if err != nil || role == nil {
			continue
		}
		if role.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionVoiceMoveMembers) != 0 {
			return true
		}
	}
	return false
}

// ChannelOccupancy reports the channel's user limit (0 means unlimited) and
// how many members currently occupy it.
func (b *Bot) ChannelOccupancy(guildID, channelID string) (int, int, error) {
	channel, err := b.dg.State.Channel(channelID)
	if err != nil {
		return 0, 0, err
	}

	guild, err := b.dg.State.Guild(guildID)
	if err != nil {
		return 0, 0, err
	}
	members := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			members++
		}
	}
	return channel.UserLimit, members, nil
}
