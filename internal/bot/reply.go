package bot

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// EmbedColor is the default accent color for plain reply embeds.
const EmbedColor = 0xE67E22

// Message sends a plain text message to the channel.
func Message(s *discordgo.Session, channelID, content string) error {
	_, err := s.ChannelMessageSend(channelID, content)
	return err
}

// MessageEmbed sends content wrapped in the default-color embed.
func MessageEmbed(s *discordgo.Session, channelID, content string) error {
	msg := embed.NewEmbed().
		SetColor(EmbedColor).
		SetDescription(content)
	_, err := s.ChannelMessageSendEmbed(channelID, msg.MessageEmbed)
	return err
}

// Reply sends a plain text message as a reply to m.
func Reply(s *discordgo.Session, m *discordgo.Message, content string) error {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   content,
		Reference: m.Reference(),
	})
	return err
}

// ReplyEmbed sends an embed as a reply to m.
func ReplyEmbed(s *discordgo.Session, m *discordgo.Message, e *discordgo.MessageEmbed) error {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{e},
		Reference: m.Reference(),
	})
	return err
}

// ReplyEmbedWithFile sends an embed plus a file attachment as a reply to m.
// The embed may reference the file via attachment://<name>.
func ReplyEmbedWithFile(s *discordgo.Session, m *discordgo.Message, e *discordgo.MessageEmbed, file *discordgo.File) error {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{e},
		Files:     []*discordgo.File{file},
		Reference: m.Reference(),
	})
	return err
}
