package music

// Reason classifies why the precondition gate rejected a command.
type Reason int

const (
	ReasonNoGuild Reason = iota
	ReasonJoinVoiceChannel // user in no channel, bot not connected
	ReasonJoinMyChannel    // user in no channel, bot already connected
	ReasonNotPlaying
	ReasonNoPermissions
	ReasonChannelFull
	ReasonWrongChannel
	ReasonVolumeOutOfRange
	ReasonNoResults
)

// GateError is a user-facing rejection. Message is what gets posted to chat.
type GateError struct {
	Reason  Reason
	Message string
}

func (e *GateError) Error() string { return e.Message }

var (
	ErrNoGuild          = &GateError{ReasonNoGuild, "Esse comando só pode ser usado num servidor."}
	ErrJoinVoiceChannel = &GateError{ReasonJoinVoiceChannel, "Entre num canal de voz primeiro."}
	ErrJoinMyChannel    = &GateError{ReasonJoinMyChannel, "Você precisa entrar no meu canal de voz primeiro."}
	ErrNotPlaying       = &GateError{ReasonNotPlaying, "Eu não estou tocando uma música."}
	ErrNoPermissions    = &GateError{ReasonNoPermissions, "Eu preciso das permissões `CONECTAR` e `FALAR`"}
	ErrChannelFull      = &GateError{ReasonChannelFull, "Seu canal de voz está cheio!"}
	ErrWrongChannel     = &GateError{ReasonWrongChannel, "Você precisa estar no canal de voz."}
	ErrVolumeOutOfRange = &GateError{ReasonVolumeOutOfRange, "> ⚠️ **Erro**: você só pode colocar valores **acima de 0** e **até 1**, sendo 1 o valor padrão."}
	ErrNoResults        = &GateError{ReasonNoResults, "Não consegui encontrar nenhuma faixa para essa pesquisa."}
)
