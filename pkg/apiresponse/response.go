package apiresponse

import (
	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// New builds an Envelope with a translated message.
func New(code int, msgKey string, lang string, data any) Envelope {
	return Envelope{
		Status:  code,
		Message: GetTransMsg(msgKey, lang),
		Data:    data,
	}
}

// CreateError builds an Envelope without data.
func CreateError(code int, msgKey string, lang string) Envelope {
	return New(code, msgKey, lang, nil)
}

// GetTransMsg retrieves the translated message, falling back to the key.
func GetTransMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
