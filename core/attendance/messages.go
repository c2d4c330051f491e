package attendance

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core"
)

// Confirmation messages sent to the user after a status change.
const (
	MsgPresent   = "Presença registrada"
	MsgAbsent    = "Falta registrada"
	MsgJustified = "Falta justificada registrada"
)

const (
	msgKeyPresent   = "attendance.present"
	msgKeyAbsent    = "attendance.absent"
	msgKeyJustified = "attendance.justified"
	msgKeyStudent   = "attendance.student"
	msgKeyCaption   = "attendance.caption"
	msgKeyEmpty     = "attendance.empty"
)

var messageTexts = map[string]map[string]string{
	core.LocalePTBR: {
		msgKeyPresent:   MsgPresent,
		msgKeyAbsent:    MsgAbsent,
		msgKeyJustified: MsgJustified,
		msgKeyStudent:   "Aluno: {0}",
		msgKeyCaption:   "Lista de presença para {0}",
		msgKeyEmpty:     "Nenhum aluno encontrado.",
	},
	core.LocaleEN: {
		msgKeyPresent:   "Attendance recorded",
		msgKeyAbsent:    "Absence recorded",
		msgKeyJustified: "Justified absence recorded",
		msgKeyStudent:   "Student: {0}",
		msgKeyCaption:   "Attendance list for {0}",
		msgKeyEmpty:     "No students found.",
	},
}

// Notification is what the notification collaborator shows after a status change.
type Notification struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// RegisterMessages adds the attendance texts to `translator` (pt_BR texts for unknown locales).
func RegisterMessages(translator ut.Translator) error {
	texts, ok := messageTexts[translator.Locale()]
	if !ok {
		texts = messageTexts[core.LocalePTBR]
	}
	for key, text := range texts {
		if err := translator.Add(key, text, true); err != nil {
			return errors.Wrapf(err, "registering %q", key)
		}
	}
	return nil
}

func messageKey(status Status) (string, error) {
	switch status {
	case Present:
		return msgKeyPresent, nil
	case Absent:
		return msgKeyAbsent, nil
	case Justified:
		return msgKeyJustified, nil
	default:
		return "", ErrInvalidStatus
	}
}

// NewNotification picks exactly one confirmation message, chosen by `status`.
func NewNotification(translator ut.Translator, status Status, studentName string) (Notification, error) {
	key, err := messageKey(status)
	if err != nil {
		return Notification{}, err
	}
	msg, err := translator.T(key)
	if err != nil {
		return Notification{}, errors.Wrapf(err, "translating %q", key)
	}
	var desc string
	if studentName != "" {
		if desc, err = translator.T(msgKeyStudent, studentName); err != nil {
			return Notification{}, errors.Wrapf(err, "translating %q", msgKeyStudent)
		}
	}
	return Notification{Message: msg, Description: desc}, nil
}

// Caption describes the attendance list of `date`, eg. "Lista de presença para domingo, 10 de março de 2024".
func Caption(translator ut.Translator, date DateKey) string {
	s, err := translator.T(msgKeyCaption, translator.FmtDateFull(date.Time()))
	if err != nil {
		return date.String()
	}
	return s
}

// EmptyRosterText is shown in place of the list when there are no students.
func EmptyRosterText(translator ut.Translator) string {
	s, err := translator.T(msgKeyEmpty)
	if err != nil {
		return messageTexts[core.LocalePTBR][msgKeyEmpty]
	}
	return s
}
