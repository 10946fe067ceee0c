package interactions_enums

type InteractionType string

const (
	InteractionTypeNote    InteractionType = "note"
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeMeeting InteractionType = "meeting"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeNote, InteractionTypeCall, InteractionTypeEmail, InteractionTypeMeeting:
		return true
	}

	return false
}
