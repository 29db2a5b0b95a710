package domain

import "strings"

// RosterMember a confirmed participant of a jam and the session they play
type RosterMember struct {
	OwnerID         int64
	SessionTypeCode string
	PartLabel       string
	Nickname        string
}

// IconType icon rendered for a participant in a slot
type IconType string

const (
	IconVocal    IconType = "vocal"
	IconGuitar   IconType = "guitar"
	IconBass     IconType = "bass"
	IconDrum     IconType = "drum"
	IconKeyboard IconType = "keyboard"
	IconDefault  IconType = "default"
)

var sessionIcons = map[string]IconType{
	"VOCAL":    IconVocal,
	"VOC":      IconVocal,
	"GUITAR":   IconGuitar,
	"GTR":      IconGuitar,
	"BASS":     IconBass,
	"DRUM":     IconDrum,
	"DRUMS":    IconDrum,
	"KEYBOARD": IconKeyboard,
	"KEY":      IconKeyboard,
}

// IconForSession maps a session type code to its icon, unknown codes fall
// back to IconDefault.
func IconForSession(code string) IconType {
	if icon, ok := sessionIcons[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return icon
	}
	return IconDefault
}

// Icon icon of the member's session
func (m RosterMember) Icon() IconType {
	return IconForSession(m.SessionTypeCode)
}
