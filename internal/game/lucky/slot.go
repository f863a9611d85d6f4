package lucky

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SlotType describes one element of a stage outcome sequence.
type SlotType int

const (
	// SlotTypeUnspecified represents an invalid slot type value.
	SlotTypeUnspecified SlotType = iota
	// SlotTypeCoin awards its value to the run's coin accumulator.
	SlotTypeCoin
	// SlotTypeGameOver ends the run and resets it to stage zero.
	SlotTypeGameOver
)

func (t SlotType) String() string {
	switch t {
	case SlotTypeCoin:
		return "COIN"
	case SlotTypeGameOver:
		return "GAMEOVER"
	default:
		return "UNSPECIFIED"
	}
}

// ErrInvalidSlotEncoding indicates a persisted outcome string is malformed.
var ErrInvalidSlotEncoding = errors.New("slot encoding is malformed")

// Slot is one element of a stage outcome sequence.
type Slot struct {
	Type  SlotType
	Value int64
}

// EncodeSlots serializes an outcome sequence into the persisted form, an
// ordered comma-separated list of TYPE:value pairs. An empty sequence
// encodes to the empty string.
func EncodeSlots(slots []Slot) string {
	if len(slots) == 0 {
		return ""
	}
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = slot.Type.String() + ":" + strconv.FormatInt(slot.Value, 10)
	}
	return strings.Join(parts, ",")
}

// DecodeSlots parses the persisted TYPE:value comma string back into an
// outcome sequence, preserving order. The empty string decodes to nil.
func DecodeSlots(encoded string) ([]Slot, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	slots := make([]Slot, 0, len(parts))
	for _, part := range parts {
		typeName, rawValue, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: missing separator in %q", ErrInvalidSlotEncoding, part)
		}
		var slotType SlotType
		switch typeName {
		case "COIN":
			slotType = SlotTypeCoin
		case "GAMEOVER":
			slotType = SlotTypeGameOver
		default:
			return nil, fmt.Errorf("%w: unknown slot type %q", ErrInvalidSlotEncoding, typeName)
		}
		value, err := strconv.ParseInt(rawValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot value %q", ErrInvalidSlotEncoding, rawValue)
		}
		if value < 0 {
			return nil, fmt.Errorf("%w: negative slot value %q", ErrInvalidSlotEncoding, rawValue)
		}
		slots = append(slots, Slot{Type: slotType, Value: value})
	}
	return slots, nil
}
