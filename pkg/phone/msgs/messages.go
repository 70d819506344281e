package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1/msgs"
)

// KeyPressed is the event of a debounced key press.
type KeyPressed struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Long bool   `protobuf:"varint,2,opt,name=long,proto3" json:"long,omitempty"`
}

// NewMessage implements Message.
func (m *KeyPressed) NewMessage() fx.Message { return &KeyPressed{} }

// TypeID implements SerializableMessage.
func (m *KeyPressed) TypeID() uint32 { return KeyPressedTypeID }

// Serializable implements SerializableMessage.
func (m *KeyPressed) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *KeyPressed) ProtoMessage() {}

// Reset implements proto.Message.
func (m *KeyPressed) Reset() { *m = KeyPressed{} }

// String implements proto.Message.
func (m *KeyPressed) String() string { return proto.CompactTextString(m) }

// NumberDialed is the event of a completed dial which parsed as a phone number.
type NumberDialed struct {
	Text       string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	AreaCode   uint32 `protobuf:"varint,2,opt,name=area_code,json=areaCode,proto3" json:"area_code,omitempty"`
	Exchange   uint32 `protobuf:"varint,3,opt,name=exchange,proto3" json:"exchange,omitempty"`
	LineNumber uint32 `protobuf:"varint,4,opt,name=line_number,json=lineNumber,proto3" json:"line_number,omitempty"`
}

// NewMessage implements Message.
func (m *NumberDialed) NewMessage() fx.Message { return &NumberDialed{} }

// TypeID implements SerializableMessage.
func (m *NumberDialed) TypeID() uint32 { return NumberDialedTypeID }

// Serializable implements SerializableMessage.
func (m *NumberDialed) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *NumberDialed) ProtoMessage() {}

// Reset implements proto.Message.
func (m *NumberDialed) Reset() { *m = NumberDialed{} }

// String implements proto.Message.
func (m *NumberDialed) String() string { return proto.CompactTextString(m) }

// NumberRejected is the event of a completed dial which is not a phone number.
type NumberRejected struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

// NewMessage implements Message.
func (m *NumberRejected) NewMessage() fx.Message { return &NumberRejected{} }

// TypeID implements SerializableMessage.
func (m *NumberRejected) TypeID() uint32 { return NumberRejectedTypeID }

// Serializable implements SerializableMessage.
func (m *NumberRejected) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *NumberRejected) ProtoMessage() {}

// Reset implements proto.Message.
func (m *NumberRejected) Reset() { *m = NumberRejected{} }

// String implements proto.Message.
func (m *NumberRejected) String() string { return proto.CompactTextString(m) }

// DigitRelayed is the event of a key relayed in ImmediateRelay mode.
type DigitRelayed struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Text string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
}

// NewMessage implements Message.
func (m *DigitRelayed) NewMessage() fx.Message { return &DigitRelayed{} }

// TypeID implements SerializableMessage.
func (m *DigitRelayed) TypeID() uint32 { return DigitRelayedTypeID }

// Serializable implements SerializableMessage.
func (m *DigitRelayed) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DigitRelayed) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DigitRelayed) Reset() { *m = DigitRelayed{} }

// String implements proto.Message.
func (m *DigitRelayed) String() string { return proto.CompactTextString(m) }

// PhoneStatus is an Event message reflecting the accumulator state.
type PhoneStatus struct {
	Mode    string `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
	Text    string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Dropped uint32 `protobuf:"varint,3,opt,name=dropped,proto3" json:"dropped,omitempty"`
	Device  string `protobuf:"bytes,4,opt,name=device,proto3" json:"device,omitempty"`
}

// NewMessage implements Message.
func (m *PhoneStatus) NewMessage() fx.Message { return &PhoneStatus{} }

// TypeID implements SerializableMessage.
func (m *PhoneStatus) TypeID() uint32 { return PhoneStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *PhoneStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *PhoneStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PhoneStatus) Reset() { *m = PhoneStatus{} }

// String implements proto.Message.
func (m *PhoneStatus) String() string { return proto.CompactTextString(m) }

// ModeSet switches the accumulation mode, "dial" or "relay".
type ModeSet struct {
	Mode string `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
}

// NewMessage implements Message.
func (m *ModeSet) NewMessage() fx.Message { return &ModeSet{} }

// TypeID implements SerializableMessage.
func (m *ModeSet) TypeID() uint32 { return ModeSetTypeID }

// Serializable implements SerializableMessage.
func (m *ModeSet) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *ModeSet) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ModeSet) Reset() { *m = ModeSet{} }

// String implements proto.Message.
func (m *ModeSet) String() string { return proto.CompactTextString(m) }

// BufferClear discards the accumulated keys.
type BufferClear struct {
}

// NewMessage implements Message.
func (m *BufferClear) NewMessage() fx.Message { return &BufferClear{} }

// TypeID implements SerializableMessage.
func (m *BufferClear) TypeID() uint32 { return BufferClearTypeID }

// Serializable implements SerializableMessage.
func (m *BufferClear) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BufferClear) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BufferClear) Reset() { *m = BufferClear{} }

// String implements proto.Message.
func (m *BufferClear) String() string { return proto.CompactTextString(m) }

// StatusQuery queries the status.
type StatusQuery struct {
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() fx.Message { return &StatusQuery{} }

// TypeID implements SerializableMessage.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *StatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *StatusQuery) Reset() { *m = StatusQuery{} }

// String implements proto.Message.
func (m *StatusQuery) String() string { return proto.CompactTextString(m) }

// StatusReply is the response for StatusQuery.
type StatusReply struct {
	Status *PhoneStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *StatusReply) NewMessage() fx.Message { return &StatusReply{} }

// TypeID implements SerializableMessage.
func (m *StatusReply) TypeID() uint32 { return StatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *StatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *StatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *StatusReply) Reset() { *m = StatusReply{} }

// String implements proto.Message.
func (m *StatusReply) String() string { return proto.CompactTextString(m) }

// KeyInject presses a key on a simulated matrix for HoldMs milliseconds.
type KeyInject struct {
	Key    string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	HoldMs uint32 `protobuf:"varint,2,opt,name=hold_ms,json=holdMs,proto3" json:"hold_ms,omitempty"`
}

// NewMessage implements Message.
func (m *KeyInject) NewMessage() fx.Message { return &KeyInject{} }

// TypeID implements SerializableMessage.
func (m *KeyInject) TypeID() uint32 { return KeyInjectTypeID }

// Serializable implements SerializableMessage.
func (m *KeyInject) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *KeyInject) ProtoMessage() {}

// Reset implements proto.Message.
func (m *KeyInject) Reset() { *m = KeyInject{} }

// String implements proto.Message.
func (m *KeyInject) String() string { return proto.CompactTextString(m) }

// TypeIDs
const (
	KeyPressedTypeID       uint32 = msgs.GroupPhone | msgs.TypeIDKindEvent | 0x0000
	NumberDialedTypeID     uint32 = msgs.GroupPhone | msgs.TypeIDKindEvent | 0x0001
	NumberRejectedTypeID   uint32 = msgs.GroupPhone | msgs.TypeIDKindEvent | 0x0002
	DigitRelayedTypeID     uint32 = msgs.GroupPhone | msgs.TypeIDKindEvent | 0x0003
	PhoneStatusEventTypeID uint32 = msgs.GroupPhone | msgs.TypeIDKindEvent | 0x0004

	ModeSetTypeID     uint32 = msgs.GroupPhone | 0x0000
	BufferClearTypeID uint32 = msgs.GroupPhone | 0x0001
	StatusQueryTypeID uint32 = msgs.GroupPhone | 0x0002
	StatusReplyTypeID uint32 = msgs.GroupPhone | msgs.TypeIDMaskReply | 0x0002
	KeyInjectTypeID   uint32 = msgs.GroupPhone | 0x0003
)

func init() {
	for _, m := range []msgs.SerializableMessage{
		(*KeyPressed)(nil),
		(*NumberDialed)(nil),
		(*NumberRejected)(nil),
		(*DigitRelayed)(nil),
		(*PhoneStatus)(nil),
		(*ModeSet)(nil),
		(*BufferClear)(nil),
		(*StatusQuery)(nil),
		(*StatusReply)(nil),
		(*KeyInject)(nil),
	} {
		msgs.MessageTypes[m.TypeID()] = m
	}
}
