// Package msgs provides the L1 message envelope and generic replies.
package msgs

// L1 messages are exchanged between a phone (the L1 controller) and
// remote clients over a registry such as an MQTT broker. Each message
// is a protobuf payload wrapped in a Typed envelope whose type ID
// encodes the kind (command or event), a group and an ID.
//
// Producer: phone daemon
// Consumer: CLI, monitors and call logic
