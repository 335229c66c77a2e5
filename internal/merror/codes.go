package merror

// Code is internal error code type
type Code int

const (
	// InvalidArgument ...
	InvalidArgument Code = iota + 1
	// Connection means a broker or http session could not be established
	Connection
	// Serialization means a payload could not be encoded or decoded
	Serialization
	// Transport means a send, receive or ack failed or was rejected
	Transport
	// Unknown ...
	Unknown
)

var codeNames = map[Code]string{
	InvalidArgument: "InvalidArgument",
	Connection:      "ConnectionError",
	Serialization:   "SerializationError",
	Transport:       "TransportError",
	Unknown:         "Unknown",
}

// process exit codes, 1 is left for failures outside this taxonomy
var exitCodes = map[Code]int{
	InvalidArgument: 2,
	Connection:      3,
	Serialization:   4,
	Transport:       5,
	Unknown:         1,
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[Unknown]
}
