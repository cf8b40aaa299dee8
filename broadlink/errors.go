package broadlink

import "fmt"

// UnsupportedContainerFormatError indicates a container whose transport
// byte is not a recognized Broadlink transport.
type UnsupportedContainerFormatError struct {
	// Transport is the unrecognized header byte
	Transport byte
}

func (e *UnsupportedContainerFormatError) Error() string {
	return fmt.Sprintf("unsupported container format: transport byte 0x%02X", e.Transport)
}

// TruncatedContainerError indicates a byte stream that ended before a
// complete duration list could be read.
type TruncatedContainerError struct {
	// Offset is the byte offset at which more data was needed
	Offset int

	// Needed is the number of further bytes required at that offset
	Needed int
}

func (e *TruncatedContainerError) Error() string {
	return fmt.Sprintf("truncated container: need %d more byte(s) at offset %d", e.Needed, e.Offset)
}
