package errors

import "fmt"

var (
	ErrNoData            = fmt.Errorf("no data within read timeout")
	ErrNotMeshMessage    = fmt.Errorf("line is not a mesh message")
	ErrMalformedLine     = fmt.Errorf("malformed mesh message line")
	ErrEmptyWritePayload = fmt.Errorf("write command carries no message")
	ErrPersistence       = fmt.Errorf("persistence failure")
	ErrTransport         = fmt.Errorf("transport failure")
	ErrDeviceNotFound    = fmt.Errorf("no matching serial device found")
	ErrHandshake         = fmt.Errorf("device handshake failed")
)
